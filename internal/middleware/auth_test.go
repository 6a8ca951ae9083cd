package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/owlpost/lumos/pkg/jwt"
)

type mockValidator struct {
	claims *jwt.Claims
	err    error
}

func (m *mockValidator) Validate(token string) (*jwt.Claims, error) {
	return m.claims, m.err
}

func TestAuth_ValidToken_SetsContext(t *testing.T) {
	t.Parallel()
	validator := &mockValidator{
		claims: &jwt.Claims{UserID: "user:123", Email: "harry@owlpost.dev"},
	}

	var gotID, gotEmail string
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
		gotEmail = GetUserEmail(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotID != "user:123" || gotEmail != "harry@owlpost.dev" {
		t.Errorf("context: id=%q email=%q", gotID, gotEmail)
	}
}

func TestAuth_MissingHeader_Returns401(t *testing.T) {
	t.Parallel()
	handler := Auth(&mockValidator{})(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestAuth_MalformedHeader_Returns401(t *testing.T) {
	t.Parallel()
	handler := Auth(&mockValidator{})(okHandler())

	for _, header := range []string{"some-token", "Basic dXNlcjpwYXNz"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%q: status = %d", header, rec.Code)
		}
	}
}

func TestAuth_ExpiredToken_Returns401(t *testing.T) {
	t.Parallel()
	validator := &mockValidator{err: jwt.ErrTokenExpired}
	handler := Auth(validator)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestOptionalAuth_NoToken_Continues(t *testing.T) {
	t.Parallel()
	var gotID string
	handler := OptionalAuth(&mockValidator{err: jwt.ErrInvalidToken})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if gotID != "" {
		t.Errorf("unexpected identity %q", gotID)
	}
}

func TestOptionalAuth_ValidToken_SetsContext(t *testing.T) {
	t.Parallel()
	validator := &mockValidator{claims: &jwt.Claims{UserID: "user:123"}}

	var gotID string
	handler := OptionalAuth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotID != "user:123" {
		t.Errorf("context id = %q", gotID)
	}
}
