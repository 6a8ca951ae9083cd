package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"os"
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestService(t *testing.T) *Service {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	return NewTestService(privateKey, "test-issuer", 15*time.Minute)
}

// ============================================================================
// Claims.Valid() Tests
// ============================================================================

func TestClaims_Valid_NoExpiration_ReturnsNil(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID: "user:123",
		Email:  "test@example.com",
	}

	if err := claims.Valid(); err != nil {
		t.Errorf("expected no error for claims without expiration, got %v", err)
	}
}

func TestClaims_Valid_Expired_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "user:123",
		ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
	}

	if err := claims.Valid(); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestClaims_Valid_NotYetValid_ReturnsErrTokenNotYetValid(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "user:123",
		NotBefore: time.Now().Add(1 * time.Hour).Unix(),
	}

	if err := claims.Valid(); err != ErrTokenNotYetValid {
		t.Errorf("expected ErrTokenNotYetValid, got %v", err)
	}
}

// ============================================================================
// Issue / Sign / Validate Tests
// ============================================================================

func TestIssue_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Issue("user:123", "harry@owlpost.dev")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user:123" {
		t.Errorf("UserID = %q", claims.UserID)
	}
	if claims.Subject != "user:123" {
		t.Errorf("Subject = %q", claims.Subject)
	}
	if claims.Email != "harry@owlpost.dev" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

func TestSign_ValidClaims_ReturnsToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Errorf("expected 3 parts in JWT, got %d", len(parts))
	}
}

func TestSign_NilPrivateKey_ReturnsErrInvalidKey(t *testing.T) {
	t.Parallel()
	svc := &Service{
		privateKey: nil,
		issuer:     "test",
		expiration: 15 * time.Minute,
	}

	if _, err := svc.Sign(Claims{UserID: "user:123"}); err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestSign_SetsDefaultExpiration(t *testing.T) {
	t.Parallel()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	svc := NewTestService(privateKey, "test-issuer", 30*time.Minute)
	now := time.Now()

	token, err := svc.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	expectedExpiry := now.Add(30 * time.Minute).Unix()
	// Allow 5 seconds tolerance
	if claims.ExpiresAt < expectedExpiry-5 || claims.ExpiresAt > expectedExpiry+5 {
		t.Errorf("ExpiresAt %d not near expected %d", claims.ExpiresAt, expectedExpiry)
	}
}

func TestValidate_InvalidFormat_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	for _, token := range []string{"", "onlyonepart", "only.twoparts", "one.two.three.four"} {
		if _, err := svc.Validate(token); err != ErrInvalidToken {
			t.Errorf("%q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestValidate_NilPublicKey_ReturnsErrInvalidKey(t *testing.T) {
	t.Parallel()
	svc := &Service{publicKey: nil, issuer: "test"}

	if _, err := svc.Validate("some.token.here"); err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestValidate_TamperedClaims_ReturnsErrInvalidSignature(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Issue("user:123", "harry@owlpost.dev")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	parts := strings.Split(token, ".")
	tamperedClaims := base64.URLEncoding.EncodeToString([]byte(`{"user_id":"hacker","iss":"test-issuer"}`))
	tamperedToken := parts[0] + "." + tamperedClaims + "." + parts[2]

	if _, err := svc.Validate(tamperedToken); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_ExpiredToken_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Sign(Claims{
		UserID:    "user:123",
		ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := svc.Validate(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongIssuer_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	privateKey, _ := rsa.GenerateKey(rand.Reader, 2048)

	signingService := NewTestService(privateKey, "issuer-a", 15*time.Minute)
	validatingService := NewTestService(privateKey, "issuer-b", 15*time.Minute)

	token, err := signingService.Issue("user:123", "")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := validatingService.Validate(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}
}

func TestValidate_DifferentKey_ReturnsErrInvalidSignature(t *testing.T) {
	t.Parallel()
	svc1 := newTestService(t)
	svc2 := newTestService(t)

	token, err := svc1.Issue("user:123", "")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := svc2.Validate(token); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature when validating with different key, got %v", err)
	}
}

// ============================================================================
// NewService / GenerateKeyPair Tests
// ============================================================================

func TestNewService_WithPrivateKey_LoadsKey(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	privateKeyPath := tempDir + "/private.pem"
	publicKeyPath := tempDir + "/public.pem"

	if err := GenerateKeyPair(privateKeyPath, publicKeyPath); err != nil {
		t.Fatalf("failed to generate keys: %v", err)
	}

	svc, err := NewService(Config{
		PrivateKeyPath: privateKeyPath,
		Issuer:         "test",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.privateKey == nil {
		t.Error("expected private key to be loaded")
	}
	if svc.publicKey == nil {
		t.Error("expected public key to be derived from private key")
	}

	// Generated keys must round-trip a token.
	token, err := svc.Issue("user:123", "test@example.com")
	if err != nil {
		t.Fatalf("Issue with generated key failed: %v", err)
	}
	if _, err := svc.Validate(token); err != nil {
		t.Fatalf("Validate with generated key failed: %v", err)
	}
}

func TestNewService_WithPublicKeyOnly_LoadsPublicKey(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	privateKeyPath := tempDir + "/private.pem"
	publicKeyPath := tempDir + "/public.pem"

	if err := GenerateKeyPair(privateKeyPath, publicKeyPath); err != nil {
		t.Fatalf("failed to generate keys: %v", err)
	}

	svc, err := NewService(Config{
		PublicKeyPath:  publicKeyPath,
		Issuer:         "test",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.privateKey != nil {
		t.Error("expected private key to be nil")
	}
	if svc.publicKey == nil {
		t.Error("expected public key to be loaded")
	}
}

func TestNewService_PrivateKeyNotFound_ReturnsError(t *testing.T) {
	t.Parallel()

	_, err := NewService(Config{
		PrivateKeyPath: "/nonexistent/path/to/key.pem",
		Issuer:         "test",
	})
	if err == nil {
		t.Error("expected error for nonexistent key file")
	}
}

func TestNewService_InvalidPrivateKeyPEM_ReturnsError(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	invalidKeyPath := tempDir + "/invalid.pem"

	if err := os.WriteFile(invalidKeyPath, []byte("not a valid PEM file"), 0644); err != nil {
		t.Fatalf("failed to write invalid key: %v", err)
	}

	_, err := NewService(Config{
		PrivateKeyPath: invalidKeyPath,
		Issuer:         "test",
	})
	if err == nil {
		t.Error("expected error for invalid PEM file")
	}
}

// ============================================================================
// base64URLEncode/Decode Tests
// ============================================================================

func TestBase64URLEncode_Decode_RoundTrip(t *testing.T) {
	t.Parallel()
	testCases := []string{
		"",
		"a",
		"ab",
		"abc",
		"abcd",
		"Hello, World!",
		"Special chars: +/=",
		string([]byte{0, 1, 2, 255, 254, 253}),
	}

	for _, tc := range testCases {
		encoded := base64URLEncode([]byte(tc))
		if strings.Contains(encoded, "=") {
			t.Errorf("encoded %q contains padding", tc)
		}

		decoded, err := base64URLDecode(encoded)
		if err != nil {
			t.Errorf("failed to decode %q: %v", tc, err)
			continue
		}
		if string(decoded) != tc {
			t.Errorf("round-trip failed for %q: got %q", tc, string(decoded))
		}
	}
}
