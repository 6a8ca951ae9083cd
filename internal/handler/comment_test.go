package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/owlpost/lumos/internal/middleware"
	"github.com/owlpost/lumos/internal/model"
	"github.com/owlpost/lumos/internal/service"
)

// ============================================================================
// Stub repository
// ============================================================================

type stubCommentRepo struct {
	byID map[string]*model.Comment
	list []*model.Comment
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{byID: make(map[string]*model.Comment)}
}

func (s *stubCommentRepo) Create(ctx context.Context, ref model.CommentRef, comment *model.Comment) error {
	comment.ID = "comment:new"
	comment.CreatedOn = time.Now()
	comment.UpdatedOn = comment.CreatedOn
	id := ref.ID
	switch ref.Kind {
	case model.RefCharacter:
		comment.CharacterID = &id
	case model.RefPotion:
		comment.PotionID = &id
	}
	s.byID[comment.ID] = comment
	return nil
}

func (s *stubCommentRepo) ListByParent(ctx context.Context, ref model.CommentRef) ([]*model.Comment, error) {
	return s.list, nil
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	return s.byID[id], nil
}

func (s *stubCommentRepo) UpdateContent(ctx context.Context, id, content string) (*model.Comment, error) {
	c := s.byID[id]
	c.Content = content
	c.UpdatedOn = time.Now()
	return c, nil
}

func (s *stubCommentRepo) Delete(ctx context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

// ============================================================================
// Test Helpers
// ============================================================================

func withUser(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
	return r.WithContext(ctx)
}

func newCommentRequest(t *testing.T, method, target, userID string, body string) *http.Request {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != "" {
		req = withUser(req, userID)
	}
	return req
}

// ============================================================================
// Tests
// ============================================================================

func TestCommentCreate(t *testing.T) {
	t.Parallel()
	repo := newStubCommentRepo()
	h := NewCommentHandler(service.NewCommentService(repo))

	req := newCommentRequest(t, http.MethodPost, "/v1/characters/c1/comments", "user:1", `{"content":"Brilliant!"}`)
	req.SetPathValue("kind", "character")
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.Comment `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.CharacterID == nil || *resp.Data.CharacterID != "c1" {
		t.Errorf("character_id = %v", resp.Data.CharacterID)
	}
	if resp.Data.PotionID != nil {
		t.Error("potion_id must be absent on a character comment")
	}
}

func TestCommentCreateUnauthenticated(t *testing.T) {
	t.Parallel()
	h := NewCommentHandler(service.NewCommentService(newStubCommentRepo()))

	req := newCommentRequest(t, http.MethodPost, "/v1/characters/c1/comments", "", `{"content":"hi"}`)
	req.SetPathValue("kind", "character")
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestCommentCreateUnknownKind(t *testing.T) {
	t.Parallel()
	h := NewCommentHandler(service.NewCommentService(newStubCommentRepo()))

	req := newCommentRequest(t, http.MethodPost, "/v1/spells/s1/comments", "user:1", `{"content":"hi"}`)
	req.SetPathValue("kind", "spell")
	req.SetPathValue("id", "s1")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422 for a kind that takes no comments", rec.Code)
	}
}

func TestCommentCreateEmptyContent(t *testing.T) {
	t.Parallel()
	h := NewCommentHandler(service.NewCommentService(newStubCommentRepo()))

	req := newCommentRequest(t, http.MethodPost, "/v1/potions/p1/comments", "user:1", `{"content":"   "}`)
	req.SetPathValue("kind", "potion")
	req.SetPathValue("id", "p1")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestCommentList(t *testing.T) {
	t.Parallel()
	repo := newStubCommentRepo()
	cid := "c1"
	repo.list = []*model.Comment{
		{ID: "comment:2", CharacterID: &cid, UserID: "user:2", Content: "newer"},
		{ID: "comment:1", CharacterID: &cid, UserID: "user:1", Content: "older"},
	}
	h := NewCommentHandler(service.NewCommentService(repo))

	req := newCommentRequest(t, http.MethodGet, "/v1/characters/c1/comments", "", "")
	req.SetPathValue("kind", "character")
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data  []model.Comment `json:"data"`
		Count int             `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 || len(resp.Data) != 2 {
		t.Errorf("count = %d, data = %d", resp.Count, len(resp.Data))
	}
	if resp.Data[0].ID != "comment:2" {
		t.Error("newest comment must come first")
	}
}

func TestCommentUpdateByNonAuthor(t *testing.T) {
	t.Parallel()
	repo := newStubCommentRepo()
	repo.byID["comment:1"] = &model.Comment{ID: "comment:1", UserID: "user:owner", Content: "original"}
	h := NewCommentHandler(service.NewCommentService(repo))

	req := newCommentRequest(t, http.MethodPatch, "/v1/comments/comment:1", "user:other", `{"content":"hijack"}`)
	req.SetPathValue("id", "comment:1")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestCommentDelete(t *testing.T) {
	t.Parallel()
	repo := newStubCommentRepo()
	repo.byID["comment:1"] = &model.Comment{ID: "comment:1", UserID: "user:owner"}
	h := NewCommentHandler(service.NewCommentService(repo))

	req := newCommentRequest(t, http.MethodDelete, "/v1/comments/comment:1", "user:owner", "")
	req.SetPathValue("id", "comment:1")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d", rec.Code)
	}
	if _, ok := repo.byID["comment:1"]; ok {
		t.Error("comment must be removed from the store")
	}
}

func TestCommentDeleteMissing(t *testing.T) {
	t.Parallel()
	h := NewCommentHandler(service.NewCommentService(newStubCommentRepo()))

	req := newCommentRequest(t, http.MethodDelete, "/v1/comments/comment:ghost", "user:1", "")
	req.SetPathValue("id", "comment:ghost")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}
