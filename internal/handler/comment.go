package handler

import (
	"net/http"

	"github.com/owlpost/lumos/internal/middleware"
	"github.com/owlpost/lumos/internal/model"
	"github.com/owlpost/lumos/internal/service"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	comments *service.CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CommentRequest is the create and update request body
type CommentRequest struct {
	Content string `json:"content"`
}

func parentRef(r *http.Request) model.CommentRef {
	switch model.RefKind(r.PathValue("kind")) {
	case model.RefCharacter:
		return model.ForCharacter(r.PathValue("id"))
	case model.RefPotion:
		return model.ForPotion(r.PathValue("id"))
	}
	return model.CommentRef{}
}

// List handles GET /v1/{kind}/{id}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	ref := parentRef(r)
	if !ref.Valid() {
		WriteError(w, model.NewNotFoundError("page"))
		return
	}

	comments, err := h.comments.List(r.Context(), ref)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, comments, len(comments), nil)
}

// Create handles POST /v1/{kind}/{id}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req CommentRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	comment, err := h.comments.Add(r.Context(), parentRef(r), userID, req.Content)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusCreated, comment, nil)
}

// Update handles PATCH /v1/comments/{id}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req CommentRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	comment, err := h.comments.Update(r.Context(), r.PathValue("id"), userID, req.Content)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, comment, nil)
}

// Delete handles DELETE /v1/comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.comments.Remove(r.Context(), r.PathValue("id"), userID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteNoContent(w)
}
