package handler

import (
	"net/http"

	"github.com/owlpost/lumos/internal/middleware"
	"github.com/owlpost/lumos/internal/model"
	"github.com/owlpost/lumos/internal/service"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profiles *service.ProfileService
	avatars  *service.AvatarService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService, avatars *service.AvatarService) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		avatars:  avatars,
	}
}

// Get handles GET /v1/profile - get own profile, creating it on first sight
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var email *string
	if e := middleware.GetUserEmail(r.Context()); e != "" {
		email = &e
	}

	profile, err := h.profiles.GetOrCreate(r.Context(), userID, email)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, profile, map[string]string{
		"self":   "/v1/profile",
		"avatar": "/v1/profile/avatar",
	})
}

// Update handles PATCH /v1/profile - merge-update own profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var patch model.ProfilePatch
	if err := DecodeJSON(r, &patch); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := patch.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	profile, err := h.profiles.Update(r.Context(), userID, patch)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, profile, map[string]string{
		"self": "/v1/profile",
	})
}

// UploadAvatar handles PUT /v1/profile/avatar. The stored object URL is
// merged into the profile's profile_picture field.
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	url, err := h.avatars.Upload(r.Context(), userID, r.Body)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	profile, err := h.profiles.Update(r.Context(), userID, model.ProfilePatch{
		ProfilePicture: &url,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, profile, map[string]string{
		"self": "/v1/profile",
	})
}
