package handler

import (
	"net/http"

	"github.com/owlpost/lumos/internal/model"
	"github.com/owlpost/lumos/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService    *service.AuthService
	profileService *service.ProfileService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, profileService *service.ProfileService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
	}
}

// CredentialsRequest represents the register and login request bodies
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedOn string `json:"created_on"`
}

// AuthResponse is a signed-in user with its access token
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedOn: user.CreatedOn.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	// First authenticated sighting: materialize the profile now so the
	// client's follow-up reads never observe a missing document.
	email := result.User.Email
	if _, err := h.profileService.GetOrCreate(r.Context(), result.User.ID, &email); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, AuthResponse{
		User:  toUserResponse(result.User),
		Token: result.Token,
	}, map[string]string{
		"profile": "/v1/profile",
	})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	email := result.User.Email
	if _, err := h.profileService.GetOrCreate(r.Context(), result.User.ID, &email); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, AuthResponse{
		User:  toUserResponse(result.User),
		Token: result.Token,
	}, map[string]string{
		"profile": "/v1/profile",
	})
}
