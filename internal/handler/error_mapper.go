package handler

import (
	"errors"

	"github.com/owlpost/lumos/internal/model"
	"github.com/owlpost/lumos/internal/service"
	"github.com/owlpost/lumos/internal/source"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	var remoteErr *source.RemoteError
	var decodeErr *source.DecodeError

	// ===== Authentication Errors → 401 =====
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotCommentAuthor):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrCharacterNotFound):
		return model.NewNotFoundError("character")
	case errors.Is(err, service.ErrPotionNotFound):
		return model.NewNotFoundError("potion")
	case errors.Is(err, service.ErrCommentNotFound):
		return model.NewNotFoundError("comment")
	case errors.Is(err, service.ErrProfileNotFound):
		return model.NewNotFoundError("profile")
	case errors.Is(err, service.ErrOptionsNotFound):
		return model.NewNotFoundError("options")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailTaken):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "credentials", Message: err.Error()}})

	case errors.Is(err, service.ErrCommentEmpty),
		errors.Is(err, service.ErrCommentTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "content", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidParentRef):
		return model.NewValidationError([]model.FieldError{{Field: "parent", Message: err.Error()}})

	case errors.Is(err, service.ErrAvatarTooLarge),
		errors.Is(err, service.ErrAvatarBadType),
		errors.Is(err, service.ErrAvatarBadDimensions):
		return model.NewValidationError([]model.FieldError{{Field: "avatar", Message: err.Error()}})

	// ===== Upstream Errors → 502 =====
	case errors.Is(err, service.ErrEmptyCollection):
		return model.NewUpstreamError(err.Error())
	case errors.As(err, &remoteErr), errors.As(err, &decodeErr):
		return model.NewUpstreamError(err.Error())
	}

	// ===== Default → 500 =====
	return model.NewInternalError("an unexpected error occurred")
}
