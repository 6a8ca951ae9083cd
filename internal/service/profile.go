package service

import (
	"context"
	"errors"

	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/model"
)

// ProfileRepository defines the interface for profile storage.
type ProfileRepository interface {
	Create(ctx context.Context, uid string, email *string) (*model.UserProfile, error)
	GetByUID(ctx context.Context, uid string) (*model.UserProfile, error)
	Merge(ctx context.Context, uid string, fields map[string]interface{}) (*model.UserProfile, error)
}

// ProfileService handles profile lifecycle: lazy creation on first
// authenticated sighting of an identity and field-level merge updates.
type ProfileService struct {
	repo ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetOrCreate returns the profile for an identity, creating it with all
// optional fields absent on first sighting. Subsequent calls return the
// existing document unchanged. A concurrent first-creation race is resolved
// by re-reading: whichever create landed first is authoritative.
func (s *ProfileService) GetOrCreate(ctx context.Context, uid string, email *string) (*model.UserProfile, error) {
	profile, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	created, err := s.repo.Create(ctx, uid, email)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return s.repo.GetByUID(ctx, uid)
		}
		return nil, err
	}
	return created, nil
}

// Update merges the supplied patch fields into the identity's profile,
// leaving omitted fields untouched, and returns the merged document. Fails
// with ErrProfileNotFound when the identity has no profile yet — callers
// must have gone through GetOrCreate first.
func (s *ProfileService) Update(ctx context.Context, uid string, patch model.ProfilePatch) (*model.UserProfile, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		// Nothing to merge; answer with the current document.
		profile, err := s.repo.GetByUID(ctx, uid)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, ErrProfileNotFound
		}
		return profile, nil
	}

	merged, err := s.repo.Merge(ctx, uid, fields)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return merged, nil
}
