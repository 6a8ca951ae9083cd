package service

import (
	"context"

	"github.com/owlpost/lumos/internal/model"
)

// OptionsRepository defines the interface for the options document.
type OptionsRepository interface {
	Get(ctx context.Context) (*model.Options, error)
	Put(ctx context.Context, options model.Options) error
}

// OptionsService serves the selectable values behind the profile form.
type OptionsService struct {
	repo OptionsRepository
}

// NewOptionsService creates a new options service.
func NewOptionsService(repo OptionsRepository) *OptionsService {
	return &OptionsService{repo: repo}
}

// Get returns the options document, failing with ErrOptionsNotFound when it
// was never seeded.
func (s *OptionsService) Get(ctx context.Context) (*model.Options, error) {
	options, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if options == nil {
		return nil, ErrOptionsNotFound
	}
	return options, nil
}

// EnsureDefaults seeds the options document if it does not exist yet. An
// existing document is never overwritten.
func (s *OptionsService) EnsureDefaults(ctx context.Context) error {
	options, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	if options != nil {
		return nil
	}
	return s.repo.Put(ctx, model.DefaultOptions())
}

// Seed overwrites the options document unconditionally. Used by the
// seed-options CLI.
func (s *OptionsService) Seed(ctx context.Context, options model.Options) error {
	return s.repo.Put(ctx, options)
}
