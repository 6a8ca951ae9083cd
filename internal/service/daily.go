package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/model"
)

// DailyRepository defines the interface for daily feature storage.
type DailyRepository interface {
	Get(ctx context.Context, date string) (*model.DailyFeature, error)
	Create(ctx context.Context, feature *model.DailyFeature) error
}

// Catalog is the slice of the catalog service the daily selector needs.
type Catalog interface {
	Characters(ctx context.Context) ([]model.Character, error)
	Spells(ctx context.Context) ([]model.Spell, error)
	Potions(ctx context.Context) ([]model.Potion, error)
}

// DailyService selects and pins the featured character/spell/potion triple
// for each calendar date.
type DailyService struct {
	repo     DailyRepository
	catalog  Catalog
	now      func() time.Time
	randIntN func(n int) int
}

// DailyServiceConfig holds configuration for the daily service.
type DailyServiceConfig struct {
	Repo    DailyRepository
	Catalog Catalog

	// Now and RandIntN are test seams; nil selects the real clock and
	// math/rand.
	Now      func() time.Time
	RandIntN func(n int) int
}

// NewDailyService creates a new daily feature service.
func NewDailyService(cfg DailyServiceConfig) *DailyService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.RandIntN == nil {
		cfg.RandIntN = rand.IntN
	}
	return &DailyService{
		repo:     cfg.Repo,
		catalog:  cfg.Catalog,
		now:      cfg.Now,
		randIntN: cfg.RandIntN,
	}
}

// Today returns the current feature date in UTC.
func (s *DailyService) Today() string {
	return s.now().UTC().Format(model.DailyDateFormat)
}

// Feature returns the feature document for today, generating and pinning it
// on the first call of the day.
//
// The stored document is authoritative: when two first-callers race, each
// computes its own random selection, but only the first CREATE lands — the
// loser observes the duplicate, re-reads, and returns the pinned document,
// discarding its local pick. Selection is random per day, not derivable
// from the date; every later call returns the persisted value verbatim.
func (s *DailyService) Feature(ctx context.Context) (*model.DailyFeature, error) {
	date := s.Today()

	feature, err := s.repo.Get(ctx, date)
	if err != nil {
		return nil, err
	}
	if feature != nil {
		return feature, nil
	}

	// All three fetches must succeed before anything is written.
	characters, err := s.catalog.Characters(ctx)
	if err != nil {
		return nil, err
	}
	spells, err := s.catalog.Spells(ctx)
	if err != nil {
		return nil, err
	}
	potions, err := s.catalog.Potions(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.Character, 0, len(characters))
	for _, c := range characters {
		if c.HasImage() {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 || len(spells) == 0 || len(potions) == 0 {
		return nil, ErrEmptyCollection
	}

	fresh := &model.DailyFeature{
		Character: candidates[s.randIntN(len(candidates))],
		Spell:     spells[s.randIntN(len(spells))],
		Potion:    potions[s.randIntN(len(potions))],
		Date:      date,
	}

	if err := s.repo.Create(ctx, fresh); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			// Lost the first-write race; the pinned document wins.
			pinned, readErr := s.repo.Get(ctx, date)
			if readErr != nil {
				return nil, readErr
			}
			if pinned != nil {
				return pinned, nil
			}
		}
		return nil, err
	}

	return fresh, nil
}
