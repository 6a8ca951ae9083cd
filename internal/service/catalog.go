package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/owlpost/lumos/internal/model"
	"github.com/owlpost/lumos/internal/repository"
)

// DefaultCacheTTL is the window after which a cached collection is stale.
const DefaultCacheTTL = 24 * time.Hour

// Collection keys for the cache documents.
const (
	KeyCharacters = "characters"
	KeyStudents   = "students"
	KeyStaff      = "staff"
	KeySpells     = "spells"
	KeyPotions    = "potions"
)

// CacheRepository defines the interface for cache-document storage.
type CacheRepository interface {
	Get(ctx context.Context, key string) (*repository.CacheDocument, error)
	Put(ctx context.Context, key string, data []byte, fetchedAt time.Time) error
}

// WizardingSource defines the character/spell side of the remote adapter.
type WizardingSource interface {
	Characters(ctx context.Context) ([]model.Character, error)
	Students(ctx context.Context) ([]model.Character, error)
	Staff(ctx context.Context) ([]model.Character, error)
	Spells(ctx context.Context) ([]model.Spell, error)
}

// PotionSource defines the potion side of the remote adapter.
type PotionSource interface {
	Potions(ctx context.Context) ([]model.Potion, error)
}

// CatalogService serves the character, spell, and potion collections,
// reading through the document cache and falling back to the remote
// sources on miss or expiry.
type CatalogService struct {
	cache     CacheRepository
	wizarding WizardingSource
	potions   PotionSource
	ttl       time.Duration
	now       func() time.Time
	randIntN  func(n int) int
}

// CatalogServiceConfig holds configuration for the catalog service.
type CatalogServiceConfig struct {
	Cache     CacheRepository
	Wizarding WizardingSource
	Potions   PotionSource
	TTL       time.Duration

	// Now and RandIntN are test seams; nil selects the real clock and
	// math/rand.
	Now      func() time.Time
	RandIntN func(n int) int
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.RandIntN == nil {
		cfg.RandIntN = rand.IntN
	}
	return &CatalogService{
		cache:     cfg.Cache,
		wizarding: cfg.Wizarding,
		potions:   cfg.Potions,
		ttl:       cfg.TTL,
		now:       cfg.Now,
		randIntN:  cfg.RandIntN,
	}
}

// getOrFetch reads the cache document for key and returns its data verbatim
// when fresher than the TTL. On miss or expiry it invokes load exactly once,
// overwrites the document wholesale with the call-time timestamp, and
// returns the loaded collection. Concurrent misses are not coalesced; each
// caller fetches and the last write to land wins. A load failure propagates
// and leaves any stored document untouched.
func getOrFetch[T any](ctx context.Context, s *CatalogService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	doc, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	fetchedAt := s.now()
	if doc != nil && fetchedAt.Sub(doc.FetchedAt()) < s.ttl {
		var items []T
		if err := json.Unmarshal(doc.Data, &items); err != nil {
			return nil, fmt.Errorf("corrupt cache document %q: %w", key, err)
		}
		return items, nil
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encoding collection %q: %w", key, err)
	}
	if err := s.cache.Put(ctx, key, data, fetchedAt); err != nil {
		return nil, err
	}
	return items, nil
}

// Characters returns the full character collection.
func (s *CatalogService) Characters(ctx context.Context) ([]model.Character, error) {
	return getOrFetch(ctx, s, KeyCharacters, s.wizarding.Characters)
}

// Students returns the Hogwarts-student subset.
func (s *CatalogService) Students(ctx context.Context) ([]model.Character, error) {
	return getOrFetch(ctx, s, KeyStudents, s.wizarding.Students)
}

// Staff returns the Hogwarts-staff subset.
func (s *CatalogService) Staff(ctx context.Context) ([]model.Character, error) {
	return getOrFetch(ctx, s, KeyStaff, s.wizarding.Staff)
}

// Spells returns the full spell collection.
func (s *CatalogService) Spells(ctx context.Context) ([]model.Spell, error) {
	return getOrFetch(ctx, s, KeySpells, s.wizarding.Spells)
}

// Potions returns the full potion collection.
func (s *CatalogService) Potions(ctx context.Context) ([]model.Potion, error) {
	return getOrFetch(ctx, s, KeyPotions, s.potions.Potions)
}

// CharacterByID looks a character up in the cached collection.
func (s *CatalogService) CharacterByID(ctx context.Context, id string) (*model.Character, error) {
	characters, err := s.Characters(ctx)
	if err != nil {
		return nil, err
	}
	for i := range characters {
		if characters[i].ID == id {
			return &characters[i], nil
		}
	}
	return nil, ErrCharacterNotFound
}

// PotionByID looks a potion up in the cached collection.
func (s *CatalogService) PotionByID(ctx context.Context, id string) (*model.Potion, error) {
	potions, err := s.Potions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range potions {
		if potions[i].ID == id {
			return &potions[i], nil
		}
	}
	return nil, ErrPotionNotFound
}

// RandomCharacter picks one character uniformly from the collection.
func (s *CatalogService) RandomCharacter(ctx context.Context) (*model.Character, error) {
	characters, err := s.Characters(ctx)
	if err != nil {
		return nil, err
	}
	if len(characters) == 0 {
		return nil, ErrEmptyCollection
	}
	return &characters[s.randIntN(len(characters))], nil
}

// RandomSpell picks one spell uniformly from the collection.
func (s *CatalogService) RandomSpell(ctx context.Context) (*model.Spell, error) {
	spells, err := s.Spells(ctx)
	if err != nil {
		return nil, err
	}
	if len(spells) == 0 {
		return nil, ErrEmptyCollection
	}
	return &spells[s.randIntN(len(spells))], nil
}
