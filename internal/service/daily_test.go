package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/model"
)

type mockDailyRepo struct {
	getFunc    func(ctx context.Context, date string) (*model.DailyFeature, error)
	createFunc func(ctx context.Context, feature *model.DailyFeature) error

	getCalls    int
	createCalls int
}

func (m *mockDailyRepo) Get(ctx context.Context, date string) (*model.DailyFeature, error) {
	m.getCalls++
	if m.getFunc != nil {
		return m.getFunc(ctx, date)
	}
	return nil, nil
}

func (m *mockDailyRepo) Create(ctx context.Context, feature *model.DailyFeature) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, feature)
	}
	return nil
}

type mockDailyCatalog struct {
	characters []model.Character
	spells     []model.Spell
	potions    []model.Potion

	characterErr error
	spellErr     error
	potionErr    error
}

func (m *mockDailyCatalog) Characters(ctx context.Context) ([]model.Character, error) {
	return m.characters, m.characterErr
}

func (m *mockDailyCatalog) Spells(ctx context.Context) ([]model.Spell, error) {
	return m.spells, m.spellErr
}

func (m *mockDailyCatalog) Potions(ctx context.Context) ([]model.Potion, error) {
	return m.potions, m.potionErr
}

func fullCatalog() *mockDailyCatalog {
	return &mockDailyCatalog{
		characters: []model.Character{
			{ID: "c1", Name: "Harry Potter", Image: "https://img/harry.jpg"},
			{ID: "c2", Name: "Peeves"},
			{ID: "c3", Name: "Hermione Granger", Image: "https://img/hermione.jpg"},
			{ID: "c4", Name: "Nearly Headless Nick"},
			{ID: "c5", Name: "Severus Snape", Image: "https://img/snape.jpg"},
		},
		spells:  []model.Spell{{ID: "s1", Name: "Expelliarmus"}, {ID: "s2", Name: "Lumos"}},
		potions: []model.Potion{{ID: "p1"}, {ID: "p2"}},
	}
}

func newTestDaily(repo *mockDailyRepo, catalog Catalog, now time.Time, picks ...int) *DailyService {
	i := 0
	return NewDailyService(DailyServiceConfig{
		Repo:    repo,
		Catalog: catalog,
		Now:     func() time.Time { return now },
		RandIntN: func(n int) int {
			if len(picks) == 0 {
				return 0
			}
			p := picks[i%len(picks)] % n
			i++
			return p
		},
	})
}

func TestDailyFeatureExistingDocWins(t *testing.T) {
	now := time.Date(2026, 8, 29, 18, 30, 0, 0, time.UTC)
	pinned := &model.DailyFeature{
		Character: model.Character{ID: "c5"},
		Spell:     model.Spell{ID: "s1"},
		Potion:    model.Potion{ID: "p2"},
		Date:      "2026-08-29",
	}
	repo := &mockDailyRepo{
		getFunc: func(ctx context.Context, date string) (*model.DailyFeature, error) {
			if date != "2026-08-29" {
				t.Errorf("date = %q, want 2026-08-29", date)
			}
			return pinned, nil
		},
	}

	svc := newTestDaily(repo, fullCatalog(), now)
	got, err := svc.Feature(context.Background())
	if err != nil {
		t.Fatalf("Feature() error: %v", err)
	}
	if got != pinned {
		t.Errorf("must return the stored document verbatim")
	}
	if repo.createCalls != 0 {
		t.Errorf("no write expected when the feature exists")
	}
}

func TestDailyFeatureGeneration(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 1, 0, time.UTC)
	var created *model.DailyFeature
	repo := &mockDailyRepo{
		createFunc: func(ctx context.Context, feature *model.DailyFeature) error {
			created = feature
			return nil
		},
	}

	// Picks index 1 from each pool: second image-bearing character.
	svc := newTestDaily(repo, fullCatalog(), now, 1)
	got, err := svc.Feature(context.Background())
	if err != nil {
		t.Fatalf("Feature() error: %v", err)
	}

	if created == nil {
		t.Fatal("feature must be persisted before it is returned")
	}
	if got.Date != "2026-08-29" {
		t.Errorf("date = %q", got.Date)
	}
	if got.Character.ID != "c3" {
		t.Errorf("character = %q, want c3 (second candidate with an image)", got.Character.ID)
	}
	if !got.Character.HasImage() {
		t.Error("featured character must carry an image")
	}
	if got.Spell.ID != "s2" || got.Potion.ID != "p2" {
		t.Errorf("spell/potion = %q/%q", got.Spell.ID, got.Potion.ID)
	}
}

func TestDailyFeatureSkipsImagelessCharacters(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	catalog := fullCatalog()

	// Whatever index the selector draws, the pick must come from the
	// image-bearing candidates only.
	for pick := 0; pick < len(catalog.characters); pick++ {
		repo := &mockDailyRepo{}
		svc := newTestDaily(repo, catalog, now, pick)
		got, err := svc.Feature(context.Background())
		if err != nil {
			t.Fatalf("pick %d: %v", pick, err)
		}
		if !got.Character.HasImage() {
			t.Errorf("pick %d selected image-less character %q", pick, got.Character.Name)
		}
	}
}

func TestDailyFeatureFetchFailureWritesNothing(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	upstreamErr := errors.New("potions unavailable")

	catalog := fullCatalog()
	catalog.potionErr = upstreamErr

	repo := &mockDailyRepo{}
	svc := newTestDaily(repo, catalog, now)

	if _, err := svc.Feature(context.Background()); !errors.Is(err, upstreamErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Error("nothing may be persisted when any of the three fetches fails")
	}
}

func TestDailyFeatureEmptyPool(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	catalog := fullCatalog()
	catalog.characters = []model.Character{{ID: "c2", Name: "Peeves"}} // no image

	svc := newTestDaily(&mockDailyRepo{}, catalog, now)
	if _, err := svc.Feature(context.Background()); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
}

func TestDailyFeatureDuplicateReReadsPinned(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	pinned := &model.DailyFeature{
		Character: model.Character{ID: "c1", Image: "https://img/harry.jpg"},
		Spell:     model.Spell{ID: "s1"},
		Potion:    model.Potion{ID: "p1"},
		Date:      "2026-08-29",
	}

	repo := &mockDailyRepo{}
	repo.getFunc = func(ctx context.Context, date string) (*model.DailyFeature, error) {
		// Absent on the first read, present after the losing create.
		if repo.createCalls > 0 {
			return pinned, nil
		}
		return nil, nil
	}
	repo.createFunc = func(ctx context.Context, feature *model.DailyFeature) error {
		return database.ErrDuplicate
	}

	// Force a local pick that differs from the pinned document.
	svc := newTestDaily(repo, fullCatalog(), now, 1)
	got, err := svc.Feature(context.Background())
	if err != nil {
		t.Fatalf("Feature() error: %v", err)
	}
	if got != pinned {
		t.Errorf("race loser must discard its pick and return the pinned document, got %+v", got)
	}
}
