package service

import (
	"context"
	"errors"
	"testing"

	"github.com/owlpost/lumos/internal/model"
)

type mockOptionsRepo struct {
	stored *model.Options
	puts   int
}

func (m *mockOptionsRepo) Get(ctx context.Context) (*model.Options, error) {
	return m.stored, nil
}

func (m *mockOptionsRepo) Put(ctx context.Context, options model.Options) error {
	m.puts++
	m.stored = &options
	return nil
}

func TestOptionsGetUnseeded(t *testing.T) {
	svc := NewOptionsService(&mockOptionsRepo{})
	if _, err := svc.Get(context.Background()); !errors.Is(err, ErrOptionsNotFound) {
		t.Fatalf("expected ErrOptionsNotFound, got %v", err)
	}
}

func TestOptionsEnsureDefaults(t *testing.T) {
	repo := &mockOptionsRepo{}
	svc := NewOptionsService(repo)

	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("EnsureDefaults() error: %v", err)
	}
	if repo.puts != 1 {
		t.Fatalf("puts = %d, want 1", repo.puts)
	}

	// A second call must not overwrite the existing document.
	seeded := repo.stored
	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("EnsureDefaults() second call: %v", err)
	}
	if repo.puts != 1 || repo.stored != seeded {
		t.Error("existing options document was overwritten")
	}

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() after seed: %v", err)
	}
	if len(got.Houses) == 0 || len(got.QuidditchPositions) == 0 {
		t.Errorf("defaults incomplete: %+v", got)
	}
}
