package service

import (
	"context"
	"errors"
	"testing"

	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/model"
)

type mockProfileRepo struct {
	createFunc func(ctx context.Context, uid string, email *string) (*model.UserProfile, error)
	getFunc    func(ctx context.Context, uid string) (*model.UserProfile, error)
	mergeFunc  func(ctx context.Context, uid string, fields map[string]interface{}) (*model.UserProfile, error)

	createCalls int
	mergeCalls  int
}

func (m *mockProfileRepo) Create(ctx context.Context, uid string, email *string) (*model.UserProfile, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, uid, email)
	}
	return &model.UserProfile{UID: uid, Email: email}, nil
}

func (m *mockProfileRepo) GetByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, uid)
	}
	return nil, nil
}

func (m *mockProfileRepo) Merge(ctx context.Context, uid string, fields map[string]interface{}) (*model.UserProfile, error) {
	m.mergeCalls++
	if m.mergeFunc != nil {
		return m.mergeFunc(ctx, uid, fields)
	}
	return nil, database.ErrNotFound
}

func strPtr(s string) *string { return &s }

func TestProfileGetOrCreateFirstSighting(t *testing.T) {
	email := "harry@owlpost.dev"
	repo := &mockProfileRepo{
		createFunc: func(ctx context.Context, uid string, e *string) (*model.UserProfile, error) {
			if uid != "user:1" || e == nil || *e != email {
				t.Errorf("create with uid=%q email=%v", uid, e)
			}
			return &model.UserProfile{UID: uid, Email: e}, nil
		},
	}
	svc := NewProfileService(repo)

	got, err := svc.GetOrCreate(context.Background(), "user:1", &email)
	if err != nil {
		t.Fatalf("GetOrCreate() error: %v", err)
	}
	if got.UID != "user:1" {
		t.Errorf("profile = %+v", got)
	}
	if got.Nickname != nil || got.Biography != nil || got.QuidditchPosition != nil {
		t.Error("optional fields must start absent")
	}
}

func TestProfileGetOrCreateIdempotent(t *testing.T) {
	nickname := "The Chosen One"
	existing := &model.UserProfile{UID: "user:1", Nickname: &nickname}
	repo := &mockProfileRepo{
		getFunc: func(ctx context.Context, uid string) (*model.UserProfile, error) {
			return existing, nil
		},
	}
	svc := NewProfileService(repo)

	got, err := svc.GetOrCreate(context.Background(), "user:1", strPtr("harry@owlpost.dev"))
	if err != nil {
		t.Fatalf("GetOrCreate() error: %v", err)
	}
	if got != existing {
		t.Error("existing profile must be returned unchanged")
	}
	if repo.createCalls != 0 {
		t.Error("no create expected when the profile exists")
	}
}

func TestProfileGetOrCreateRaceReReads(t *testing.T) {
	winner := &model.UserProfile{UID: "user:1"}
	repo := &mockProfileRepo{}
	repo.getFunc = func(ctx context.Context, uid string) (*model.UserProfile, error) {
		if repo.createCalls > 0 {
			return winner, nil
		}
		return nil, nil
	}
	repo.createFunc = func(ctx context.Context, uid string, email *string) (*model.UserProfile, error) {
		return nil, database.ErrDuplicate
	}
	svc := NewProfileService(repo)

	got, err := svc.GetOrCreate(context.Background(), "user:1", nil)
	if err != nil {
		t.Fatalf("GetOrCreate() error: %v", err)
	}
	if got != winner {
		t.Error("losing creator must return the document that won the race")
	}
}

func TestProfileUpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := &mockProfileRepo{
		mergeFunc: func(ctx context.Context, uid string, fields map[string]interface{}) (*model.UserProfile, error) {
			if len(fields) != 2 {
				t.Errorf("fields = %v, want exactly the two supplied", fields)
			}
			if fields["nickname"] != "Hermione" {
				t.Errorf("nickname = %v", fields["nickname"])
			}
			if fields["hogwarts_year"] != 3 {
				t.Errorf("hogwarts_year = %v", fields["hogwarts_year"])
			}
			nick := "Hermione"
			year := 3
			bio := "kept from before"
			return &model.UserProfile{UID: uid, Nickname: &nick, HogwartsYear: &year, Biography: &bio}, nil
		},
	}
	svc := NewProfileService(repo)

	year := 3
	got, err := svc.Update(context.Background(), "user:2", model.ProfilePatch{
		Nickname:     strPtr("Hermione"),
		HogwartsYear: &year,
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got.Biography == nil || *got.Biography != "kept from before" {
		t.Error("fields absent from the patch must survive the merge")
	}
}

func TestProfileUpdateEmptyPatchReturnsCurrent(t *testing.T) {
	current := &model.UserProfile{UID: "user:1"}
	repo := &mockProfileRepo{
		getFunc: func(ctx context.Context, uid string) (*model.UserProfile, error) {
			return current, nil
		},
	}
	svc := NewProfileService(repo)

	got, err := svc.Update(context.Background(), "user:1", model.ProfilePatch{})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got != current {
		t.Error("empty patch must answer with the current document")
	}
	if repo.mergeCalls != 0 {
		t.Error("empty patch must not write")
	}
}

func TestProfileUpdateBeforeCreate(t *testing.T) {
	svc := NewProfileService(&mockProfileRepo{})

	_, err := svc.Update(context.Background(), "user:ghost", model.ProfilePatch{Nickname: strPtr("x")})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
