package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/model"
)

// Factory creates test entities in the database
type Factory struct {
	db database.Database
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{db: db}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	// Store cancel to prevent leak warning
	_ = cancel
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Email    string
	Password string
}

// CreateUser creates an account with optional customizations. The password
// defaults to "alohomora1" so tests can log in through the API if needed.
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Email:    fmt.Sprintf("user_%s@test.local", randomID()),
		Password: "alohomora1",
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	query := `
		CREATE user CONTENT {
			email: string::lowercase($email),
			hash: $hash,
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"email": o.Email,
		"hash":  string(hash),
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}

	data := extractFirstResult(t, results)
	return &model.User{
		ID:        getString(data, "id"),
		Email:     getString(data, "email"),
		CreatedOn: getTime(data, "created_on"),
	}
}

// ============================================================================
// Profile Fixtures
// ============================================================================

// ProfileOpts customizes profile creation
type ProfileOpts struct {
	Nickname      *string
	FavoriteHouse *string
}

// CreateProfile creates a profile for the given user, keyed by the user id
// the same way the application does.
func (f *Factory) CreateProfile(t *testing.T, user *model.User, opts ...func(*ProfileOpts)) *model.UserProfile {
	t.Helper()

	o := &ProfileOpts{}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		CREATE type::thing("user_profile", $uid) CONTENT {
			uid: $uid,
			email: $email,
			nickname: $nickname,
			favorite_house: $favorite_house,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"uid":            user.ID,
		"email":          user.Email,
		"nickname":       o.Nickname,
		"favorite_house": o.FavoriteHouse,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create profile: %v", err)
	}

	data := extractFirstResult(t, results)
	return &model.UserProfile{
		UID:           getString(data, "uid"),
		Email:         getStringPtr(data, "email"),
		Nickname:      getStringPtr(data, "nickname"),
		FavoriteHouse: getStringPtr(data, "favorite_house"),
		CreatedOn:     getTime(data, "created_on"),
		UpdatedOn:     getTime(data, "updated_on"),
	}
}

// ============================================================================
// Comment Fixtures
// ============================================================================

// CommentOpts customizes comment creation
type CommentOpts struct {
	Content string
}

// CreateComment creates a comment by the given user on the referenced page.
func (f *Factory) CreateComment(t *testing.T, user *model.User, ref model.CommentRef, opts ...func(*CommentOpts)) *model.Comment {
	t.Helper()

	o := &CommentOpts{
		Content: fmt.Sprintf("Test comment %s", randomID()),
	}
	for _, fn := range opts {
		fn(o)
	}

	var field string
	switch ref.Kind {
	case model.RefCharacter:
		field = "character_id"
	case model.RefPotion:
		field = "potion_id"
	default:
		t.Fatalf("fixtures: unknown reference kind %q", ref.Kind)
	}

	query := fmt.Sprintf(`
		CREATE comment CONTENT {
			%s: $parent_id,
			user_id: $user_id,
			content: $content,
			created_on: time::now(),
			updated_on: time::now()
		}
	`, field)
	vars := map[string]interface{}{
		"parent_id": ref.ID,
		"user_id":   user.ID,
		"content":   o.Content,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create comment: %v", err)
	}

	data := extractFirstResult(t, results)
	return &model.Comment{
		ID:          getString(data, "id"),
		CharacterID: getStringPtr(data, "character_id"),
		PotionID:    getStringPtr(data, "potion_id"),
		UserID:      getString(data, "user_id"),
		Content:     getString(data, "content"),
		CreatedOn:   getTime(data, "created_on"),
		UpdatedOn:   getTime(data, "updated_on"),
	}
}

// ============================================================================
// Cache and Daily Feature Fixtures
// ============================================================================

// SeedCache writes a cache document for a collection key, timestamped at
// fetchedAt. The value is JSON-encoded the same way the application stores it.
func (f *Factory) SeedCache(t *testing.T, key string, value interface{}, fetchedAt time.Time) {
	t.Helper()

	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("fixtures: failed to encode cache value: %v", err)
	}

	query := `UPSERT type::thing("app_cache", $key) CONTENT {
		data: $data,
		timestamp: $timestamp
	}`
	vars := map[string]interface{}{
		"key":       key,
		"data":      string(data),
		"timestamp": fetchedAt.UnixMilli(),
	}

	if err := f.db.Execute(ctx(), query, vars); err != nil {
		t.Fatalf("fixtures: failed to seed cache %q: %v", key, err)
	}
}

// SeedDailyFeature pins a feature document for its date.
func (f *Factory) SeedDailyFeature(t *testing.T, feature *model.DailyFeature) {
	t.Helper()

	doc, err := json.Marshal(feature)
	if err != nil {
		t.Fatalf("fixtures: failed to encode daily feature: %v", err)
	}

	query := `CREATE type::thing("daily_feature", $date) CONTENT {
		date: $date,
		doc: $doc
	}`
	vars := map[string]interface{}{
		"date": feature.Date,
		"doc":  string(doc),
	}

	if err := f.db.Execute(ctx(), query, vars); err != nil {
		t.Fatalf("fixtures: failed to seed daily feature: %v", err)
	}
}

// ============================================================================
// Result Parsing
// ============================================================================

func extractFirstResult(t *testing.T, results []interface{}) map[string]interface{} {
	t.Helper()
	if len(results) == 0 {
		t.Fatal("fixtures: no results returned")
	}

	// Handle SurrealDB response wrapper
	resp, ok := results[0].(map[string]interface{})
	if !ok {
		t.Fatalf("fixtures: unexpected result type: %T", results[0])
	}

	result, ok := resp["result"]
	if !ok {
		t.Fatal("fixtures: no result in response")
	}

	// Handle array result
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			t.Fatal("fixtures: empty result array")
		}
		data, ok := arr[0].(map[string]interface{})
		if !ok {
			t.Fatalf("fixtures: unexpected array item type: %T", arr[0])
		}
		return data
	}

	// Handle single result
	data, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("fixtures: unexpected result type: %T", result)
	}
	return data
}

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	// Record IDs can come back as a {tb, id} map
	if v := data[key]; v != nil {
		if m, ok := v.(map[string]interface{}); ok {
			if tb, ok := m["tb"].(string); ok {
				if id := m["id"]; id != nil {
					return fmt.Sprintf("%s:%v", tb, id)
				}
			}
		}
		s := fmt.Sprintf("%v", v)
		// Convert "{table id}" to "table:id"
		if len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}' {
			inner := s[1 : len(s)-1]
			for i, c := range inner {
				if c == ' ' {
					return inner[:i] + ":" + inner[i+1:]
				}
			}
		}
		return s
	}
	return ""
}

func getStringPtr(data map[string]interface{}, key string) *string {
	if v, ok := data[key].(string); ok {
		return &v
	}
	return nil
}

func getTime(data map[string]interface{}, key string) time.Time {
	switch v := data[key].(type) {
	case time.Time:
		return v
	case string:
		t, _ := time.Parse(time.RFC3339Nano, v)
		return t
	}
	return time.Time{}
}
