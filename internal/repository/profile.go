package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/model"
)

// ProfileRepository handles user profile data access. Profiles are keyed by
// the authenticated identity, one record per uid.
type ProfileRepository struct {
	db database.Database
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db database.Database) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create persists a fresh profile for an identity. Optional fields start
// absent and read back as nil. Fails with database.ErrDuplicate when the
// identity already has a profile.
func (r *ProfileRepository) Create(ctx context.Context, uid string, email *string) (*model.UserProfile, error) {
	query := `CREATE type::thing("user_profile", $uid) CONTENT {
		uid: $uid,
		email: $email,
		created_on: time::now(),
		updated_on: time::now()
	}`
	vars := map[string]interface{}{
		"uid":   uid,
		"email": email,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := recordList(result)
	if len(records) == 0 {
		return nil, errors.New("create returned no record")
	}
	return parseProfile(records[0]), nil
}

// GetByUID retrieves a profile. Returns (nil, nil) when the identity has no
// profile yet.
func (r *ProfileRepository) GetByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	query := `SELECT * FROM type::thing("user_profile", $uid)`
	vars := map[string]interface{}{"uid": uid}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := recordData(result)
	if err != nil {
		return nil, err
	}
	return parseProfile(data), nil
}

// Merge applies a field-level partial update: only the supplied columns are
// written, everything else is left untouched. Returns the merged record, or
// database.ErrNotFound when no profile exists for the identity.
func (r *ProfileRepository) Merge(ctx context.Context, uid string, fields map[string]interface{}) (*model.UserProfile, error) {
	query := `UPDATE type::thing("user_profile", $uid) SET updated_on = time::now()`
	vars := map[string]interface{}{"uid": uid}

	i := 0
	for column, value := range fields {
		param := fmt.Sprintf("f%d", i)
		query += fmt.Sprintf(", %s = $%s", column, param)
		vars[param] = value
		i++
	}
	query += " RETURN AFTER"

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	data, err := recordData(result)
	if err != nil {
		return nil, err
	}
	return parseProfile(data), nil
}

// parseProfile decodes a raw record map into a UserProfile. Absent optional
// columns stay nil.
func parseProfile(data map[string]interface{}) *model.UserProfile {
	profile := &model.UserProfile{
		UID:       getString(data, "uid"),
		CreatedOn: parseTime(data["created_on"]),
		UpdatedOn: parseTime(data["updated_on"]),
	}

	strField := func(key string) *string {
		if s, ok := data[key].(string); ok {
			return &s
		}
		return nil
	}

	profile.Email = strField("email")
	profile.Nickname = strField("nickname")
	profile.ProfilePicture = strField("profile_picture")
	profile.FavoriteHouse = strField("favorite_house")
	profile.FavoriteSpell = strField("favorite_spell")
	profile.FavoriteCharacter = strField("favorite_character")
	profile.FavoritePotion = strField("favorite_potion")
	profile.WandCore = strField("wand_core")
	profile.WandWood = strField("wand_wood")
	profile.Patronus = strField("patronus")
	profile.Biography = strField("biography")

	if s, ok := data["quidditch_position"].(string); ok {
		pos := model.QuidditchPosition(s)
		profile.QuidditchPosition = &pos
	}
	if _, ok := data["hogwarts_year"]; ok {
		year := int(getInt64(data, "hogwarts_year"))
		profile.HogwartsYear = &year
	}
	switch n := data["wand_length"].(type) {
	case float64:
		profile.WandLength = &n
	case int64:
		f := float64(n)
		profile.WandLength = &f
	}

	return profile
}
