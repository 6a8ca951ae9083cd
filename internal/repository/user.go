package repository

import (
	"context"
	"errors"

	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/model"
)

// UserRepository handles authentication account storage.
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new account. The email column carries a unique index;
// a clash surfaces as database.ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `CREATE user SET
		email = string::lowercase($email),
		hash = $hash,
		created_on = time::now()`
	vars := map[string]interface{}{
		"email": user.Email,
		"hash":  user.Hash,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := recordList(result)
	if len(records) == 0 {
		return errors.New("create returned no record")
	}

	created := parseUser(records[0])
	user.ID = created.ID
	user.Email = created.Email
	user.CreatedOn = created.CreatedOn
	return nil
}

// GetByEmail retrieves an account by email. Returns (nil, nil) when no
// account matches.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = string::lowercase($email) LIMIT 1`
	vars := map[string]interface{}{"email": email}

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
	return parseUser(data), nil
}

// GetByID retrieves an account by record id. Returns (nil, nil) when the
// record is gone.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

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
	return parseUser(data), nil
}

func parseUser(data map[string]interface{}) *model.User {
	return &model.User{
		ID:        extractRecordID(data["id"]),
		Email:     getString(data, "email"),
		Hash:      getString(data, "hash"),
		CreatedOn: parseTime(data["created_on"]),
	}
}
