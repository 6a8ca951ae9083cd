package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/model"
)

// optionsKey is the fixed record id of the single options document.
const optionsKey = "all"

// OptionsRepository stores the single form-options document.
type OptionsRepository struct {
	db database.Database
}

// NewOptionsRepository creates a new options repository.
func NewOptionsRepository(db database.Database) *OptionsRepository {
	return &OptionsRepository{db: db}
}

// Get reads the options document. Returns (nil, nil) when it has not been
// seeded yet.
func (r *OptionsRepository) Get(ctx context.Context) (*model.Options, error) {
	query := `SELECT * FROM type::thing("options", $key)`
	vars := map[string]interface{}{"key": optionsKey}

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

	var options model.Options
	if err := json.Unmarshal([]byte(getString(data, "doc")), &options); err != nil {
		return nil, fmt.Errorf("corrupt options document: %w", err)
	}
	return &options, nil
}

// Put writes the options document, replacing any previous version.
func (r *OptionsRepository) Put(ctx context.Context, options model.Options) error {
	doc, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("encoding options: %w", err)
	}

	query := `UPSERT type::thing("options", $key) CONTENT { doc: $doc }`
	vars := map[string]interface{}{
		"key": optionsKey,
		"doc": string(doc),
	}

	return r.db.Execute(ctx, query, vars)
}
