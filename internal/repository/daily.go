package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/model"
)

// DailyRepository stores one immutable feature document per calendar date.
type DailyRepository struct {
	db database.Database
}

// NewDailyRepository creates a new daily feature repository.
func NewDailyRepository(db database.Database) *DailyRepository {
	return &DailyRepository{db: db}
}

// Get reads the feature document for a date (YYYY-MM-DD). Returns
// (nil, nil) when no document exists for that date.
func (r *DailyRepository) Get(ctx context.Context, date string) (*model.DailyFeature, error) {
	query := `SELECT * FROM type::thing("daily_feature", $date)`
	vars := map[string]interface{}{"date": date}

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

	var feature model.DailyFeature
	if err := json.Unmarshal([]byte(getString(data, "doc")), &feature); err != nil {
		return nil, fmt.Errorf("corrupt daily feature for %s: %w", date, err)
	}
	return &feature, nil
}

// Create writes the feature document for its date, failing with
// database.ErrDuplicate when a document for that date already exists. The
// document is stored as a verbatim JSON blob so every later read returns it
// bit-identical.
func (r *DailyRepository) Create(ctx context.Context, feature *model.DailyFeature) error {
	doc, err := json.Marshal(feature)
	if err != nil {
		return fmt.Errorf("encoding daily feature: %w", err)
	}

	query := `CREATE type::thing("daily_feature", $date) CONTENT {
		date: $date,
		doc: $doc
	}`
	vars := map[string]interface{}{
		"date": feature.Date,
		"doc":  string(doc),
	}

	return r.db.Execute(ctx, query, vars)
}
