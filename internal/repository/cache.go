package repository

import (
	"context"
	"errors"
	"time"

	"github.com/owlpost/lumos/internal/database"
)

// CacheDocument is a persisted point-in-time snapshot of one remote
// collection. Data holds the collection verbatim as a JSON array so a cache
// hit returns exactly the bytes that were fetched; Timestamp is the fetch
// moment in epoch millis, never the read moment.
type CacheDocument struct {
	Key       string
	Data      []byte
	Timestamp int64
}

// FetchedAt returns the fetch moment as a time.Time.
func (d *CacheDocument) FetchedAt() time.Time {
	return time.UnixMilli(d.Timestamp)
}

// CacheRepository stores one document per logical collection key.
type CacheRepository struct {
	db database.Database
}

// NewCacheRepository creates a new cache repository.
func NewCacheRepository(db database.Database) *CacheRepository {
	return &CacheRepository{db: db}
}

// Get reads the cache document for a collection key. Returns (nil, nil)
// when no document exists.
func (r *CacheRepository) Get(ctx context.Context, key string) (*CacheDocument, error) {
	query := `SELECT * FROM type::thing("app_cache", $key)`
	vars := map[string]interface{}{"key": key}

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

	return &CacheDocument{
		Key:       key,
		Data:      []byte(getString(data, "data")),
		Timestamp: getInt64(data, "timestamp"),
	}, nil
}

// Put replaces the cache document for a collection key wholesale. The data
// is never merged with a previous snapshot.
func (r *CacheRepository) Put(ctx context.Context, key string, data []byte, fetchedAt time.Time) error {
	query := `UPSERT type::thing("app_cache", $key) CONTENT {
		data: $data,
		timestamp: $timestamp
	}`
	vars := map[string]interface{}{
		"key":       key,
		"data":      string(data),
		"timestamp": fetchedAt.UnixMilli(),
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete drops the cache document for a collection key. Used by operational
// tooling to force a refetch; absent keys are not an error.
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE type::thing("app_cache", $key)`
	vars := map[string]interface{}{"key": key}

	return r.db.Execute(ctx, query, vars)
}
