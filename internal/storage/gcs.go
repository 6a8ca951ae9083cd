package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// GCSStore writes objects to a single Google Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore creates a store over the named bucket. Credentials come from
// the ambient environment (workload identity or GOOGLE_APPLICATION_CREDENTIALS).
func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("while creating GCS client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

// Put writes data under key and returns the public object URL. An existing
// object at the same key is overwritten; avatar keys embed a fresh UUID so
// this does not happen in practice.
func (s *GCSStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	obj := s.client.Bucket(s.bucket).Object(key)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=86400"

	// Disable chunking; avatars are small and fully buffered already.
	w.ChunkSize = 0

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("while writing object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("while closing object writer for %q: %w", key, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key), nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
