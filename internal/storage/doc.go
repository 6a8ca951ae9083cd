// Package storage provides binary-object storage backed by Google Cloud
// Storage. Avatar images are the only objects the application writes; they
// are world-readable once stored, so the public object URL is the canonical
// reference persisted on the profile.
package storage
