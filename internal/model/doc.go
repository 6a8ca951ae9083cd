// Package model defines the domain types shared across Lumos.
//
// Catalog types (Character, Spell, Potion) mirror the payloads of the two
// upstream public APIs and are immutable once fetched — the application never
// writes them back. DailyFeature, Comment, UserProfile, and Options are owned
// by this system and persisted in the document store.
//
// The package also defines the RFC 9457 Problem Details type used by the
// HTTP surface for all error responses.
package model
