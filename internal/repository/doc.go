// Package repository implements data access for Lumos documents.
//
// Each repository owns one SurrealDB table and exposes typed operations on
// it: cached remote collections (app_cache), daily feature documents
// (daily_feature), comments (comment), user profiles (user_profile),
// accounts (user), and the form options document (options).
//
// Repositories enforce no business rules beyond their storage contract.
// Parent-reference validation, ownership checks, and cache expiry decisions
// belong to the service layer.
package repository
