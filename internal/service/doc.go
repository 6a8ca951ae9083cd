// Package service implements the business logic of Lumos.
//
// Services sit between the HTTP handlers and the repositories: the catalog
// service layers the 24-hour document cache over the remote source
// adapters, the daily service pins one feature document per calendar date,
// the comment service enforces the single-parent-reference invariant and
// author-only edits, and the profile service owns lazy creation and
// field-level merge updates.
//
// Each service depends on narrow repository interfaces declared here, so
// unit tests substitute hand-rolled mocks without touching SurrealDB.
// Failures are reported through the sentinel errors in errors.go and are
// never recovered inside the services — callers map them onto the HTTP
// surface and keep previously rendered state intact.
package service
