// Package database provides the document-store abstraction for Lumos.
//
// Every persistent collection in the system — cached remote collections,
// daily feature documents, comments, user profiles, accounts, and the
// form-options document — lives in SurrealDB and is reached through the
// Database interface defined here. Repositories never talk to the driver
// directly, which keeps them swappable against a fake in tests.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns multiple results (for SELECT queries returning lists)
//   - QueryOne: Returns a single result (for SELECT by ID)
//   - Execute: No return value (for CREATE/UPDATE/DELETE mutations)
//
// # Consistency Model
//
// There is deliberately no transaction support. Every write in Lumos is a
// single-document create or wholesale overwrite, and the last writer wins.
// Create-if-absent flows (the daily feature document) rely on SurrealDB's
// CREATE-with-record-id semantics, which fail with ErrDuplicate when the
// record already exists.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: record does not exist
//   - ErrDuplicate: record already exists (unique index or record-id clash)
//   - ErrConnection: connection or handshake failure
//   - ErrQuery: query execution failure
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database
