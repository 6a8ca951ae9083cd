// Package middleware provides HTTP middleware for the Lumos API.
//
// The middleware package contains reusable middleware components for
// authentication, rate limiting, idempotency, and request processing.
//
// # Authentication
//
// The auth middleware validates bearer tokens and places the identity in
// the request context. Handlers read it back with helper functions:
//
//	userID := middleware.GetUserID(r.Context())
//
// # Rate Limiting
//
// Token-bucket limiting keyed by user ID when authenticated, remote
// address otherwise.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetUserEmail(ctx): Returns authenticated user email
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
