// Package helpers provides common test utilities for the Lumos API.
//
// This package includes HTTP request builders, response validators,
// JWT token generation, and assertion helpers for testing API endpoints.
//
// # Requests
//
//	req := helpers.NewRequest(t, "POST", "/v1/comments").
//	    WithBody(body).
//	    WithAuth(jwtHelper, user).
//	    Build()
//
// # Assertions
//
//	helpers.AssertStatus(t, resp, http.StatusCreated)
//	helpers.AssertValidationError(t, resp, "content")
//	helpers.AssertRecordExists(t, tdb.DB, "comment", comment.ID)
package helpers
