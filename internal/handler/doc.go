// Package handler provides HTTP handlers for the Lumos API.
//
// Handlers translate between the HTTP surface and the service layer: they
// decode requests, call one service method, and encode the result. Business
// rules live in internal/service; handlers only validate shapes and map
// service errors to RFC 9457 problem responses via MapServiceError.
package handler
