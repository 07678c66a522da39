// Package middleware groups the HTTP middleware used by the server:
// rayid (per-request tracing IDs) and auth (API-key protection).
package middleware
