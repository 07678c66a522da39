// Package server holds configuration for the HTTP server: the listen port
// and the optional API key protecting the object API.
package server
