// Package objects exposes the storage backend over HTTP.
//
// Routes (all object names are path wildcards, so names may contain slashes):
//
//	PUT    /objects/*  — store the request body, respond with name and URL
//	GET    /objects/*  — download the object content
//	HEAD   /objects/*  — existence check (200 or 404, no body)
//	DELETE /objects/*  — remove the object (idempotent)
//	GET    /urls/*     — public URL for a name, no store call
//	GET    /health     — bucket reachability
//
// The handler/service split mirrors the rest of the application: the handler
// owns HTTP concerns, the service wraps the storage backend.
package objects
