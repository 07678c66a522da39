// Package storage provides a file-storage backend over S3-compatible object
// stores.
//
// It wraps the MinIO Go client behind a small Client interface and exposes a
// Backend with the five operations a hosting framework expects from a storage
// backend: Save, Open, Exists, Delete and URL. This supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Backend
//
// A Backend is bound to one bucket and is immutable after construction.
// Construction validates that endpoint, access key, secret key and bucket are
// all present (after normalizing the endpoint to bare host[:port] form) and
// fails with ErrInvalidConfig otherwise.
//
//	backend, err := storage.New(cfg)
//	if err != nil { ... }
//	name, err := backend.Save(ctx, "a/b.png", storage.Bytes(data, "image/png"))
//
// # Content
//
// Save takes a Content value built from one of three variants: Bytes for
// in-memory payloads, SizedReader for streams of known length, and
// UnsizedReader for streams whose length must be learned by buffering. The
// store protocol requires the exact length before the upload starts.
//
// # Errors
//
// Missing objects surface as errors matching ErrNotFound. Exists maps a
// confirmed absence to (false, nil) but propagates every other store error;
// Delete treats absence as success and propagates the rest.
//
// # Client Interface
//
// The Client interface abstracts the underlying store, making it easy to mock
// storage interactions for unit testing (see core/storage/mocks).
package storage
