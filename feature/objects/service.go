package objects

import (
	"context"
	"io"

	"filestore/core/storage"

	"go.uber.org/zap"
)

// Service exposes the storage backend to the HTTP layer.
type Service struct {
	backend *storage.Backend
	logger  *zap.Logger
}

// NewService creates a new objects service.
func NewService(backend *storage.Backend, logger *zap.Logger) *Service {
	return &Service{
		backend: backend,
		logger:  logger,
	}
}

// Upload stores the stream under name. size may be -1 when the length is
// unknown, in which case the backend buffers the stream first.
func (s *Service) Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	var content storage.Content
	if size >= 0 {
		content = storage.SizedReader(r, size, contentType)
	} else {
		content = storage.UnsizedReader(r, contentType)
	}
	return s.backend.Save(ctx, name, content)
}

// Download returns the object content as a seekable in-memory file.
func (s *Service) Download(ctx context.Context, name string) (*storage.File, error) {
	return s.backend.Open(ctx, name)
}

// Exists reports whether the object is present.
func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	return s.backend.Exists(ctx, name)
}

// Delete removes the object. Missing objects are not an error.
func (s *Service) Delete(ctx context.Context, name string) error {
	return s.backend.Delete(ctx, name)
}

// URL returns the object's public URL without touching the store.
func (s *Service) URL(name string) string {
	return s.backend.URL(name)
}

// Health checks that the configured bucket is reachable.
func (s *Service) Health(ctx context.Context) error {
	return s.backend.Ping(ctx)
}
