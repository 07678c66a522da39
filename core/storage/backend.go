package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// Backend is a file-storage backend persisting objects in a single bucket of
// an S3-compatible store. It is immutable after construction and safe for
// concurrent use to the extent the underlying client is.
type Backend struct {
	client  Client
	bucket  string
	baseURL string
}

// New validates cfg, creates the store client and returns a ready backend.
// No client is created when the configuration is incomplete.
func New(cfg Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithClient(cfg, client)
}

// NewWithClient builds a backend on top of an existing client. Used by New
// and by tests that substitute a mock client.
func NewWithClient(cfg Config, client Client) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scheme := "http"
	if cfg.Secure {
		scheme = "https"
	}
	return &Backend{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: scheme + "://" + normalizeEndpoint(cfg.Endpoint),
	}, nil
}

// Bucket returns the bucket this backend writes to.
func (b *Backend) Bucket() string {
	return b.bucket
}

// Save uploads content under name and returns the name unchanged. An existing
// object with the same name is overwritten; the backend never renames to
// avoid collisions. Unsized content is buffered in memory first because the
// store needs the exact length up front.
func (b *Backend) Save(ctx context.Context, name string, content Content) (string, error) {
	reader, size, err := content.materialize()
	if err != nil {
		return "", fmt.Errorf("failed to read content for %q: %w", name, err)
	}

	_, err = b.client.PutObject(ctx, b.bucket, name, reader, size, minio.PutObjectOptions{
		ContentType: content.ContentType(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %q: %w", name, err)
	}
	return name, nil
}

// Open reads the whole object into memory and returns a seekable File
// positioned at 0. The store response is released before Open returns, read
// failure included. A missing object yields an error matching ErrNotFound.
func (b *Backend) Open(ctx context.Context, name string) (*File, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, b.readError(name, err)
	}
	defer obj.Close()

	// The minio client defers most errors, not-found included, to the
	// first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, b.readError(name, err)
	}
	return NewFile(name, data, obj.ContentType()), nil
}

func (b *Backend) readError(name string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("object %q: %w", name, ErrNotFound)
	}
	return fmt.Errorf("failed to get object %q: %w", name, err)
}

// Exists stats the object. A confirmed absence is (false, nil); any other
// store failure is returned as an error so callers can't mistake "could not
// determine" for "absent".
func (b *Backend) Exists(ctx context.Context, name string) (bool, error) {
	_, err := b.client.StatObject(ctx, b.bucket, name, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat object %q: %w", name, err)
}

// Delete removes the object. Deleting a missing object succeeds, so Delete is
// idempotent, but other store failures propagate.
func (b *Backend) Delete(ctx context.Context, name string) error {
	err := b.client.RemoveObject(ctx, b.bucket, name, minio.RemoveObjectOptions{})
	if err == nil || isNotFound(err) {
		return nil
	}
	return fmt.Errorf("failed to remove object %q: %w", name, err)
}

// URL returns the public URL of name: base URL, bucket and name joined with
// slashes. Pure string work, no network call, no existence check.
func (b *Backend) URL(name string) string {
	return b.baseURL + "/" + b.bucket + "/" + name
}

// Ping verifies the configured bucket is reachable with the configured
// credentials. Used by health reporting; never creates the bucket.
func (b *Backend) Ping(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", b.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", b.bucket)
	}
	return nil
}
