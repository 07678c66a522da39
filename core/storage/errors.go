package storage

import (
	"errors"

	"github.com/minio/minio-go/v7"
)

// ErrInvalidConfig is returned when required connection parameters are missing.
// It is always wrapped with the list of missing fields.
var ErrInvalidConfig = errors.New("incomplete storage configuration")

// ErrNotFound is returned when the store reports an object as absent.
// Match it with errors.Is.
var ErrNotFound = errors.New("object not found")

// isNotFound reports whether err is the store's way of saying "no such
// object". Only object-level absence codes count: a missing bucket, auth
// failure or network failure must not be collapsed into absence.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchObject":
		return true
	}
	return false
}
