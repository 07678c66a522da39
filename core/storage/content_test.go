package storage_test

import (
	"testing"

	"filestore/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestContentType(t *testing.T) {
	tests := []struct {
		name    string
		content storage.Content
		want    string
	}{
		{"BytesExplicit", storage.Bytes([]byte("x"), "text/plain"), "text/plain"},
		{"BytesDefault", storage.Bytes([]byte("x"), ""), "application/octet-stream"},
		{"ZeroValue", storage.Content{}, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.content.ContentType())
		})
	}
}
