package storage_test

import (
	"testing"

	"filestore/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	valid := storage.Config{
		Endpoint:  "localhost:9000",
		AccessKey: "k",
		SecretKey: "s",
		Bucket:    "b",
	}
	assert.NoError(t, valid.Validate())

	t.Run("ReportsAllMissingFields", func(t *testing.T) {
		err := storage.Config{}.Validate()
		assert.ErrorIs(t, err, storage.ErrInvalidConfig)
		assert.ErrorContains(t, err, "endpoint")
		assert.ErrorContains(t, err, "access_key")
		assert.ErrorContains(t, err, "secret_key")
		assert.ErrorContains(t, err, "bucket")
	})

	t.Run("SchemeOnlyEndpointIsMissing", func(t *testing.T) {
		cfg := valid
		cfg.Endpoint = "https:///"
		assert.ErrorIs(t, cfg.Validate(), storage.ErrInvalidConfig)
	})
}
