package storage

import (
	"fmt"
	"net/url"
	"strings"
)

// Config holds configuration for the storage backend.
type Config struct {
	// Endpoint is the host[:port] of the storage service. A scheme prefix
	// (http:// or https://) is tolerated and stripped during normalization.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// Secure indicates whether to use TLS for connections and https URLs.
	Secure bool `mapstructure:"secure" default:"false"`
	// Bucket is the name of the bucket objects are stored in.
	Bucket string `mapstructure:"bucket" default:"files"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate reports whether the configuration carries every value required to
// reach the store. The endpoint is checked in its normalized form, so a value
// that is nothing but a scheme or slashes counts as missing.
func (c Config) Validate() error {
	var missing []string
	if normalizeEndpoint(c.Endpoint) == "" {
		missing = append(missing, "endpoint")
	}
	if c.AccessKey == "" {
		missing = append(missing, "access_key")
	}
	if c.SecretKey == "" {
		missing = append(missing, "secret_key")
	}
	if c.Bucket == "" {
		missing = append(missing, "bucket")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	return nil
}

// normalizeEndpoint turns any accepted endpoint spelling into the bare
// host[:port] form the store client expects. Idempotent.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		if u, err := url.Parse(endpoint); err == nil {
			return strings.TrimRight(u.Host, "/")
		}
		// Unparseable URL-shaped endpoint: fall back to prefix stripping.
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
	}
	return strings.TrimRight(endpoint, "/")
}
