// Package config provides configuration management for filestore.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file, with defaults sourced from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO endpoint, credentials and bucket settings
//   - Log: Logging level and format
//
// # Resolution Order
//
// This package is the ambient configuration source. Commands resolve their
// explicit inputs (flags) against it: an explicit value wins, then the
// environment/.env value, then the struct-tag default. The merged
// storage.Config is what storage.New validates.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	backend, err := storage.New(cfg.Storage)
package config
