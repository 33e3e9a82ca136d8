// Package config defines tracker and server configuration and loading hooks.
//
// Conventions follow the rest of the repo: defaults come from New, the loader
// layers an optional YAML file and PRESENCA_-prefixed env vars on top, and
// external errors are wrapped via this package's sentinels.
package config

import (
	"os"
	"path/filepath"
)

// Config contains process configuration for both binaries. The tracker CLI
// uses the client fields; the local server uses Addr and StorePath.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// BaseURL points the tracker at the remote attendance service.
	BaseURL string `koanf:"base_url"`

	// RequestTimeoutMS bounds each remote call in milliseconds. Zero disables
	// the timeout.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// StateDir holds the per-installation identity file.
	StateDir string `koanf:"state_dir"`

	// CatalogPath optionally overrides the built-in schedule catalog with a
	// YAML file. Empty means built-in.
	CatalogPath string `koanf:"catalog_path"`

	// Addr configures the local server listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// StorePath is the JSON file backing the local server store.
	StorePath string `koanf:"store_path"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		BaseURL:          "http://localhost:8000",
		RequestTimeoutMS: 30_000,
		StateDir:         defaultStateDir(),
		CatalogPath:      "",
		Addr:             ":8000",
		StorePath:        "database.json",
	}
}

// defaultStateDir resolves the user config dir, falling back to the working
// directory when the platform gives none.
func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".presenca"
	}
	return filepath.Join(dir, "presenca")
}
