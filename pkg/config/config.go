// Package config provides configuration management for authcheck.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// A .env file in the working directory is loaded into the environment
// before env vars are read.
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Quota
//   - Store: backend, path
//   - Database: host, port, user, password, database, ssl_mode
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use AUTHCHECK_ prefix with underscores for nesting:
//
//	AUTHCHECK_QUOTA=2
//	AUTHCHECK_STORE_BACKEND=sqlite
//	AUTHCHECK_DATABASE_HOST=localhost
//	AUTHCHECK_LOG_LEVEL=info
package config

import (
	"runtime"

	"github.com/gnames/authcheck/pkg/model"
)

// Config represents the complete authcheck configuration.
type Config struct {
	// Quota is the number of submissions an author may have. Submissions
	// beyond it are flagged.
	Quota int `mapstructure:"quota" yaml:"quota"`

	// Store selects where the reconciliation state is kept.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Database contains PostgreSQL connection settings for the postgres
	// store backend.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of files read concurrently on import.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// StoreConfig selects the snapshot store.
type StoreConfig struct {
	// Backend is 'sqlite' or 'postgres'.
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Path is the SQLite file. Empty means the default location in the
	// data directory.
	Path string `mapstructure:"path" yaml:"path"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"     yaml:"host"`
	Port     int    `mapstructure:"port"     yaml:"port"`
	User     string `mapstructure:"user"     yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Quota: model.DefaultQuota,
		Store: StoreConfig{
			Backend: "sqlite",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "authcheck",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// StorePath returns the SQLite file path, falling back to the default
// location under HomeDir.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return SnapshotPath(c.HomeDir)
}
