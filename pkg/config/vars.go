package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "authcheck"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/authcheck by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for the local store.
// Returns ~/.local/share/authcheck by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/authcheck/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SnapshotPath returns the default SQLite store file.
func SnapshotPath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "authcheck.db")
}

// MergesExamplePath returns the path of the example merges file.
func MergesExamplePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "merges.example.yaml")
}
