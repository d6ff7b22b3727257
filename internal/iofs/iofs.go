// Package iofs prepares directories and files authcheck needs in the
// user's home.
package iofs

import (
	"os"

	"github.com/gnames/authcheck/pkg/config"
	"github.com/gnames/authcheck/pkg/templates"
)

// EnsureDirs creates config, data and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the config.yaml template and the merges file
// example unless they already exist.
func EnsureConfigFile(homeDir string) error {
	files := []struct {
		path string
		data string
	}{
		{config.ConfigFilePath(homeDir), templates.ConfigYAML},
		{config.MergesExamplePath(homeDir), templates.MergesYAML},
	}

	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			continue
		}
		if err := os.WriteFile(f.path, []byte(f.data), 0644); err != nil {
			return CopyFileError(f.path, err)
		}
	}

	return nil
}

// WriteFile writes data to path, creating or truncating it.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}

// ReadFile reads the whole file.
func ReadFile(path string) ([]byte, error) {
	res, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}
