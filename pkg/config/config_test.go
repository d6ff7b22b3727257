package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/authcheck/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()
	share := filepath.Join(tempHome, ".local", "share", "authcheck")

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "authcheck"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "authcheck", "config.yaml"),
		},
		{msg: "data dir", fn: config.DataDir, res: share},
		{msg: "log dir", fn: config.LogDir, res: filepath.Join(share, "logs")},
		{
			msg: "snapshot",
			fn:  config.SnapshotPath,
			res: filepath.Join(share, "authcheck.db"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, 2, cfg.Quota)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "", cfg.Store.Path)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "authcheck", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
}

func TestStorePath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/ann")})
	assert.Equal(t, config.SnapshotPath("/home/ann"), cfg.StorePath())

	cfg.Update([]config.Option{config.OptStorePath(" /tmp/a.db ")})
	assert.Equal(t, "/tmp/a.db", cfg.StorePath())
}

func TestOptQuota(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets quota", 5, 5},
		{"ignores zero", 0, 2},
		{"ignores negative", -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptQuota(tt.input)})
			assert.Equal(t, tt.expected, cfg.Quota)
		})
	}
}

func TestOptEnums(t *testing.T) {
	tests := []struct {
		name     string
		opt      config.Option
		get      func(*config.Config) string
		expected string
	}{
		{
			name:     "store backend",
			opt:      config.OptStoreBackend(" Postgres "),
			get:      func(c *config.Config) string { return c.Store.Backend },
			expected: "postgres",
		},
		{
			name:     "bad store backend",
			opt:      config.OptStoreBackend("mongo"),
			get:      func(c *config.Config) string { return c.Store.Backend },
			expected: "sqlite",
		},
		{
			name:     "ssl mode",
			opt:      config.OptDatabaseSSLMode("REQUIRE"),
			get:      func(c *config.Config) string { return c.Database.SSLMode },
			expected: "require",
		},
		{
			name:     "bad ssl mode",
			opt:      config.OptDatabaseSSLMode("maybe"),
			get:      func(c *config.Config) string { return c.Database.SSLMode },
			expected: "disable",
		},
		{
			name:     "log level",
			opt:      config.OptLogLevel("debug"),
			get:      func(c *config.Config) string { return c.Log.Level },
			expected: "debug",
		},
		{
			name:     "log format",
			opt:      config.OptLogFormat("tint"),
			get:      func(c *config.Config) string { return c.Log.Format },
			expected: "tint",
		},
		{
			name:     "log destination",
			opt:      config.OptLogDestination("stderr"),
			get:      func(c *config.Config) string { return c.Log.Destination },
			expected: "stderr",
		},
		{
			name:     "bad log destination",
			opt:      config.OptLogDestination("printer"),
			get:      func(c *config.Config) string { return c.Log.Destination },
			expected: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.expected, tt.get(cfg))
		})
	}
}

func TestOptStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets valid host", "db.example.com", "db.example.com"},
		{"trims whitespace", "  db.example.com  ", "db.example.com"},
		{"ignores empty string", "", "localhost"},
		{"ignores whitespace-only", "   ", "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseHost(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptQuota(3),
		config.OptDatabaseHost("first.host.com"),
		config.OptDatabaseHost("second.host.com"),
		config.OptJobsNumber(16),
	})

	assert.Equal(t, 3, cfg.Quota)
	assert.Equal(t, "second.host.com", cfg.Database.Host)
	assert.Equal(t, 16, cfg.JobsNumber)
	assert.Equal(t, "postgres", cfg.Database.Password)
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptQuota(4),
			config.OptStoreBackend("postgres"),
			config.OptStorePath("/data/a.db"),
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(6432),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())
		assert.Equal(t, original, newCfg)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptHomeDir("/custom/home")})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())
		assert.Equal(t, "", newCfg.HomeDir)
	})
}
