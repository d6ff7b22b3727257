package iologger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/authcheck/pkg/config"
	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), tt.input)
	}
}

func TestNewHandler(t *testing.T) {
	tests := []struct {
		msg    string
		cfg    config.LogConfig
		output string
		debug  bool
	}{
		{"json", config.LogConfig{Format: "json", Level: "info"},
			`"msg":"hello"`, false},
		{"text", config.LogConfig{Format: "text", Level: "debug"},
			"msg=hello", true},
		{"tint", config.LogConfig{Format: "tint", Level: "info"},
			"msg=hello", false},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		l := slog.New(newHandler(&buf, tt.cfg))
		l.Info("hello")
		l.Debug("details")
		assert.Contains(t, buf.String(), tt.output, tt.msg)
		assert.Equal(t, tt.debug, bytes.Contains(buf.Bytes(), []byte("details")),
			tt.msg)
	}
}

func TestInitFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	defer slog.SetDefault(slog.Default())

	dir := t.TempDir()
	cfg := config.New().Log
	closer, err := Init(dir, cfg)
	require.NoError(t, err)
	slog.Info("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")

	_, err = Init(filepath.Join(dir, "missing"), cfg)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.OpenLogFileError, gnErr.Code)
	assert.Contains(t, gnErr.Msg, "log.destination")
}
