package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FG_ADDR", "FG_DATA_DIR", "FG_UPLOAD_DIR",
		"FG_MAX_UPLOAD_BYTES", "FG_LOG_LEVEL", "FG_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "data/uploads", cfg.UploadDir)
	assert.Equal(t, int64(100<<20), cfg.MaxUploadBytes)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FG_ADDR", ":9000")
	t.Setenv("FG_DATA_DIR", "/var/lib/gallery")
	t.Setenv("FG_UPLOAD_DIR", "/var/lib/gallery/blobs")
	t.Setenv("FG_MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("FG_LOG_LEVEL", "debug")
	t.Setenv("FG_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/var/lib/gallery", cfg.DataDir)
	assert.Equal(t, "/var/lib/gallery/blobs", cfg.UploadDir)
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric max upload", "FG_MAX_UPLOAD_BYTES", "lots"},
		{"negative max upload", "FG_MAX_UPLOAD_BYTES", "-1"},
		{"zero max upload", "FG_MAX_UPLOAD_BYTES", "0"},
		{"unknown log level", "FG_LOG_LEVEL", "loud"},
		{"unknown log format", "FG_LOG_FORMAT", "xml"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	for input, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"Error": slog.LevelError,
	} {
		level, err := parseLogLevel(input)
		require.NoError(t, err)
		assert.Equal(t, want, level)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}
