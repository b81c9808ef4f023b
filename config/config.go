// Package config loads and validates the application configuration from
// environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds every tunable of the file gallery server.
type Config struct {
	// Listen address of the HTTP server
	Addr string
	// Directory holding the SQLite database file
	DataDir string
	// Directory holding uploaded blobs (the blob store root)
	UploadDir string
	// Maximum accepted upload size in bytes
	MaxUploadBytes int64
	// Log level (debug, info, warn, error)
	LogLevel slog.Level
	// Log format (json, text)
	LogFormat string
}

const defaultMaxUploadBytes = 100 << 20 // 100 MiB

// Load reads the configuration from environment variables, applying
// defaults and validating values.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Addr = getEnvDefault("FG_ADDR", ":8081")

	cfg.DataDir = getEnvDefault("FG_DATA_DIR", "data")
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("FG_DATA_DIR: must not be empty")
	}

	cfg.UploadDir = getEnvDefault("FG_UPLOAD_DIR", "data/uploads")
	if cfg.UploadDir == "" {
		return nil, fmt.Errorf("FG_UPLOAD_DIR: must not be empty")
	}

	maxUpload, err := getEnvInt64("FG_MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	if err != nil {
		return nil, fmt.Errorf("FG_MAX_UPLOAD_BYTES: %w", err)
	}
	if maxUpload <= 0 {
		return nil, fmt.Errorf("FG_MAX_UPLOAD_BYTES: must be positive, got %d", maxUpload)
	}
	cfg.MaxUploadBytes = maxUpload

	level, err := parseLogLevel(getEnvDefault("FG_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("FG_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	cfg.LogFormat = getEnvDefault("FG_LOG_FORMAT", "text")
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("FG_LOG_FORMAT: invalid value %q, expected text or json", cfg.LogFormat)
	}

	return cfg, nil
}

// SetupLogger configures the global slog logger from the configuration.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid level %q, expected debug, info, warn or error", s)
	}
}

func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvInt64(key string, defaultVal int64) (int64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %q", val)
	}
	return n, nil
}
