// Package config reads the server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Environment variable names.
const (
	EnvLogLevel          = "ACAPELLA_MCP_LOG_LEVEL"
	EnvLogFormat         = "ACAPELLA_MCP_LOG_FORMAT"
	EnvMaxPairwisePoints = "ACAPELLA_MCP_MAX_PAIRWISE_POINTS"
	EnvMaxTracePixels    = "ACAPELLA_MCP_MAX_TRACE_PIXELS"
	EnvMaxLineBytes      = "ACAPELLA_MCP_MAX_LINE_BYTES"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds the server settings.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel zerolog.Level

	// LogFormat is FormatConsole or FormatJSON.
	LogFormat string

	// MaxPairwisePoints caps the number of points accepted by the pairwise
	// distance tool, whose cost grows with the square of the input.
	MaxPairwisePoints int

	// MaxTracePixels caps the number of pixels accepted by the contour
	// tracing tool.
	MaxTracePixels int

	// MaxLineBytes is the largest JSON-RPC request line the server reads.
	MaxLineBytes int
}

// Default returns the settings used when no environment variable is set.
func Default() Config {
	return Config{
		LogLevel:          zerolog.InfoLevel,
		LogFormat:         FormatConsole,
		MaxPairwisePoints: 5000,
		MaxTracePixels:    4_000_000,
		MaxLineBytes:      16 * 1024 * 1024,
	}
}

// FromEnv returns Default overridden by any environment variables present.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		switch strings.ToLower(v) {
		case FormatConsole, FormatJSON:
			cfg.LogFormat = strings.ToLower(v)
		default:
			return Config{}, fmt.Errorf("%s: unknown format %q (want %s or %s)", EnvLogFormat, v, FormatConsole, FormatJSON)
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvMaxPairwisePoints, &cfg.MaxPairwisePoints},
		{EnvMaxTracePixels, &cfg.MaxTracePixels},
		{EnvMaxLineBytes, &cfg.MaxLineBytes},
	}
	for _, e := range ints {
		v, ok := lookup(e.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", e.name, err)
		}
		if n <= 0 {
			return Config{}, fmt.Errorf("%s: must be positive, got %d", e.name, n)
		}
		*e.dst = n
	}

	return cfg, nil
}
