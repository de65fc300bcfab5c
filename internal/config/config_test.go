package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{
		EnvLogLevel:          "DEBUG",
		EnvLogFormat:         "json",
		EnvMaxPairwisePoints: "100",
		EnvMaxTracePixels:    "2500",
		EnvMaxLineBytes:      "4096",
	}))
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, 100, cfg.MaxPairwisePoints)
	assert.Equal(t, 2500, cfg.MaxTracePixels)
	assert.Equal(t, 4096, cfg.MaxLineBytes)
}

func TestFromLookup_EmptyValuesIgnored(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{EnvLogLevel: "", EnvMaxLineBytes: ""}))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromLookup_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"level", map[string]string{EnvLogLevel: "loud"}},
		{"format", map[string]string{EnvLogFormat: "xml"}},
		{"not a number", map[string]string{EnvMaxPairwisePoints: "many"}},
		{"zero", map[string]string{EnvMaxTracePixels: "0"}},
		{"negative", map[string]string{EnvMaxLineBytes: "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromLookup(lookupFrom(tt.env))
			assert.Error(t, err)
		})
	}
}
