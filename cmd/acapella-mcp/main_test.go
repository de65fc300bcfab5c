package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fethallah/acapella-tools-mcp/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = config.FormatJSON
	cfg.LogLevel = zerolog.WarnLevel

	var buf bytes.Buffer
	logger := newLogger(cfg, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Str("tool", "stats_bin_data").Msg("data is empty")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line above the level, got %q", buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["tool"] != "stats_bin_data" || entry["level"] != "warn" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry has no timestamp")
	}
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.Default(), &buf)
	logger.Info().Msg("ready")

	if !strings.Contains(buf.String(), "ready") {
		t.Errorf("console output missing message: %q", buf.String())
	}
	if json.Valid(buf.Bytes()) {
		t.Error("console format should not be JSON")
	}
}
