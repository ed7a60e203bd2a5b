// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staffdesk.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Development {
		t.Errorf("expected environment=development, got %s", cfg.Environment)
	}
	if cfg.API.Timeout != "15s" {
		t.Errorf("expected timeout=15s, got %s", cfg.API.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected level=info, got %s", cfg.Logging.Level)
	}
}

func TestLoad_RequiresStaffdeskConfig(t *testing.T) {
	origConfig := os.Getenv("STAFFDESK_CONFIG")
	defer os.Setenv("STAFFDESK_CONFIG", origConfig)

	os.Unsetenv("STAFFDESK_CONFIG")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when STAFFDESK_CONFIG is unset")
	}
	if !strings.Contains(err.Error(), "STAFFDESK_CONFIG") {
		t.Errorf("error does not name the variable: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfigFile(t, `
environment: development
api:
  base_url: http://localhost:8080
  timeout: 5s
logging:
  level: debug
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", cfg.Timeout())
	}
	level, err := cfg.LogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, %v", level, err)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	path := writeConfigFile(t, `
environment: staging
api:
  base_url: http://localhost:8080
staging:
  api:
    base_url: https://staging.example.com
  logging:
    level: warn
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.API.BaseURL != "https://staging.example.com" {
		t.Errorf("staging override not applied: %q", cfg.API.BaseURL)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging override not applied: %q", cfg.Logging.Level)
	}
}

func TestProductionDefaultsToWarnLogging(t *testing.T) {
	path := writeConfigFile(t, `
environment: production
api:
  base_url: https://example.com
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("production level = %q, want warn", cfg.Logging.Level)
	}
}

func TestVariableExpansionInLogFile(t *testing.T) {
	origHome := os.Getenv("HOME")
	defer os.Setenv("HOME", origHome)
	os.Setenv("HOME", "/home/tester")

	path := writeConfigFile(t, `
api:
  base_url: http://localhost:8080
logging:
  file: ${HOME}/.local/state/staffdesk/log.jsonl
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Logging.File != "/home/tester/.local/state/staffdesk/log.jsonl" {
		t.Errorf("expanded file = %q", cfg.Logging.File)
	}
}

func TestExpandVarsDefault(t *testing.T) {
	got := expandVars("${STAFFDESK_MISSING:-/tmp/fallback}/log", map[string]string{})
	if got != "/tmp/fallback/log" {
		t.Errorf("expandVars = %q", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "http://localhost:8080"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg.Environment = "sandbox"
	if err := cfg.Validate(); err == nil {
		t.Error("invalid environment accepted")
	}

	cfg = Default()
	cfg.API.Timeout = "soon"
	if err := cfg.Validate(); err == nil {
		t.Error("invalid timeout accepted")
	}

	cfg = Default()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("invalid log level accepted")
	}
}
