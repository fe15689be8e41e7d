package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parseRules(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultRules() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultRules())
	}
}

func TestLoadRulesCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("initial_interval: 400\nwidth: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() failed: %v", err)
	}

	if cfg.InitialInterval != 400 {
		t.Errorf("InitialInterval = %d, expected 400", cfg.InitialInterval)
	}
	if cfg.Width != 40 {
		t.Errorf("Width = %d, expected 40", cfg.Width)
	}
	// Values missing from the file keep their defaults
	if cfg.EndThreshold != 15 || cfg.LevelUpScore != 20 || cfg.SpeedStep != 50 {
		t.Errorf("unset values should keep defaults, got %+v", cfg)
	}
}

func TestLoadRulesErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "width: [", "failed to parse"},
		{"invalid width", "width: 0", "width must be at least 1"},
		{"degenerate level threshold", "level_up_score: 1", "level_up_score"},
		{"zero interval", "initial_interval: 0", "initial_interval"},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "rules"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadRules(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := LoadRules(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}
}

func TestMarshalRulesRoundTrip(t *testing.T) {
	data, err := MarshalRules(DefaultRules())
	if err != nil {
		t.Fatalf("MarshalRules() failed: %v", err)
	}
	if !strings.Contains(string(data), "initial_interval: 600") {
		t.Errorf("marshaled rules missing interval:\n%s", data)
	}
}

func TestIntervalAt(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		level, expected int
	}{
		{1, 600},
		{2, 550},
		{12, 50},
		{13, 0},   // no floor
		{14, -50}, // still no floor
		{0, 600},
	}

	for _, tc := range tests {
		if got := r.IntervalAt(tc.level); got != tc.expected {
			t.Errorf("IntervalAt(%d) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in       string
		interval int
	}{
		{"easy", 800},
		{"normal", 600},
		{"hard", 450},
		{"", 600},
	}

	for _, tc := range tests {
		preset, err := ParsePreset(tc.in)
		if err != nil {
			t.Fatalf("ParsePreset(%q) failed: %v", tc.in, err)
		}
		r := DefaultRules()
		ApplyPreset(&r, preset)
		if r.InitialInterval != tc.interval {
			t.Errorf("preset %q: InitialInterval = %d, expected %d", tc.in, r.InitialInterval, tc.interval)
		}
	}

	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestLoadServerEnv(t *testing.T) {
	t.Setenv("INVASION_SSH_ADDR", ":2222")
	t.Setenv("INVASION_IDLE_TIMEOUT", "5m")

	cfg, err := LoadServerEnv()
	if err != nil {
		t.Fatalf("LoadServerEnv() failed: %v", err)
	}
	if cfg.Address != ":2222" {
		t.Errorf("Address = %q, expected :2222", cfg.Address)
	}
	if cfg.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 5m", cfg.IdleTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, expected default info", cfg.LogLevel)
	}
}

func TestLoadServerEnvInvalid(t *testing.T) {
	t.Setenv("INVASION_IDLE_TIMEOUT", "soon")

	cfg, err := LoadServerEnv()
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if cfg != DefaultServerConfig() {
		t.Errorf("invalid env should fall back to defaults, got %+v", cfg)
	}
}
