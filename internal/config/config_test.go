package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("parse(default) failed: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestDefaultDurations(t *testing.T) {
	cfg := DefaultTetrisConfig()

	if cfg.Timing.InitialFall() != time.Second {
		t.Errorf("InitialFall() = %v, expected 1s", cfg.Timing.InitialFall())
	}
	if cfg.Timing.MinFall() != 100*time.Millisecond {
		t.Errorf("MinFall() = %v, expected 100ms", cfg.Timing.MinFall())
	}
	if cfg.Timing.SpeedStep() != 50*time.Millisecond {
		t.Errorf("SpeedStep() = %v, expected 50ms", cfg.Timing.SpeedStep())
	}
	if cfg.Input.HoldDelay() != 350*time.Millisecond {
		t.Errorf("HoldDelay() = %v, expected 350ms", cfg.Input.HoldDelay())
	}
	if cfg.Input.Repeat() != 120*time.Millisecond {
		t.Errorf("Repeat() = %v, expected 120ms", cfg.Input.Repeat())
	}
	if cfg.Input.Continuous() != 100*time.Millisecond {
		t.Errorf("Continuous() = %v, expected 100ms", cfg.Input.Continuous())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("timing:\n  initial_fall_ms: 600\ninput:\n  repeat_ms: 80\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}

	if cfg.Timing.InitialFallMs != 600 {
		t.Errorf("InitialFallMs = %d, expected 600", cfg.Timing.InitialFallMs)
	}
	if cfg.Input.RepeatMs != 80 {
		t.Errorf("RepeatMs = %d, expected 80", cfg.Input.RepeatMs)
	}
	// Untouched keys keep their defaults
	if cfg.Timing.MinFallMs != 100 {
		t.Errorf("MinFallMs = %d, expected default 100", cfg.Timing.MinFallMs)
	}
	if cfg.Input.HoldDelayMs != 350 {
		t.Errorf("HoldDelayMs = %d, expected default 350", cfg.Input.HoldDelayMs)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadTetris() should fail for a missing custom file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing:\n  min_fall_ms: 5000\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadTetris(bad); err == nil {
		t.Error("LoadTetris() should reject min_fall_ms > initial_fall_ms")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		ok     bool
	}{
		{"default", func(*TetrisConfig) {}, true},
		{"zero initial", func(c *TetrisConfig) { c.Timing.InitialFallMs = 0 }, false},
		{"zero min", func(c *TetrisConfig) { c.Timing.MinFallMs = 0 }, false},
		{"negative step", func(c *TetrisConfig) { c.Timing.SpeedStepMs = -1 }, false},
		{"zero seconds per level", func(c *TetrisConfig) { c.Timing.SecondsPerLevel = 0 }, false},
		{"zero repeat", func(c *TetrisConfig) { c.Input.RepeatMs = 0 }, false},
		{"zero continuous", func(c *TetrisConfig) { c.Input.ContinuousMs = 0 }, false},
		{"negative hold delay", func(c *TetrisConfig) { c.Input.HoldDelayMs = -5 }, false},
		{"zero hold delay", func(c *TetrisConfig) { c.Input.HoldDelayMs = 0 }, true},
		{"preview too large", func(c *TetrisConfig) { c.Display.PreviewCount = 5 }, false},
		{"preview off", func(c *TetrisConfig) { c.Display.PreviewCount = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		initialFall int
		enabled     bool
	}{
		{DifficultyEasy, 1000, true},
		{DifficultyNormal, 800, true},
		{DifficultyHard, 500, true},
		{DifficultyFixed, 1000, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Timing.InitialFallMs != tc.initialFall {
				t.Errorf("InitialFallMs = %d, expected %d", cfg.Timing.InitialFallMs, tc.initialFall)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.Preset != tc.preset {
				t.Errorf("Preset = %q, expected %q", cfg.Difficulty.Preset, tc.preset)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() after preset failed: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyEasy {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected easy", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(\"hard\") = %q, %v; expected hard", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(\"insane\") should fail")
	}
}
