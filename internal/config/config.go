// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Timing     TetrisTiming     `yaml:"timing"`
	Input      TetrisInput      `yaml:"input"`
	Display    TetrisDisplay    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisTiming defines gravity and leveling parameters.
// All periods are in milliseconds.
type TetrisTiming struct {
	InitialFallMs   int `yaml:"initial_fall_ms"`
	MinFallMs       int `yaml:"min_fall_ms"`
	SpeedStepMs     int `yaml:"speed_step_ms"`
	SecondsPerLevel int `yaml:"seconds_per_level"`
}

// TetrisInput defines the directional auto-repeat parameters.
type TetrisInput struct {
	HoldDelayMs      int `yaml:"hold_delay_ms"`      // Delay before a held key starts repeating
	RepeatMs         int `yaml:"repeat_ms"`          // Repeat period once a held key repeats
	ContinuousMs     int `yaml:"continuous_ms"`      // Repeat period of the delay-free mode
	ReleaseTimeoutMs int `yaml:"release_timeout_ms"` // Front ends without key-up events
}

// TetrisDisplay defines what the front end shows.
type TetrisDisplay struct {
	Ghost        bool `yaml:"ghost"`
	PreviewCount int  `yaml:"preview_count"` // 0..4
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled bool             `yaml:"enabled"` // false keeps level 0 for the whole game
	Preset  DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name means easy.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyEasy, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", name)
}

// InitialFallForPreset returns the starting fall period for a preset.
func InitialFallForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 800
	case DifficultyHard:
		return 500
	default:
		return 1000
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	cfg.Timing.InitialFallMs = InitialFallForPreset(preset)
	if cfg.Timing.MinFallMs > cfg.Timing.InitialFallMs {
		cfg.Timing.MinFallMs = cfg.Timing.InitialFallMs
	}
}

// Validate reports the first inconsistent setting.
func (c TetrisConfig) Validate() error {
	t := c.Timing
	switch {
	case t.InitialFallMs <= 0:
		return errors.New("config: timing.initial_fall_ms must be positive")
	case t.MinFallMs <= 0:
		return errors.New("config: timing.min_fall_ms must be positive")
	case t.MinFallMs > t.InitialFallMs:
		return fmt.Errorf("config: timing.min_fall_ms (%d) exceeds initial_fall_ms (%d)", t.MinFallMs, t.InitialFallMs)
	case t.SpeedStepMs < 0:
		return errors.New("config: timing.speed_step_ms must not be negative")
	case t.SecondsPerLevel <= 0:
		return errors.New("config: timing.seconds_per_level must be positive")
	}

	in := c.Input
	switch {
	case in.HoldDelayMs < 0:
		return errors.New("config: input.hold_delay_ms must not be negative")
	case in.RepeatMs <= 0:
		return errors.New("config: input.repeat_ms must be positive")
	case in.ContinuousMs <= 0:
		return errors.New("config: input.continuous_ms must be positive")
	}

	if c.Display.PreviewCount < 0 || c.Display.PreviewCount > 4 {
		return fmt.Errorf("config: display.preview_count must be 0..4, got %d", c.Display.PreviewCount)
	}
	return nil
}

// InitialFall returns the starting gravity period.
func (t TetrisTiming) InitialFall() time.Duration {
	return time.Duration(t.InitialFallMs) * time.Millisecond
}

// MinFall returns the fastest gravity period.
func (t TetrisTiming) MinFall() time.Duration {
	return time.Duration(t.MinFallMs) * time.Millisecond
}

// SpeedStep returns how much each level shortens the gravity period.
func (t TetrisTiming) SpeedStep() time.Duration {
	return time.Duration(t.SpeedStepMs) * time.Millisecond
}

// HoldDelay returns the delay before a held move starts repeating.
func (in TetrisInput) HoldDelay() time.Duration {
	return time.Duration(in.HoldDelayMs) * time.Millisecond
}

// Repeat returns the held-move repeat period.
func (in TetrisInput) Repeat() time.Duration {
	return time.Duration(in.RepeatMs) * time.Millisecond
}

// Continuous returns the delay-free repeat period.
func (in TetrisInput) Continuous() time.Duration {
	return time.Duration(in.ContinuousMs) * time.Millisecond
}

// ReleaseTimeout returns how long a front end without key-up events waits
// before treating a key as released.
func (in TetrisInput) ReleaseTimeout() time.Duration {
	return time.Duration(in.ReleaseTimeoutMs) * time.Millisecond
}
