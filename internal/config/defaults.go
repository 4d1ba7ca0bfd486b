package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			InitialFallMs:   1000,
			MinFallMs:       100,
			SpeedStepMs:     50,
			SecondsPerLevel: 10,
		},
		Input: TetrisInput{
			HoldDelayMs:      350,
			RepeatMs:         120,
			ContinuousMs:     100,
			ReleaseTimeoutMs: 0,
		},
		Display: TetrisDisplay{
			Ghost:        true,
			PreviewCount: 4,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Preset:  DifficultyEasy,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
