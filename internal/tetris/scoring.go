package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var multiLineBonus = [...]int{0, 0, 100, 300, 500}

// LineClearScore returns the points for clearing n lines at once:
// 100 per line plus a bonus for doubles, triples and tetrises.
func LineClearScore(n int) int {
	if n < 1 || n > 4 {
		return 0
	}
	return n*100 + multiLineBonus[n]
}

// Leveling derives level and fall speed from the timing config.
type Leveling struct {
	Initial         time.Duration
	Min             time.Duration
	Step            time.Duration
	SecondsPerLevel int
	Disabled        bool
}

// NewLeveling reads the timing and difficulty sections of cfg.
func NewLeveling(cfg config.TetrisConfig) Leveling {
	return Leveling{
		Initial:         cfg.Timing.InitialFall(),
		Min:             cfg.Timing.MinFall(),
		Step:            cfg.Timing.SpeedStep(),
		SecondsPerLevel: cfg.Timing.SecondsPerLevel,
		Disabled:        !cfg.Difficulty.Enabled,
	}
}

// LevelForElapsed returns the level reached after sec seconds of play.
func (l Leveling) LevelForElapsed(sec int) int {
	if l.Disabled || l.SecondsPerLevel <= 0 || sec < 0 {
		return 0
	}
	return sec / l.SecondsPerLevel
}

// FallSpeed returns the gravity period for level, never below Min.
func (l Leveling) FallSpeed(level int) time.Duration {
	return max(l.Min, l.Initial-time.Duration(level)*l.Step)
}
