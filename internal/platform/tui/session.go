package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/sched"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Session is one player's game: the engine, the virtual clock that drives
// it, and the high-score hook.
type Session struct {
	Engine *tetris.Engine
	Clock  *sched.Clock

	store       *storage.Store
	mode        string
	logger      *log.Logger
	unsubscribe func()
}

// NewSession creates an idle session. store may be nil to disable saving.
func NewSession(cfg config.TetrisConfig, store *storage.Store, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	clock := sched.NewClock()
	s := &Session{
		Engine: tetris.New(cfg, clock, seed),
		Clock:  clock,
		store:  store,
		mode:   string(cfg.Difficulty.Preset),
		logger: logger,
	}
	if s.mode == "" {
		s.mode = string(config.DifficultyEasy)
	}
	s.unsubscribe = s.Engine.GameOver().Subscribe(s.onGameOver)
	return s
}

// Mode returns the difficulty preset results are filed under.
func (s *Session) Mode() string {
	return s.mode
}

// Advance moves the game clock forward, firing gravity and input timers.
func (s *Session) Advance(dt time.Duration) {
	s.Clock.Advance(dt)
}

// Close detaches the high-score hook.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// onGameOver saves the finished game. Saving is best effort.
func (s *Session) onGameOver(over bool) {
	if !over || s.store == nil {
		return
	}
	snap := s.Engine.Snapshot()
	if snap.Score == 0 {
		return
	}

	_, err := s.store.SaveResult(storage.Result{
		Mode:    s.mode,
		Score:   snap.Score,
		Level:   snap.Level,
		Lines:   snap.Lines,
		Elapsed: snap.Elapsed,
	})
	if err != nil {
		s.logger.Error("could not save result", "mode", s.mode, "score", snap.Score, "error", err)
		return
	}
	s.logger.Debug("result saved", "mode", s.mode, "score", snap.Score)
}
