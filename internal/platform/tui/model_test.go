package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"vim right", runes("l"), core.ActionRight},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionHardDrop},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionHardDrop},
		{"rotate", runes("x"), core.ActionRotateCW},
		{"rotate back", runes("z"), core.ActionRotateCCW},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHold},
		{"restart", runes("r"), core.ActionRestart},
		{"quit", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help is not a game action", runes("?"), core.ActionNone},
		{"unbound", runes("p"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keys.Action(tc.msg))
		})
	}
}

func newTestModel(t *testing.T, cfg config.TetrisConfig) Model {
	t.Helper()
	m := NewModel(cfg, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, quietLogger())
	t.Cleanup(m.Session().Close)
	m.Init()
	require.True(t, m.Session().Engine.Running())
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestTapMovesOnce(t *testing.T) {
	m := newTestModel(t, config.DefaultTetrisConfig())
	t0 := time.Unix(0, 0)

	m = step(t, m, TickMsg(t0))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, tetris.SpawnX-1, m.Session().Engine.Snapshot().Piece.X)

	// No held move in tap mode, so nothing repeats.
	for i := 1; i <= 4; i++ {
		m = step(t, m, TickMsg(t0.Add(time.Duration(i)*200*time.Millisecond)))
	}
	assert.Equal(t, tetris.SpawnX-1, m.Session().Engine.Snapshot().Piece.X)
}

func TestHeldMoveReleasedAfterSilence(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Input.ReleaseTimeoutMs = 100
	m := newTestModel(t, cfg)
	t0 := time.Unix(0, 0)

	m = step(t, m, TickMsg(t0))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, core.ActionLeft, m.held)
	assert.Equal(t, tetris.SpawnX-1, m.Session().Engine.Snapshot().Piece.X)

	m = step(t, m, TickMsg(t0.Add(50*time.Millisecond)))
	assert.Equal(t, core.ActionLeft, m.held)

	m = step(t, m, TickMsg(t0.Add(200*time.Millisecond)))
	assert.Equal(t, core.ActionNone, m.held)

	// Released before the hold delay ran out: the repeat never starts.
	for i := 1; i <= 4; i++ {
		m = step(t, m, TickMsg(t0.Add(200*time.Millisecond+time.Duration(i)*200*time.Millisecond)))
	}
	assert.Equal(t, tetris.SpawnX-1, m.Session().Engine.Snapshot().Piece.X)
}

func TestHeldMoveRepeatsWhileKeyRepeats(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Input.ReleaseTimeoutMs = 100
	m := newTestModel(t, cfg)
	t0 := time.Unix(0, 0)

	m = step(t, m, TickMsg(t0))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})

	// Terminal auto-repeat refreshes the press every 50ms.
	for ms := 50; ms <= 500; ms += 50 {
		m = step(t, m, TickMsg(t0.Add(time.Duration(ms)*time.Millisecond)))
		m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}

	// One move on press, one repeat at 470ms.
	assert.Equal(t, core.ActionRight, m.held)
	assert.Equal(t, tetris.SpawnX+2, m.Session().Engine.Snapshot().Piece.X)
}

func TestTickGapIsCapped(t *testing.T) {
	m := newTestModel(t, config.DefaultTetrisConfig())
	t0 := time.Unix(0, 0)

	m = step(t, m, TickMsg(t0))
	m = step(t, m, TickMsg(t0.Add(time.Hour)))

	assert.Equal(t, maxTickGap, m.Session().Clock.Now())
}

func TestRestartOnlyWhenStopped(t *testing.T) {
	m := newTestModel(t, config.DefaultTetrisConfig())
	engine := m.Session().Engine

	engine.HardDrop()
	placed := engine.Snapshot().Placed
	require.Equal(t, 1, placed)

	m = step(t, m, runes("r"))
	assert.Equal(t, placed, engine.Snapshot().Placed, "restart ignored while running")

	for engine.Running() {
		engine.HardDrop()
	}
	step(t, m, runes("r"))
	assert.True(t, engine.Running())
	assert.Equal(t, 0, engine.Snapshot().Placed)
}

func TestQuitClosesSession(t *testing.T) {
	m := newTestModel(t, config.DefaultTetrisConfig())

	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())
	assert.Nil(t, m.Session().unsubscribe)
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m := newTestModel(t, config.DefaultTetrisConfig())

	view := m.View()
	assert.Contains(t, view, "NEXT")
	assert.Contains(t, view, "hard drop")
}

func TestSessionSkipsEmptyResult(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	s := NewSession(config.DefaultTetrisConfig(), store, 1, quietLogger())
	t.Cleanup(s.Close)
	assert.Equal(t, "easy", s.Mode())

	s.Engine.Start()
	for i := 0; i < 200 && s.Engine.Running(); i++ {
		s.Engine.HardDrop()
	}
	require.False(t, s.Engine.Running())
	require.Zero(t, s.Engine.Snapshot().Score)

	results, err := store.TopScores(s.Mode(), 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSessionModeFollowsPreset(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	config.ApplyPreset(&cfg, config.DifficultyHard)

	s := NewSession(cfg, nil, 1, quietLogger())
	defer s.Close()

	assert.Equal(t, "hard", s.Mode())

	// A nil store is allowed and never touched.
	s.Engine.Start()
	for i := 0; i < 200 && s.Engine.Running(); i++ {
		s.Engine.HardDrop()
	}
	assert.True(t, s.Engine.GameOver().Value())
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
