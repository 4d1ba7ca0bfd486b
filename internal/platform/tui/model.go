package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// maxTickGap caps how much game time one tick may advance, so a suspended
// terminal does not replay seconds of gravity at once.
const maxTickGap = 250 * time.Millisecond

// Model is the Bubble Tea model for one game of Tetris.
type Model struct {
	session  *Session
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	lastTick time.Time

	// Release detection for terminals without key-up events. Zero
	// releaseAfter disables held moves; every key press is a single move.
	releaseAfter time.Duration
	held         core.Action
	heldSeen     time.Time

	quitting bool
}

// NewModel creates a new Bubble Tea model for a fresh session.
func NewModel(gameCfg config.TetrisConfig, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		session:      NewSession(gameCfg, store, cfg.Seed, logger),
		screen:       core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:       cfg,
		keys:         DefaultKeyMap(),
		help:         h,
		releaseAfter: gameCfg.Input.ReleaseTimeout(),
	}
}

// Session exposes the running session.
func (m Model) Session() *Session {
	return m.session
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Engine.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.session.logger.Error("screenshot failed", "error", err)
		} else {
			m.session.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	engine := m.session.Engine
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.session.Close()
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	case core.ActionRestart:
		if engine.State() != tetris.StateRunning {
			m.releaseHeld()
			engine.Start()
		}
		return m, nil
	}

	if m.releaseAfter > 0 && action.IsDirectional() {
		m.pressHeld(action)
		return m, nil
	}

	engine.Apply(action)
	return m, nil
}

// pressHeld starts a held move, or refreshes it when the terminal is
// auto-repeating the key that is already held.
func (m *Model) pressHeld(a core.Action) {
	if m.held == a {
		m.heldSeen = m.lastTick
		return
	}
	m.held = a
	m.heldSeen = m.lastTick
	m.session.Engine.BeginHeldMove(directionOf(a))
}

func (m *Model) releaseHeld() {
	if m.held == core.ActionNone {
		return
	}
	m.held = core.ActionNone
	m.session.Engine.EndHeldMove()
}

func directionOf(a core.Action) tetris.Direction {
	switch a {
	case core.ActionLeft:
		return tetris.DirLeft
	case core.ActionRight:
		return tetris.DirRight
	default:
		return tetris.DirDown
	}
}

// handleTick advances game time by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		dt := min(now.Sub(m.lastTick), maxTickGap)
		m.session.Advance(dt)
	}
	m.lastTick = now

	if m.held != core.ActionNone && now.Sub(m.heldSeen) > m.releaseAfter {
		m.releaseHeld()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.session.Engine.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("tetris_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Engine.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local game.
func Run(gameCfg config.TetrisConfig, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, cfg, log.Default())
	defer model.session.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
