package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagFPS  int
	flagSeed int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris.

Controls:
  Left/H, Right/L  - Move
  Down/J           - Soft drop
  Up/K/Enter       - Hard drop
  X / Z            - Rotate clockwise / counter-clockwise
  Space/C          - Hold
  R                - Restart (after game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 1000ms fall period, speeds up every 10 seconds
  normal - 800ms fall period, speeds up every 10 seconds
  hard   - 500ms fall period, speeds up every 10 seconds
  fixed  - 1000ms fall period, no progression

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(gameCfg, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
