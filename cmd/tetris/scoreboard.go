package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse high scores interactively",
	Long: `Open a full-screen table of high scores.
Tab and the arrow keys switch between difficulties.`,
	Args: cobra.NoArgs,
	Run:  runScoreboard,
}

func runScoreboard(_ *cobra.Command, _ []string) {
	store := openStoreOrExit()
	defer store.Close()

	width, height := terminalSize()
	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
