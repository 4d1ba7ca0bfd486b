package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a difficulty",
	Long: `Display the top high scores for a difficulty preset.
Without a mode, the --difficulty flag (or easy) is used.

Examples:
  tetris scores
  tetris scores hard
  tetris scores stats
  tetris scores clear fixed`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var scoresStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for every difficulty",
	Args:  cobra.NoArgs,
	Run:   runScoresStats,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear <mode>",
	Short: "Delete all scores of a difficulty",
	Args:  cobra.ExactArgs(1),
	Run:   runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.AddCommand(scoresStatsCmd)
	scoresCmd.AddCommand(scoresClearCmd)
}

// modeArg picks the mode from args, then --difficulty.
func modeArg(args []string) (string, error) {
	name := flagDifficulty
	if len(args) > 0 {
		name = args[0]
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		return "", err
	}
	return string(preset), nil
}

func openStoreOrExit() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, args []string) {
	mode, err := modeArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStoreOrExit()
	scores, err := store.TopScores(mode, flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play --difficulty %s' to set the first high score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Lines", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, r := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-6s  %s\n",
			i+1, r.Score, r.Level, r.Lines, formatSecs(r.Elapsed), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(mode); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func runScoresStats(_ *cobra.Command, _ []string) {
	store := openStoreOrExit()
	defer store.Close()

	modes, err := store.Modes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving modes: %v\n", err)
		return
	}
	if len(modes) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-7s  %-5s  %-8s  %-8s  %-6s  %-5s  %-6s  %s\n",
		"Mode", "Games", "Best", "Average", "Lines", "Level", "Longest", "Last played")
	for _, mode := range modes {
		st, err := store.Stats(mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats for %s: %v\n", mode, err)
			continue
		}
		fmt.Printf("  %-7s  %-5d  %-8d  %-8.0f  %-6d  %-5d  %-7s  %s\n",
			st.Mode, st.GamesCount, st.HighScore, st.AvgScore, st.TotalLines,
			st.BestLevel, formatSecs(st.LongestSecs), st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func runScoresClear(_ *cobra.Command, args []string) {
	mode, err := modeArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStoreOrExit()
	defer store.Close()

	if err := store.ClearScores(mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Cleared %s scores.\n", mode)
}

func formatSecs(sec int) string {
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
