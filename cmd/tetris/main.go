// tetris is a terminal Tetris with local high scores and SSH hosting.
//
// Usage:
//
//	tetris play              - Play a game
//	tetris scores [mode]     - Show high scores for a difficulty
//	tetris scores stats      - Show per-difficulty statistics
//	tetris scores clear      - Delete recorded scores
//	tetris scoreboard        - Browse high scores interactively
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>          - Set database path (default: ~/.tetris/scores.db)
//	--config <path>      - Load game config from a YAML file
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>    - Write logs to a file
//	--debug              - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

// logFile is closed by main after the command returns.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal Tetris with a 7-bag randomizer, hold slot, ghost piece,
time-based leveling and local high scores.

Available commands:
  play        - Start a game
  scores      - Print high scores and statistics
  scoreboard  - Browse high scores interactively
  serve       - Start SSH server for remote play

Examples:
  tetris play
  tetris play --difficulty hard
  tetris scores normal
  tetris serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogging points the default logger away from the terminal, which
// belongs to the game while it runs.
func setupLogging(_ *cobra.Command, _ []string) error {
	log.SetLevel(log.ErrorLevel)
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}
	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	log.SetOutput(f)
	log.SetReportTimestamp(true)
	return nil
}

// loadGameConfig resolves the game config from --config and --difficulty.
// Without --difficulty the file's timing is used as written.
func loadGameConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.TetrisConfig{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if cfg.Difficulty.Preset == "" {
		cfg.Difficulty.Preset = config.DifficultyEasy
	}
	return cfg, nil
}
