// flappy is a terminal Flappy Bird.
//
// Usage:
//
//	flappy play              - Play immediately
//	flappy menu              - Title menu with play and high scores
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

// logger reports warnings outside the TUI.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "flappy"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird for the terminal. Flap through the gaps, every obstacle
you pass is a point, and touching one ends the run.

Available commands:
  play     - Start playing right away
  menu     - Title menu with play and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  flappy play
  flappy play --difficulty hard --sound
  flappy menu
  flappy serve --ssh :2222
  flappy scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
