// garbage is a terminal arcade: steer a craft through falling space
// garbage while the years go by.
//
// Usage:
//
//	garbage play             - Play in the terminal
//	garbage serve            - Start SSH server for remote play
//	garbage scores           - Show the leaderboard
//	garbage simulate         - Run a headless session
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.garbage/scores.db)
//	--config <path>      - Use a custom config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--frames <dir>       - Load sprites from a directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagFrames     string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "garbage",
	Short: "Space garbage - dodge and shoot orbital debris in your terminal",
	Long: `Space garbage is a terminal arcade game. Your craft starts in 1957,
surrounded by blinking stars. As the years go by more and more garbage falls
from orbit. Dodge it; from 2020 on you can shoot it down.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - View the leaderboard
  simulate  - Run a session without a terminal

Examples:
  garbage play
  garbage play --difficulty hard
  garbage play --backend tcell
  garbage serve --ssh :2222
  garbage scores -i
  garbage simulate --seed 42 --ticks 900`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagFrames, "frames", "", "Directory of *.txt sprite frames (default: built in)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
