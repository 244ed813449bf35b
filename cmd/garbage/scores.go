package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-garbage/internal/platform/tui"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

var (
	flagPlayer      string
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best sessions recorded in the scores database.

A score is the number of years survived.

Examples:
  garbage scores
  garbage scores --player alice
  garbage scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show scores for this player")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the leaderboard in a table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagPlayer, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagPlayer != "" {
		scores, err = store.PlayerScores(flagPlayer, flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Println("High Scores - Space Garbage")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'garbage play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-9s  %-12s  %s\n", "Rank", "Years", "Year", "Destroyed", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-9s  %-12s  %s\n", "----", "-----", "----", "---------", "------", "----")

	for i, e := range scores {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-5d  %-9d  %-12s  %s\n", i+1, e.Score, e.Year, e.Destroyed, e.Player, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d years (reached %d), %d sessions, %d garbage destroyed\n",
			stats.HighScore, stats.BestYear, stats.Sessions, stats.TotalDestroyed)
	}
}
