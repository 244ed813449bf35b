package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/game"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

var (
	flagTicks      int
	flagRows       int
	flagCols       int
	flagAutoFire   bool
	flagShowScreen bool
	flagSave       bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a session without a terminal",
	Long: `Run a session on an in-memory screen as fast as possible and print the
final state. With a fixed --seed the result is reproducible.

The craft does not move; --fire holds the fire button on every tick.

Examples:
  garbage simulate --seed 42
  garbage simulate --seed 42 --ticks 3000 --fire --screen
  garbage simulate --difficulty hard --rows 30 --cols 100`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum number of ticks to run")
	simulateCmd.Flags().IntVar(&flagRows, "rows", 24, "Screen rows")
	simulateCmd.Flags().IntVar(&flagCols, "cols", 80, "Screen columns")
	simulateCmd.Flags().BoolVar(&flagAutoFire, "fire", false, "Fire on every tick")
	simulateCmd.Flags().BoolVar(&flagShowScreen, "screen", false, "Print the final screen")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record the result in the scores database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg, lib, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr)
	screen := core.NewScreen(flagRows, flagCols)
	input := core.NewInputBuffer()

	session, err := game.NewSession(game.Options{
		Config:   cfg,
		Library:  lib,
		Renderer: screen,
		Input:    input,
		Seed:     seed(),
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for range flagTicks {
		if flagAutoFire {
			input.Press(core.ActionFire)
		}
		session.Step()
		if session.State().GameOver {
			break
		}
	}

	st := session.State()
	if flagShowScreen {
		fmt.Println(screen.String())
	}
	fmt.Printf("session:   %s\n", session.ID())
	fmt.Printf("ticks:     %d\n", st.Ticks)
	fmt.Printf("year:      %d\n", st.Year)
	fmt.Printf("survived:  %d years\n", st.Score)
	fmt.Printf("destroyed: %d\n", st.Destroyed)
	fmt.Printf("shots:     %d\n", session.Craft().Shots())
	fmt.Printf("game over: %v\n", st.GameOver)

	if !flagSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()
	saveResult(session, store)
}
