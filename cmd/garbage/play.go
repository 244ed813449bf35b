package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/game"
	termui "github.com/vovakirdan/space-garbage/internal/platform/term"
	"github.com/vovakirdan/space-garbage/internal/platform/tui"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

var (
	flagBackend string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a session in the current terminal.

Controls:
  Arrows/WASD  - Steer the craft
  Space        - Fire (from 2020 on)
  P/Esc        - Pause (tea backend)
  R            - Restart after game over (tea backend)
  Ctrl+S       - Save a screenshot (tea backend)
  Q/Ctrl+C     - Quit

Without --difficulty the tea backend first shows a difficulty menu.

Backends:
  tea    - Bubble Tea front end with status bar, pause and restart (default)
  tcell  - Bare tcell screen with terminal bell on fire

Difficulty options:
  easy   - Start in 1957, garbage from 1961
  normal - Start in 1969
  hard   - Start in 1995
  fixed  - The year never advances

Examples:
  garbage play
  garbage play --difficulty hard
  garbage play --backend tcell --seed 42
  garbage play --config ./my-garbage.yaml --log ./garbage.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea or tcell")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write the session log to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, lib, err := loadGame()
	if err != nil {
		return err
	}

	// The game owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	switch flagBackend {
	case "tea":
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		// Without --difficulty the player picks a preset from the menu.
		if flagDifficulty == "" {
			var quit bool
			width, height, quit, err = pickDifficulty(&cfg, store, width, height)
			if err != nil || quit {
				return err
			}
		}

		return tui.Run(tui.Options{
			Config:  cfg,
			Library: lib,
			Store:   store,
			Runtime: core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed},
			Player:  playerName(),
			Logger:  logger,
		})

	case "tcell":
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		session, err := termui.Run(ctx, termui.Options{
			Config:  cfg,
			Library: lib,
			Seed:    seed(),
			Logger:  logger,
		})
		if err != nil && ctx.Err() == nil {
			return err
		}
		if session != nil {
			printResult(session, store)
		}
		return nil

	default:
		return fmt.Errorf("unknown backend %q (want tea or tcell)", flagBackend)
	}
}

// printResult prints a summary of a finished session and records it.
func printResult(session *game.Session, store *storage.Store) {
	st := session.State()
	fmt.Printf("Year %d: survived %d years, %d garbage destroyed.\n", st.Year, st.Score, st.Destroyed)
	saveResult(session, store)
}

// saveResult stores the score of a lost session. Sessions that did not
// survive a single year are not recorded.
func saveResult(session *game.Session, store *storage.Store) {
	st := session.State()
	if !st.GameOver || st.Score == 0 || store == nil {
		return
	}

	_, err := store.SaveScore(storage.ScoreEntry{
		SessionID: session.ID().String(),
		Player:    playerName(),
		Score:     st.Score,
		Year:      st.Year,
		Destroyed: st.Destroyed,
		Ticks:     st.Ticks,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save score: %v\n", err)
		return
	}
	if high, err := store.HighScore(); err == nil && high == st.Score {
		fmt.Println("New high score!")
	}
}

// pickDifficulty shows the difficulty menu until a preset is chosen or the
// player quits. The scoreboard opens from the menu and returns to it.
func pickDifficulty(cfg *config.GarbageConfig, store *storage.Store, width, height int) (int, int, bool, error) {
	for {
		choice, err := tui.RunMenu(*cfg, store, width, height)
		if err != nil {
			return width, height, false, err
		}
		width, height = choice.Width, choice.Height

		switch {
		case choice.Quit:
			return width, height, true, nil
		case choice.WantsScoreboard:
			if store == nil {
				continue
			}
			if err := tui.RunScoreboard(store, playerName(), width, height); err != nil {
				return width, height, false, err
			}
		default:
			config.ApplyPreset(cfg, choice.Preset)
			return width, height, false, nil
		}
	}
}
