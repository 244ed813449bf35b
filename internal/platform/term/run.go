package term

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/game"
	"github.com/vovakirdan/space-garbage/internal/sprite"
)

// Options configures a terminal run.
type Options struct {
	Config  config.GarbageConfig
	Library *sprite.Library
	Seed    int64
	Logger  *log.Logger

	// Screen overrides the terminal, e.g. with a simulation screen.
	Screen tcell.Screen
}

// Run plays one session on the terminal until the player quits or ctx is
// cancelled. The finished session is returned for scoring.
func Run(ctx context.Context, opts Options) (*game.Session, error) {
	s := opts.Screen
	if s == nil {
		var err error
		if s, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("term: %w", err)
		}
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	defer s.Fini()
	s.HideCursor()
	s.Clear()

	input := core.NewInputBuffer()
	session, err := game.NewSession(game.Options{
		Config:   opts.Config,
		Library:  opts.Library,
		Renderer: NewScreen(s),
		Input:    input,
		Seed:     opts.Seed,
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go pumpInput(ctx, s, input, cancel)

	err = session.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return session, err
}
