package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/physics"
	"github.com/vovakirdan/space-garbage/internal/sprite"
)

// Options configures a new session.
type Options struct {
	Config   config.GarbageConfig
	Library  *sprite.Library
	Renderer engine.Renderer
	Input    engine.InputSource // May be nil for headless runs
	Seed     int64
	Logger   *log.Logger
}

// Session is one game from launch to game over: a world, a scheduler and
// the tasks created at startup.
type Session struct {
	id         uuid.UUID
	cfg        config.GarbageConfig
	library    *sprite.Library
	world      *engine.World
	scheduler  *engine.Scheduler
	difficulty *config.DifficultyManager
	craft      *Craft
	spawner    *HazardSpawner
	paused     bool
}

// NewSession validates the options, draws the border and creates the
// startup tasks: the stars, the craft, the hazard spawner and the clock.
func NewSession(opts Options) (*Session, error) {
	if opts.Renderer == nil {
		return nil, errors.New("game: renderer is required")
	}
	if opts.Library == nil {
		return nil, errors.New("game: sprite library is required")
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	styles, err := cfg.Blink.BlinkStyles()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	frames := opts.Library.CraftFrames()
	for _, idx := range cfg.Craft.Animation {
		if idx >= len(frames) {
			return nil, fmt.Errorf("game: craft animation uses frame %d, only %d loaded: %w", idx, len(frames), sprite.ErrMissingFrame)
		}
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	world := engine.NewWorld(opts.Renderer, rng, opts.Logger)
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	world.Year = difficulty.StartYear()

	s := &Session{
		id:         uuid.New(),
		cfg:        cfg,
		library:    opts.Library,
		world:      world,
		scheduler:  engine.NewScheduler(world, opts.Input),
		difficulty: difficulty,
	}

	drawBorder(opts.Renderer)
	s.addStars(styles)

	s.craft = s.newCraft(frames)
	s.spawner = NewHazardSpawner(opts.Library, difficulty, cfg.Hazard)
	s.scheduler.Add(s.craft, s.spawner, NewDifficultyClock(difficulty))

	world.Log.Info("session started",
		"id", s.id,
		"rows", world.Rows,
		"cols", world.Cols,
		"seed", opts.Seed,
		"year", world.Year,
		"tasks", s.scheduler.Len())
	return s, nil
}

// addStars scatters blinking stars over the interior.
func (s *Session) addStars(styles []core.Style) {
	w := s.world
	field := s.cfg.Field
	if w.Rows < 3 || w.Cols < 3 || field.Stars == 0 {
		return
	}

	phases := make([]BlinkPhase, len(styles))
	for i, st := range styles {
		phases[i] = BlinkPhase{Style: st, Ticks: s.cfg.Blink.Phases[i].Ticks}
	}
	symbols := []rune(field.StarSymbols)

	for range field.Stars {
		row := 1 + w.Rand.Intn(w.Rows-2)
		col := 1 + w.Rand.Intn(w.Cols-2)
		symbol := symbols[w.Rand.Intn(len(symbols))]
		offset := 0
		if s.cfg.Blink.MaxOffset > 0 {
			offset = 1 + w.Rand.Intn(s.cfg.Blink.MaxOffset)
		}
		s.scheduler.Add(NewBlink(row, col, symbol, offset, phases))
	}
}

// newCraft places the craft in the middle of the field.
func (s *Session) newCraft(frames []*sprite.Sprite) *Craft {
	cc := s.cfg.Craft
	opts := CraftOptions{
		Frames:     frames,
		Animation:  cc.Animation,
		Banner:     s.library.GameOver(),
		Easing:     physics.Easing{Limit: cc.SpeedLimit, Step: cc.Acceleration},
		RowOffset:  cc.RowOffset,
		ColOffset:  cc.ColumnOffset,
		Projectile: s.cfg.Projectile,
		CanFire:    s.difficulty.WeaponsUnlocked,
	}
	c := NewCraft(0, 0, opts)
	h, w := c.Size()
	c.row = float64((s.world.Rows - h) / 2)
	c.col = float64((s.world.Cols - w) / 2)
	return c
}

// ID returns the session's unique id.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// World returns the session's world.
func (s *Session) World() *engine.World {
	return s.world
}

// Scheduler returns the session's scheduler.
func (s *Session) Scheduler() *engine.Scheduler {
	return s.scheduler
}

// Craft returns the player's craft.
func (s *Session) Craft() *Craft {
	return s.craft
}

// Interval returns the configured time between ticks.
func (s *Session) Interval() time.Duration {
	return time.Duration(s.cfg.TickIntervalMS) * time.Millisecond
}

// Step runs one tick unless the session is paused.
func (s *Session) Step() {
	if s.paused {
		return
	}
	s.scheduler.Tick()
}

// Run ticks the session at the configured interval until ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	return s.scheduler.Run(ctx, s.Interval())
}

// TogglePause pauses or resumes the session. A finished game stays as is.
func (s *Session) TogglePause() {
	if s.world.GameOver {
		return
	}
	s.paused = !s.paused
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// State returns the session's current state. The score is the number of
// years survived.
func (s *Session) State() core.GameState {
	w := s.world
	return core.GameState{
		Score:     w.Year - s.difficulty.StartYear(),
		Year:      w.Year,
		Destroyed: w.Destroyed,
		Ticks:     w.Tick,
		GameOver:  w.GameOver,
		Paused:    s.paused,
	}
}
