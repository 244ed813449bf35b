package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/game"
	"github.com/vovakirdan/space-garbage/internal/sprite"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

// statusLines is the number of rows below the field used by the status bar.
const statusLines = 1

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a Model.
type Options struct {
	Config  config.GarbageConfig
	Library *sprite.Library
	Store   *storage.Store // May be nil
	Runtime core.RuntimeConfig
	Player  string
	Logger  *log.Logger
}

// Model is the Bubble Tea model running one space garbage session at a time.
type Model struct {
	opts       Options
	session    *game.Session
	screen     *core.Screen
	input      *core.InputBuffer
	keys       *KeyMapper
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a model and starts its first session.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	m := Model{
		opts:  opts,
		input: core.NewInputBuffer(),
		keys:  NewKeyMapper(),
	}
	if err := m.restart(opts.Runtime.ScreenH, opts.Runtime.ScreenW); err != nil {
		return Model{}, err
	}
	return m, nil
}

// restart creates a new session sized for a terminal of height x width.
func (m *Model) restart(height, width int) error {
	seed := m.opts.Runtime.Seed
	if seed == 0 || m.session != nil {
		// Use time-based seed unless a fixed one was given for the first session
		seed = time.Now().UnixNano()
	}

	m.opts.Runtime.ScreenH = height
	m.opts.Runtime.ScreenW = width
	m.screen = core.NewScreen(max(height-statusLines, 1), max(width, 1))

	session, err := game.NewSession(game.Options{
		Config:   m.opts.Config,
		Library:  m.opts.Library,
		Renderer: m.screen,
		Input:    m.input,
		Seed:     seed,
		Logger:   m.opts.Logger,
	})
	if err != nil {
		return err
	}
	m.session = session
	m.scoreSaved = false
	m.input.Poll() // Drop keys pressed for the previous session
	return nil
}

// Session returns the running session.
func (m Model) Session() *game.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case IsMovement(action):
		// Keys pressed during a pause must not act after it.
		if !m.session.Paused() {
			m.input.Press(action)
		}
	case action == core.ActionPause:
		m.session.TogglePause()
		m.input.Poll()
	case action == core.ActionRestart && m.session.State().GameOver:
		if err := m.restart(m.opts.Runtime.ScreenH, m.opts.Runtime.ScreenW); err != nil {
			m.opts.Logger.Error("restart failed", "error", err)
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The field is sized at startup, so a running game restarts at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Height == m.opts.Runtime.ScreenH && msg.Width == m.opts.Runtime.ScreenW {
		return m, nil
	}
	if m.session.State().GameOver {
		m.opts.Runtime.ScreenH = msg.Height
		m.opts.Runtime.ScreenW = msg.Width
		return m, nil
	}

	if err := m.restart(msg.Height, msg.Width); err != nil {
		m.opts.Logger.Error("resize failed", "error", err)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the session.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step()

	// Save score on game over (once)
	if st := m.session.State(); st.GameOver && !m.scoreSaved {
		m.saveScore(st)
		m.scoreSaved = true
	}

	return m, tickCmd(m.session.Interval())
}

func (m Model) saveScore(st core.GameState) {
	if m.opts.Store == nil || st.Score == 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		SessionID: m.session.ID().String(),
		Player:    m.opts.Player,
		Score:     st.Score,
		Year:      st.Year,
		Destroyed: st.Destroyed,
		Ticks:     st.Ticks,
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		m.opts.Logger.Warn("could not save score", "error", err)
		return
	}
	m.opts.Logger.Info("score saved", "player", m.opts.Player, "score", st.Score, "year", st.Year)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".garbage", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("garbage_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
	}
}

// StatusLine returns the text shown under the field.
func (m Model) StatusLine() string {
	st := m.session.State()
	switch {
	case st.GameOver:
		return fmt.Sprintf(" Survived %d years, %d destroyed  [r] restart  [q] quit", st.Score, st.Destroyed)
	case st.Paused:
		return " PAUSED  [p] resume  [q] quit"
	default:
		return fmt.Sprintf(" Score %d  Destroyed %d  [arrows/wasd] move  [space] fire  [p] pause  [q] quit", st.Score, st.Destroyed)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(m.StatusLine())
}

// Run starts the Bubble Tea program for a local player.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
