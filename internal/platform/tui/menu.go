package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true)
	menuHintStyle  = lipgloss.NewStyle().Faint(true)
)

// MenuItem is one selectable difficulty preset.
type MenuItem struct {
	Preset config.DifficultyPreset
	Title  string
	Detail string
}

// menuItems describes the presets against the base config, so the start
// years and phrases shown match what the session will use.
func menuItems(base config.GarbageConfig) []MenuItem {
	presets := []struct {
		preset config.DifficultyPreset
		title  string
	}{
		{config.DifficultyEasy, "Easy"},
		{config.DifficultyNormal, "Normal"},
		{config.DifficultyHard, "Hard"},
		{config.DifficultyFixed, "Fixed year"},
	}

	items := make([]MenuItem, 0, len(presets))
	for _, p := range presets {
		cfg := base
		config.ApplyPreset(&cfg, p.preset)
		d := config.NewDifficultyManager(cfg.Difficulty)

		detail := fmt.Sprintf("from %d", d.StartYear())
		if p.preset == config.DifficultyFixed {
			detail = fmt.Sprintf("stays in %d", d.StartYear())
		}
		if phrase := d.Phrase(d.StartYear()); phrase != "" {
			detail += ": " + phrase
		}
		items = append(items, MenuItem{Preset: p.preset, Title: p.title, Detail: detail})
	}
	return items
}

// MenuModel is the Bubble Tea model for the difficulty picker shown before
// a local game.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	best           int // Best recorded score, -1 if unknown
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user picks a preset
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(base config.GarbageConfig, store *storage.Store, width, height int) MenuModel {
	best := -1
	if store != nil {
		// Only positive scores are recorded, so 0 means an empty board.
		if high, err := store.HighScore(); err == nil && high > 0 {
			best = high
		}
	}

	return MenuModel{
		items:     menuItems(base),
		width:     width,
		height:    height,
		best:      best,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S P A C E   G A R B A G E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose when to launch", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-10s %s", cursor, item.Title, menuHintStyle.Render(item.Detail))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.best >= 0 {
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("Best: %d years", m.best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Launch  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.DifficultyPreset
	Width, Height   int
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the difficulty picker and returns the choice.
func RunMenu(base config.GarbageConfig, store *storage.Store, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(base, store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	result := MenuResult{Width: m.width, Height: m.height}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.selected != nil:
		result.Preset = m.selected.Preset
	default:
		result.Quit = true
	}
	return result, nil
}
