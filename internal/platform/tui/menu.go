package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/core"
	"github.com/vovakirdan/color-rush/internal/games/colorrush"
	"github.com/vovakirdan/color-rush/internal/storage"
)

// MenuChoice identifies a menu entry.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuDifficulty
	MenuScores
	MenuQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var defaultMenuItems = []MenuItem{
	{Choice: MenuPlay, Title: "Play"},
	{Choice: MenuDifficulty, Title: "Difficulty"},
	{Choice: MenuScores, Title: "High Scores"},
	{Choice: MenuQuit, Title: "Quit"},
}

// presetCycle is the order the difficulty entry steps through.
var presetCycle = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	width      int
	height     int
	highScore  int
	difficulty config.DifficultyPreset
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	selected   *MenuItem
}

// NewMenuModel creates a new menu model. The store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) MenuModel {
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	m := MenuModel{
		items:      defaultMenuItems,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		difficulty: difficulty,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
	if store != nil {
		if high, err := store.HighScore(colorrush.ID); err == nil {
			m.highScore = high
		}
	}
	return m
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
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
		item := m.items[m.cursor]
		switch item.Choice {
		case MenuDifficulty:
			m.difficulty = nextPreset(m.difficulty)
			return m, nil
		case MenuQuit:
			m.quitting = true
		}
		m.selected = &item
		return m, tea.Quit
	}

	return m, nil
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Difficulty returns the preset currently shown in the menu.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.difficulty
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

func nextPreset(p config.DifficultyPreset) config.DifficultyPreset {
	for i, candidate := range presetCycle {
		if candidate == p {
			return presetCycle[(i+1)%len(presetCycle)]
		}
	}
	return config.DifficultyNormal
}

var menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(paletteTitle("C O L O R   R U S H"), m.width, len("C O L O R   R U S H")))
	b.WriteString("\n\n")
	best := fmt.Sprintf("Best: %d", m.highScore)
	b.WriteString(centerText(best, m.width, len(best)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		label := item.Title
		if item.Choice == MenuDifficulty {
			label = fmt.Sprintf("Difficulty: %s", m.difficulty)
		}
		line := "  " + label
		styled := line
		if i == m.cursor {
			line = "> " + label
			styled = menuCursorStyle.Render(line)
		}
		b.WriteString(centerText(styled, m.width, len(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width, len(controls)))
	b.WriteString("\n")

	return b.String()
}

// paletteTitle colors each letter with the next gameplay color.
func paletteTitle(title string) string {
	var b strings.Builder
	i := 0
	for _, r := range title {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(styleFor(core.PaletteColor(i % core.PaletteSize).Hex()).Render(string(r)))
		i++
	}
	return b.String()
}

// centerText centers text whose visible length is n within width.
func centerText(text string, width, n int) string {
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
	Quit       bool
}

func (m MenuModel) result() MenuResult {
	res := MenuResult{
		Choice:     MenuQuit,
		Difficulty: m.difficulty,
		Config:     m.config,
		Quit:       m.quitting,
	}
	if m.selected != nil && !m.quitting {
		res.Choice = m.selected.Choice
	} else {
		res.Quit = true
	}
	return res
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: difficulty, Quit: true}, nil
	}
	return m.result(), nil
}
