package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/core"
	"github.com/vovakirdan/color-rush/internal/games/colorrush"
	"github.com/vovakirdan/color-rush/internal/storage"
)

// GameOptions configures a game session.
type GameOptions struct {
	Config  config.Config      // Tuning with the difficulty preset already applied
	Runtime core.RuntimeConfig // Screen size, tick rate and seed
	Store   *storage.Store     // Optional; runs are not persisted when nil
	Logger  *log.Logger        // Optional; defaults to a discarding logger
	KeyHold time.Duration      // Hold window for polled keys; 0 uses DefaultKeyHold
	Player  string             // Recorded with each run, e.g. the SSH user
}

// GameModel is the Bubble Tea model that drives one Color Rush game.
type GameModel struct {
	game       *colorrush.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	maxDT      float64
	difficulty string
	player     string
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	exitOnBack bool // Standalone programs quit instead of handing back to a session
}

// NewGameModel creates a game model. The configuration is validated by the
// game, so this only fails on invalid tuning.
func NewGameModel(opts GameOptions) (GameModel, error) {
	game, err := colorrush.New(opts.Config)
	if err != nil {
		return GameModel{}, err
	}

	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(rt)
	if opts.Store != nil {
		high, err := opts.Store.HighScore(colorrush.ID)
		if err != nil {
			logger.Warn("Could not load high score", "error", err)
		}
		game.SetHighScore(high)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      opts.Store,
		logger:     logger,
		config:     rt,
		maxDT:      opts.Config.Render.MaxFrameDT,
		difficulty: string(opts.Config.Difficulty.Preset),
		player:     opts.Player,
		keyMapper:  NewKeyMapperWithHold(opts.KeyHold),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, now, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back on the title screen leaves the game
	if m.inputFrame.Has(core.ActionBack) && m.gameState.InMenu {
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate, m.maxDT)
	m.lastTick = now

	m.keyMapper.ApplyHeld(now, &m.inputFrame)
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	if result.RunEnded {
		m.recordRun()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun persists the run that just ended. Storage problems are logged and
// never interrupt play.
func (m GameModel) recordRun() {
	sum := m.game.LastRun()
	m.logger.Info("Run finished",
		"player", m.player,
		"score", sum.Score,
		"distance", fmt.Sprintf("%.1f", sum.Distance),
		"duration", sum.Duration.Round(time.Millisecond),
		"new_best", sum.NewBest,
	)

	if m.store == nil {
		return
	}
	rec, err := m.store.SaveRun(storage.RunRecord{
		GameID:     colorrush.ID,
		Score:      sum.Score,
		Distance:   sum.Distance,
		Duration:   sum.Duration,
		Difficulty: m.difficulty,
	})
	if err != nil {
		m.logger.Error("Could not save run", "error", err)
		return
	}
	m.logger.Debug("Run saved", "run_id", rec.RunID)
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("Could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".colorrush", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("Could not save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("Could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player left the game for the main menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for one game and reports whether the player
// asked to go back to the main menu.
func Run(opts GameOptions) (backToMenu bool, err error) {
	model, err := NewGameModel(opts)
	if err != nil {
		return false, err
	}
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(GameModel); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
