package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/core"
	"github.com/vovakirdan/color-rush/internal/games/colorrush"
	"github.com/vovakirdan/color-rush/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	cfg := config.DefaultConfig()
	config.ApplyPreset(&cfg, config.DifficultyHard)
	m, err := NewGameModel(GameOptions{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
		Store:   store,
	})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestGameModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Bursts.PoolSize = 0
	if _, err := NewGameModel(GameOptions{Config: cfg}); err == nil {
		t.Error("NewGameModel() should fail on invalid tuning")
	}
}

func TestGameModelLoadsHighScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.RunRecord{GameID: colorrush.ID, Score: 17}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := newTestModel(t, store)
	if m.State().HighScore != 17 {
		t.Errorf("HighScore = %d, expected 17", m.State().HighScore)
	}
}

func TestGameModelStartsRunOnEnter(t *testing.T) {
	m := newTestModel(t, nil)
	if !m.State().InMenu {
		t.Fatal("model should start on the title screen")
	}

	t0 := time.Unix(1000, 0)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg(t0))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.State().InMenu {
		t.Error("Enter should start a run")
	}

	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("view should show the HUD during a run")
	}
}

func TestGameModelBackLeavesFromTitle(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("Back on the title screen should leave the game")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestRecordRunSavesToStore(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	m.recordRun()

	runs, err := store.RecentRuns(colorrush.ID, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Difficulty != string(config.DifficultyHard) {
		t.Errorf("Difficulty = %q, expected hard", runs[0].Difficulty)
	}
}

func TestRecordRunWithoutStore(t *testing.T) {
	m := newTestModel(t, nil)
	// Must not panic
	m.recordRun()
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColored(0, 0, 'a', core.ColorWhite)
	s.SetColored(1, 0, 'b', core.ColorWhite)
	s.Set(2, 0, 'c')

	out := RenderScreen(s)
	for _, want := range []string{"ab", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
}
