// Package colorrush adapts the simulation core to the terminal platform.
// It maps platform actions to simulation input, tracks the best score and
// draws a side view of the lane.
package colorrush

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/core"
	"github.com/vovakirdan/color-rush/internal/sim"
)

// ID is the identifier used for score storage.
const ID = "colorrush"

// RunSummary describes the last finished run.
type RunSummary struct {
	Score    int
	Distance float64
	Duration time.Duration // Simulated time, pauses excluded
	NewBest  bool
}

// Game wraps a Simulation with menus, pause and best-score tracking.
type Game struct {
	cfg    config.Config
	rt     core.RuntimeConfig
	rng    *rand.Rand
	sim    *sim.Simulation
	paused bool

	highScore int
	elapsed   float64 // Simulated seconds in the current run
	last      RunSummary
	flash     float64 // Seconds left on the "+1" HUD flash
}

// New creates a Color Rush game. The configuration is validated here, so
// later resets cannot fail.
func New(cfg config.Config) (*Game, error) {
	g := &Game{
		cfg: cfg,
		rng: sim.NewRand(1),
	}
	s, err := sim.New(cfg, g.rng, g)
	if err != nil {
		return nil, err
	}
	g.sim = s
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Color Rush"
}

// Reset reseeds the simulation and returns to the title screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng.Seed(rt.Seed)
	g.sim.StartRun()
	g.sim.ResetToMenu()
	g.paused = false
	g.elapsed = 0
	g.flash = 0
}

// SetHighScore seeds the best score, usually from storage.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(g.highScore, score)
}

// Step advances the game by dt seconds of wall time.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	switch g.sim.Status() {
	case sim.StatusMenu:
		g.applyColor(in)
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.startRun()
		}
		return core.StepResult{State: g.State()}

	case sim.StatusGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.startRun()
		case in.Has(core.ActionBack):
			g.sim.ResetToMenu()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionBack) {
		g.paused = false
		g.sim.ResetToMenu()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyColor(in)
	res := g.sim.Step(dt, sim.Input{
		Jump: in.Has(core.ActionJump),
		Slow: in.Has(core.ActionSlow),
	})
	g.elapsed += dt
	g.flash = max(0, g.flash-dt)

	return core.StepResult{State: g.State(), RunEnded: res.GameOver}
}

func (g *Game) startRun() {
	color := g.sim.Player().Color
	g.sim.StartRun()
	// Keep the color picked on the title screen
	g.sim.SetPlayerColor(color)
	g.paused = false
	g.elapsed = 0
	g.flash = 0
}

func (g *Game) applyColor(in core.InputFrame) {
	if in.Has(core.ActionCycleColor) {
		g.sim.CyclePlayerColor()
	}
	for _, a := range []core.Action{core.ActionColor1, core.ActionColor2, core.ActionColor3, core.ActionColor4} {
		if !in.Has(a) {
			continue
		}
		if c, ok := a.PaletteColor(); ok {
			g.sim.SetPlayerColor(c)
		}
	}
}

// ScoreIncremented implements sim.Listener.
func (g *Game) ScoreIncremented(int) {
	g.flash = 0.5
}

// GameOver implements sim.Listener.
func (g *Game) GameOver(finalScore int) {
	g.last = RunSummary{
		Score:    finalScore,
		Distance: g.sim.Run().Distance,
		Duration: time.Duration(g.elapsed * float64(time.Second)),
		NewBest:  finalScore > g.highScore,
	}
	g.highScore = max(g.highScore, finalScore)
}

// BurstTriggered implements sim.Listener. Bursts are drawn from pool snapshots.
func (g *Game) BurstTriggered(float64, core.PaletteColor) {}

// LastRun returns the summary of the most recent finished run.
func (g *Game) LastRun() RunSummary {
	return g.last
}

// Sim exposes the underlying simulation for read-only inspection.
func (g *Game) Sim() *sim.Simulation {
	return g.sim
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.sim.Status()
	return core.GameState{
		Score:     g.sim.Run().Score,
		HighScore: g.highScore,
		GameOver:  status == sim.StatusGameOver,
		Paused:    g.paused,
		InMenu:    status == sim.StatusMenu,
	}
}
