package sim

import "github.com/vovakirdan/color-rush/internal/core"

// Listener receives simulation events. Calls happen synchronously inside Step.
type Listener interface {
	ScoreIncremented(score int)
	GameOver(finalScore int)
	BurstTriggered(z float64, c core.PaletteColor)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) ScoreIncremented(int) {}
func (NopListener) GameOver(int) {}
func (NopListener) BurstTriggered(float64, core.PaletteColor) {}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnScore    func(score int)
	OnGameOver func(finalScore int)
	OnBurst    func(z float64, c core.PaletteColor)
}

func (f ListenerFuncs) ScoreIncremented(score int) {
	if f.OnScore != nil {
		f.OnScore(score)
	}
}

func (f ListenerFuncs) GameOver(finalScore int) {
	if f.OnGameOver != nil {
		f.OnGameOver(finalScore)
	}
}

func (f ListenerFuncs) BurstTriggered(z float64, c core.PaletteColor) {
	if f.OnBurst != nil {
		f.OnBurst(z, c)
	}
}
