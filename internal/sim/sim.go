// Package sim implements the Color Rush simulation core: player physics,
// the recycled ring pool, segment collision, pass bursts and the follow camera.
//
// The core is single-threaded and advanced once per frame by the host with the
// elapsed time. It never logs or draws; hosts observe it through a Listener and
// read-only snapshots.
package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/core"
)

// Status is the run state machine position.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "Menu"
	case StatusPlaying:
		return "Playing"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RunState aggregates the per-run counters.
type RunState struct {
	Distance float64
	Speed    float64 // Effective forward speed of the last frame
	Score    int
	Shake    float64
}

// StepResult reports what a single Step did.
type StepResult struct {
	Status   Status
	Passed   int  // Rings cleared this frame
	GameOver bool // True only on the frame the run ended
}

// Simulation owns the player, both pools and the run state.
type Simulation struct {
	cfg      config.Config
	listener Listener

	status    Status
	player    Player
	obstacles *ObstaclePool
	bursts    *BurstPool
	camera    cameraRig
	input     inputSampler
	run       RunState
}

// New validates cfg and builds a simulation idling in the menu state.
// rng drives ring spawn parameters and camera jitter. A nil listener is allowed.
func New(cfg config.Config, rng Rand, l Listener) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("sim: random source is required")
	}
	if l == nil {
		l = NopListener{}
	}

	obstacles, err := NewObstaclePool(cfg.Obstacles, rng)
	if err != nil {
		return nil, fmt.Errorf("sim: cannot create obstacle pool: %w", err)
	}
	bursts, err := NewBurstPool(cfg.Bursts)
	if err != nil {
		return nil, fmt.Errorf("sim: cannot create burst pool: %w", err)
	}

	s := &Simulation{
		cfg:       cfg,
		listener:  l,
		obstacles: obstacles,
		bursts:    bursts,
		camera:    cameraRig{cfg: cfg.Camera, rng: rng},
	}
	s.resetRun()
	s.status = StatusMenu
	return s, nil
}

// StartRun resets the player, pools and counters and starts simulating.
func (s *Simulation) StartRun() {
	s.resetRun()
	s.status = StatusPlaying
}

// ResetToMenu stops simulating. The last frame stays readable as a backdrop.
func (s *Simulation) ResetToMenu() {
	s.status = StatusMenu
}

func (s *Simulation) resetRun() {
	s.player.reset(s.cfg.Physics)
	s.obstacles.Reset()
	s.bursts.Reset()
	s.camera.reset(s.player.Pos)
	s.input.reset()
	s.run = RunState{Speed: s.cfg.Physics.BaseSpeed}
}

// Step advances the run by dt seconds. It is a no-op unless a run is in
// progress or dt is not positive.
func (s *Simulation) Step(dt float64, in Input) StepResult {
	if s.status != StatusPlaying || dt <= 0 {
		return StepResult{Status: s.status}
	}

	in = s.input.sample(in)
	moved, jumped := s.player.update(s.cfg.Physics, dt, in)
	if jumped {
		s.input.consumeJump()
	}
	s.run.Distance += moved
	s.run.Speed = moved / dt

	s.obstacles.Advance(s.player.Pos.Z, dt)

	passed, hit := s.resolveCollisions()
	if hit {
		return StepResult{Status: s.status, Passed: passed, GameOver: true}
	}

	s.bursts.Advance(dt)
	s.run.Shake = s.camera.update(s.player.Pos, s.run.Shake, dt)

	return StepResult{Status: s.status, Passed: passed}
}

// pass scores a cleared ring at z.
func (s *Simulation) pass(z float64) {
	s.run.Score++
	s.listener.ScoreIncremented(s.run.Score)

	s.bursts.Trigger(z, s.player.Color)
	s.run.Shake = s.cfg.Bursts.Shake
	s.listener.BurstTriggered(z, s.player.Color)
}

func (s *Simulation) endRun() {
	s.status = StatusGameOver
	s.listener.GameOver(s.run.Score)
}

// SetPlayerColor switches the player to palette color c.
// It returns false for an index outside the palette.
func (s *Simulation) SetPlayerColor(c core.PaletteColor) bool {
	if !c.Valid() {
		return false
	}
	s.player.Color = c
	return true
}

// CyclePlayerColor switches to the next palette color.
func (s *Simulation) CyclePlayerColor() core.PaletteColor {
	s.player.Color = s.player.Color.Next()
	return s.player.Color
}

// Status returns the run state machine position.
func (s *Simulation) Status() Status { return s.status }

// Player returns a copy of the player.
func (s *Simulation) Player() Player { return s.player }

// Run returns a copy of the run counters.
func (s *Simulation) Run() RunState { return s.run }

// Camera returns the camera pose.
func (s *Simulation) Camera() Camera { return s.camera.cam }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.Config { return s.cfg }

// NumObstacles returns the ring pool capacity.
func (s *Simulation) NumObstacles() int { return s.obstacles.Len() }

// Obstacle returns a copy of ring slot i.
func (s *Simulation) Obstacle(i int) Obstacle { return s.obstacles.At(i) }

// Obstacles appends copies of every ring to dst.
func (s *Simulation) Obstacles(dst []Obstacle) []Obstacle { return s.obstacles.Snapshot(dst) }

// NumBursts returns the burst pool capacity.
func (s *Simulation) NumBursts() int { return s.bursts.Len() }

// Burst returns a copy of burst slot i.
func (s *Simulation) Burst(i int) Burst { return s.bursts.At(i) }
