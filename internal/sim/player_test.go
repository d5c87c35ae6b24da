package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/color-rush/internal/config"
)

func TestPlayerGroundInvariant(t *testing.T) {
	cfg := config.DefaultConfig().Physics
	rng := rand.New(rand.NewSource(7))

	var p Player
	p.reset(cfg)

	for i := 0; i < 5000; i++ {
		dt := rng.Float64() * 0.1
		in := Input{Jump: rng.Intn(3) == 0, Slow: rng.Intn(4) == 0}
		p.update(cfg, dt, in)

		if p.Pos.Y < cfg.GroundY {
			t.Fatalf("step %d: Y = %g below ground %g", i, p.Pos.Y, cfg.GroundY)
		}
		if p.Pos.Y == cfg.GroundY && p.Jumping {
			t.Fatalf("step %d: jumping flag set while on the ground", i)
		}
	}
}

func TestPlayerSpeedRampAndSlow(t *testing.T) {
	cfg := config.DefaultConfig().Physics
	var p Player
	p.reset(cfg)

	moved, _ := p.update(cfg, 1, Input{})
	// Speed ramps first, then moves
	if want := cfg.BaseSpeed + cfg.Acceleration; math.Abs(moved-want) > 1e-9 {
		t.Errorf("moved %g, expected %g", moved, want)
	}

	base := p.Speed
	moved, _ = p.update(cfg, 1, Input{Slow: true})
	if math.Abs(moved-base*cfg.SlowFactor) > 1e-9 {
		t.Errorf("slow frame moved %g, expected %g", moved, base*cfg.SlowFactor)
	}
	if p.Speed != base {
		t.Errorf("slow frame changed base speed from %g to %g", base, p.Speed)
	}
	if math.Abs(p.Pos.Z+(cfg.BaseSpeed+cfg.Acceleration)+base*cfg.SlowFactor) > 1e-9 {
		t.Errorf("Z = %g does not match travelled distance", p.Pos.Z)
	}
}

func TestPlayerJumpOnlyFromGround(t *testing.T) {
	cfg := config.DefaultConfig().Physics
	var p Player
	p.reset(cfg)

	_, jumped := p.update(cfg, 1.0/60, Input{Jump: true})
	if !jumped || !p.Jumping {
		t.Fatal("jump from the ground should fire")
	}
	if p.VelocityY >= cfg.JumpImpulse || p.VelocityY <= 0 {
		t.Errorf("VelocityY = %g, expected impulse minus one frame of gravity", p.VelocityY)
	}

	// Airborne: a fresh request is ignored
	p.Jumping = false
	p.Pos.Y = cfg.GroundY + 1
	_, jumped = p.update(cfg, 1.0/60, Input{Jump: true})
	if jumped {
		t.Error("jump fired while well above the ground")
	}
}

func TestPlayerLandsAndClearsJumping(t *testing.T) {
	cfg := config.DefaultConfig().Physics
	var p Player
	p.reset(cfg)

	p.update(cfg, 1.0/60, Input{Jump: true})
	for i := 0; i < 120 && p.Jumping; i++ {
		p.update(cfg, 1.0/60, Input{})
	}
	if p.Jumping {
		t.Fatal("player never landed")
	}
	if p.Pos.Y != cfg.GroundY || p.VelocityY != 0 {
		t.Errorf("after landing Y = %g, VelocityY = %g", p.Pos.Y, p.VelocityY)
	}
}

func TestPlayerSquashStretch(t *testing.T) {
	cfg := config.DefaultConfig().Physics
	var p Player
	p.reset(cfg)

	p.update(cfg, 1.0/60, Input{Jump: true})
	if p.Scale.Y <= 1 {
		t.Errorf("rising player should stretch, Scale.Y = %g", p.Scale.Y)
	}
	if p.Scale.X >= 1 || p.Scale.X != p.Scale.Z {
		t.Errorf("rising player should thin evenly, Scale = %+v", p.Scale)
	}

	// Stretch target never exceeds 1 + MaxStretch
	for i := 0; i < 200; i++ {
		p.VelocityY = 1000
		p.squash(cfg.Squash)
	}
	if p.Scale.Y > 1+cfg.Squash.MaxStretch+1e-9 {
		t.Errorf("Scale.Y = %g exceeds the stretch cap", p.Scale.Y)
	}
}
