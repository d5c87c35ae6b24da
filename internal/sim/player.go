package sim

import (
	"math"

	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/core"
)

// Player is the runner sphere. X stays at the lane center.
type Player struct {
	Pos       core.Vec3
	VelocityY float64
	Speed     float64 // Base forward speed, ramps up over the run
	Jumping   bool
	Color     core.PaletteColor
	Scale     core.Vec3 // Squash/stretch, display only
}

// reset puts the player on the ground at the lane start.
func (p *Player) reset(cfg config.Physics) {
	*p = Player{
		Pos:   core.V3(0, cfg.GroundY, 0),
		Speed: cfg.BaseSpeed,
		Color: core.Cyan,
		Scale: core.V3(1, 1, 1),
	}
}

// update integrates one frame and returns the distance travelled and
// whether a jump fired.
func (p *Player) update(cfg config.Physics, dt float64, in Input) (moved float64, jumped bool) {
	speed := p.Speed
	if in.Slow {
		speed *= cfg.SlowFactor
	} else {
		p.Speed += cfg.Acceleration * dt
		speed = p.Speed
	}

	moved = speed * dt
	p.Pos.Z -= moved

	if in.Jump && !p.Jumping && p.Pos.Y <= cfg.GroundY+cfg.JumpEpsilon {
		p.VelocityY = cfg.JumpImpulse
		p.Jumping = true
		jumped = true
	}

	p.VelocityY -= cfg.Gravity * dt
	p.Pos.Y += p.VelocityY * dt

	if p.Pos.Y < cfg.GroundY {
		p.Pos.Y = cfg.GroundY
		p.VelocityY = 0
		p.Jumping = false
	}

	p.squash(cfg.Squash)
	return moved, jumped
}

// squash eases the scale toward a volume-preserving stretch along Y.
func (p *Player) squash(cfg config.Squash) {
	stretch := core.ClampF(math.Abs(p.VelocityY)*cfg.StretchPerSpeed, 0, cfg.MaxStretch)
	sy := 1 + stretch
	sxz := 1 / math.Sqrt(sy)
	p.Scale = p.Scale.Lerp(core.V3(sxz, sy, sxz), cfg.Smoothing)
}
