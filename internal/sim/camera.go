package sim

import (
	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/core"
)

// shakeFloor is where a decaying shake is treated as gone.
const shakeFloor = 1e-4

// Camera follows the player from behind and above.
type Camera struct {
	Pos    core.Vec3
	Jitter core.Vec3 // Shake offset applied this frame
}

type cameraRig struct {
	cam Camera
	cfg config.Camera
	rng Rand
}

func (c *cameraRig) reset(player core.Vec3) {
	c.cam = Camera{Pos: c.target(player)}
}

func (c *cameraRig) target(player core.Vec3) core.Vec3 {
	return core.V3(0, player.Y+c.cfg.OffsetY, player.Z+c.cfg.OffsetZ)
}

// update eases toward the player, decays shake and applies jitter.
// Smoothing uses a fixed factor per frame. It returns the decayed shake.
func (c *cameraRig) update(player core.Vec3, shake, dt float64) float64 {
	t := c.target(player)
	c.cam.Pos.Z = core.Lerp(c.cam.Pos.Z, t.Z, c.cfg.Follow)
	c.cam.Pos.Y = core.Lerp(c.cam.Pos.Y, t.Y, c.cfg.Follow)

	shake = core.Lerp(shake, 0, core.ClampF(c.cfg.ShakeDecay*dt, 0, 1))
	if shake < shakeFloor {
		shake = 0
	}

	c.cam.Jitter = core.Vec3{}
	if shake > 0 {
		c.cam.Jitter.X = (c.rng.Float64() - 0.5) * shake
		c.cam.Jitter.Y = (c.rng.Float64() - 0.5) * shake
		c.cam.Pos.X = c.cam.Jitter.X
		c.cam.Pos.Y += c.cam.Jitter.Y
	} else {
		c.cam.Pos.X = 0
	}
	return shake
}
