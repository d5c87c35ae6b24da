package config

import (
	"fmt"
	"strings"
)

// Validate checks that every value is usable by the simulation.
// A non-nil error means the configuration is broken, not that a run failed.
func (c Config) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	p := c.Physics
	check(p.Gravity > 0, "physics.gravity must be positive, got %g", p.Gravity)
	check(p.JumpImpulse > 0, "physics.jump_impulse must be positive, got %g", p.JumpImpulse)
	check(p.JumpEpsilon >= 0, "physics.jump_epsilon must not be negative, got %g", p.JumpEpsilon)
	check(p.BaseSpeed >= 0, "physics.base_speed must not be negative, got %g", p.BaseSpeed)
	check(p.Acceleration >= 0, "physics.acceleration must not be negative, got %g", p.Acceleration)
	check(p.SlowFactor > 0 && p.SlowFactor <= 1, "physics.slow_factor must be in (0, 1], got %g", p.SlowFactor)
	check(p.Squash.Smoothing >= 0 && p.Squash.Smoothing <= 1, "physics.squash.smoothing must be in [0, 1], got %g", p.Squash.Smoothing)

	o := c.Obstacles
	check(o.PoolSize > 0, "obstacles.pool_size must be positive, got %d", o.PoolSize)
	check(o.SpawnDistance > 0, "obstacles.spawn_distance must be positive, got %g", o.SpawnDistance)
	check(o.RecycleBehind > 0, "obstacles.recycle_behind must be positive, got %g", o.RecycleBehind)
	check(o.InnerRadius >= 0, "obstacles.inner_radius must not be negative, got %g", o.InnerRadius)
	check(o.OuterRadius > o.InnerRadius, "obstacles.outer_radius (%g) must exceed inner_radius (%g)", o.OuterRadius, o.InnerRadius)
	check(o.BandHalfWidth > 0, "obstacles.band_half_width must be positive, got %g", o.BandHalfWidth)
	check(o.PassMargin >= 0, "obstacles.pass_margin must not be negative, got %g", o.PassMargin)
	check(o.MaxRotationSpeed >= 0, "obstacles.max_rotation_speed must not be negative, got %g", o.MaxRotationSpeed)

	b := c.Bursts
	check(b.PoolSize > 0, "bursts.pool_size must be positive, got %d", b.PoolSize)
	check(b.TimeScale > 0, "bursts.time_scale must be positive, got %g", b.TimeScale)
	check(b.Duration > 0, "bursts.duration must be positive, got %g", b.Duration)

	cam := c.Camera
	check(cam.Follow > 0 && cam.Follow <= 1, "camera.follow must be in (0, 1], got %g", cam.Follow)
	check(cam.ShakeDecay >= 0, "camera.shake_decay must not be negative, got %g", cam.ShakeDecay)

	r := c.Render
	check(r.ColumnsPerUnit > 0, "render.columns_per_unit must be positive, got %g", r.ColumnsPerUnit)
	check(r.RowsPerUnit > 0, "render.rows_per_unit must be positive, got %g", r.RowsPerUnit)
	check(r.MaxFrameDT > 0, "render.max_frame_dt must be positive, got %g", r.MaxFrameDT)
	check(r.GridSpacing > 0, "render.grid_spacing must be positive, got %g", r.GridSpacing)

	switch c.Difficulty.Preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
	default:
		problems = append(problems, fmt.Sprintf("difficulty.preset %q is not one of easy, normal, hard, fixed", c.Difficulty.Preset))
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
