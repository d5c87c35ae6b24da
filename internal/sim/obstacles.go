package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/core"
)

// Obstacle is a rotating four-segment ring.
type Obstacle struct {
	Index         int
	Z             float64
	Rotation      float64 // Radians in [0, 2π)
	RotationSpeed float64 // Radians per second, signed
	ColorOffset   int     // Shifts which palette color sits on each segment
	Passed        bool
}

// SegmentColor returns the palette color painted on segment seg.
func (o Obstacle) SegmentColor(seg Segment) core.PaletteColor {
	return core.PaletteColor((int(seg) + o.ColorOffset) % core.PaletteSize)
}

// ObstaclePool is a fixed set of rings recycled ahead of the player.
type ObstaclePool struct {
	slots    []Obstacle
	farthest float64 // Smallest Z handed out so far
	cfg      config.Obstacles
	rng      Rand
}

// NewObstaclePool allocates cfg.PoolSize rings and lays them out.
func NewObstaclePool(cfg config.Obstacles, rng Rand) (*ObstaclePool, error) {
	if cfg.PoolSize <= 0 {
		return nil, fmt.Errorf("sim: obstacle pool size must be positive, got %d", cfg.PoolSize)
	}
	if cfg.SpawnDistance <= 0 {
		return nil, fmt.Errorf("sim: spawn distance must be positive, got %g", cfg.SpawnDistance)
	}
	if rng == nil {
		return nil, errors.New("sim: obstacle pool needs a random source")
	}

	p := &ObstaclePool{
		slots: make([]Obstacle, cfg.PoolSize),
		cfg:   cfg,
		rng:   rng,
	}
	p.Reset()
	return p, nil
}

// Reset staggers every ring one spawn distance apart starting ahead of Z=0.
func (p *ObstaclePool) Reset() {
	p.farthest = 0
	for i := range p.slots {
		z := -p.cfg.SpawnDistance * float64(i+1)
		p.slots[i] = Obstacle{Index: i, Z: z}
		p.randomize(&p.slots[i])
		p.farthest = min(p.farthest, z)
	}
}

// Advance recycles rings that fell far enough behind the player and spins the rest.
// It returns how many rings were recycled.
func (p *ObstaclePool) Advance(playerZ, dt float64) int {
	recycled := 0
	for i := range p.slots {
		o := &p.slots[i]
		if o.Z > playerZ+p.cfg.RecycleBehind {
			p.recycle(o)
			recycled++
			continue
		}
		o.Rotation = core.NormalizeAngle(o.Rotation + o.RotationSpeed*dt)
	}
	return recycled
}

func (p *ObstaclePool) recycle(o *Obstacle) {
	p.farthest -= p.cfg.SpawnDistance
	o.Z = p.farthest
	o.Passed = false
	o.Rotation = 0
	p.randomize(o)
}

func (p *ObstaclePool) randomize(o *Obstacle) {
	o.RotationSpeed = (p.rng.Float64()*2 - 1) * p.cfg.MaxRotationSpeed
	o.ColorOffset = p.rng.Intn(core.PaletteSize)
}

// Farthest returns the Z of the most recently placed ring.
func (p *ObstaclePool) Farthest() float64 {
	return p.farthest
}

// Len returns the pool capacity.
func (p *ObstaclePool) Len() int {
	return len(p.slots)
}

// At returns a copy of slot i.
func (p *ObstaclePool) At(i int) Obstacle {
	return p.slots[i]
}

// Snapshot appends copies of every slot to dst.
func (p *ObstaclePool) Snapshot(dst []Obstacle) []Obstacle {
	return append(dst, p.slots...)
}
