package sim

import (
	"fmt"

	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/core"
)

// Burst is an expanding, fading ring shown when the player clears an obstacle.
type Burst struct {
	Index   int
	Active  bool
	Time    float64 // Local time; runs faster than real time
	Z       float64
	Color   core.PaletteColor
	Scale   float64
	Spin    float64
	Opacity float64 // 1 on trigger, 0 when done
}

// BurstPool holds a fixed number of burst slots.
type BurstPool struct {
	slots []Burst
	cfg   config.Bursts
}

// NewBurstPool allocates cfg.PoolSize inactive bursts.
func NewBurstPool(cfg config.Bursts) (*BurstPool, error) {
	if cfg.PoolSize <= 0 {
		return nil, fmt.Errorf("sim: burst pool size must be positive, got %d", cfg.PoolSize)
	}
	p := &BurstPool{
		slots: make([]Burst, cfg.PoolSize),
		cfg:   cfg,
	}
	p.Reset()
	return p, nil
}

// Reset deactivates every slot.
func (p *BurstPool) Reset() {
	for i := range p.slots {
		p.slots[i] = Burst{Index: i}
	}
}

// Trigger starts a burst in the first free slot.
// When every slot is busy the trigger is dropped and ok is false.
func (p *BurstPool) Trigger(z float64, c core.PaletteColor) (slot int, ok bool) {
	for i := range p.slots {
		if p.slots[i].Active {
			continue
		}
		p.slots[i] = Burst{
			Index:   i,
			Active:  true,
			Z:       z,
			Color:   c,
			Scale:   1,
			Opacity: 1,
		}
		return i, true
	}
	return -1, false
}

// Advance ages every active burst.
func (p *BurstPool) Advance(dt float64) {
	for i := range p.slots {
		b := &p.slots[i]
		if !b.Active {
			continue
		}
		b.Time += dt * p.cfg.TimeScale
		b.Scale = 1 + b.Time*p.cfg.GrowthRate
		b.Spin -= dt * p.cfg.SpinRate
		b.Opacity = max(0, 1-b.Time/p.cfg.Duration)
		if b.Time > p.cfg.Duration {
			b.Active = false
		}
	}
}

// ActiveCount returns the number of running bursts.
func (p *BurstPool) ActiveCount() int {
	n := 0
	for _, b := range p.slots {
		if b.Active {
			n++
		}
	}
	return n
}

// Len returns the pool capacity.
func (p *BurstPool) Len() int {
	return len(p.slots)
}

// At returns a copy of slot i.
func (p *BurstPool) At(i int) Burst {
	return p.slots[i]
}
