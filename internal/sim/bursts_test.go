package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/core"
)

func newTestBursts(t *testing.T) *BurstPool {
	t.Helper()
	p, err := NewBurstPool(config.DefaultConfig().Bursts)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewBurstPoolRejectsBadSize(t *testing.T) {
	cfg := config.DefaultConfig().Bursts
	cfg.PoolSize = 0
	if _, err := NewBurstPool(cfg); err == nil {
		t.Error("pool size 0 should fail")
	}
}

func TestBurstPoolExhaustion(t *testing.T) {
	p := newTestBursts(t)

	for i := 0; i < 5; i++ {
		slot, ok := p.Trigger(float64(-i), core.Yellow)
		if !ok || slot != i {
			t.Fatalf("trigger %d: slot %d ok %v", i, slot, ok)
		}
	}

	before := make([]Burst, p.Len())
	for i := range before {
		before[i] = p.At(i)
	}

	slot, ok := p.Trigger(-99, core.Cyan)
	if ok || slot != -1 {
		t.Errorf("sixth trigger should be dropped, got slot %d ok %v", slot, ok)
	}
	for i := range before {
		if p.At(i) != before[i] {
			t.Errorf("slot %d changed after a dropped trigger", i)
		}
	}
	if p.ActiveCount() != 5 {
		t.Errorf("ActiveCount() = %d, expected 5", p.ActiveCount())
	}
}

func TestBurstPoolReusesFirstFreeSlot(t *testing.T) {
	p := newTestBursts(t)
	p.Trigger(-1, core.Cyan)
	p.Trigger(-2, core.Cyan)
	p.slots[0].Active = false

	slot, ok := p.Trigger(-3, core.Lime)
	if !ok || slot != 0 {
		t.Errorf("expected slot 0, got %d (ok %v)", slot, ok)
	}
}

func TestBurstAnimation(t *testing.T) {
	p := newTestBursts(t)
	p.Trigger(-20, core.Magenta)

	p.Advance(0.1)
	b := p.At(0)

	approx := func(name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %g, expected %g", name, got, want)
		}
	}
	approx("time", b.Time, 0.4)
	approx("scale", b.Scale, 2.2)
	approx("spin", b.Spin, -0.1)
	approx("opacity", b.Opacity, 0.6)
	if !b.Active {
		t.Fatal("burst ended early")
	}

	// 0.15s more reaches local time 1.0, still active but fully faded
	p.Advance(0.15)
	b = p.At(0)
	if b.Time > 1.0+1e-9 {
		t.Fatalf("time = %g, expected about 1.0", b.Time)
	}
	if b.Opacity > 1e-9 {
		t.Errorf("opacity = %g, expected 0", b.Opacity)
	}

	p.Advance(0.05)
	if p.At(0).Active {
		t.Error("burst should deactivate once local time exceeds 1.0")
	}
}

func TestBurstPoolReset(t *testing.T) {
	p := newTestBursts(t)
	p.Trigger(0, core.Cyan)
	p.Trigger(0, core.Cyan)
	p.Reset()
	if p.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d after Reset", p.ActiveCount())
	}
}
