package sim

import (
	"math"

	"github.com/vovakirdan/color-rush/internal/core"
)

// Segment identifies one of the four colored arcs of a ring.
type Segment int

const (
	SegmentTop    Segment = iota // centered at 90°
	SegmentRight                 // centered at 0°
	SegmentBottom                // centered at 270°
	SegmentLeft                  // centered at 180°
)

func (s Segment) String() string {
	switch s {
	case SegmentTop:
		return "Top"
	case SegmentRight:
		return "Right"
	case SegmentBottom:
		return "Bottom"
	case SegmentLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Center returns the angle the segment is centered on, in ring-local radians.
func (s Segment) Center() float64 {
	switch s {
	case SegmentTop:
		return math.Pi / 2
	case SegmentLeft:
		return math.Pi
	case SegmentBottom:
		return 3 * math.Pi / 2
	default:
		return 0
	}
}

// SegmentAt buckets a ring-local angle into its segment.
// Boundaries sit at 45°, 135°, 225° and 315°.
func SegmentAt(local float64) Segment {
	a := core.NormalizeAngle(local)
	switch {
	case a >= math.Pi/4 && a < 3*math.Pi/4:
		return SegmentTop
	case a >= 3*math.Pi/4 && a < 5*math.Pi/4:
		return SegmentLeft
	case a >= 5*math.Pi/4 && a < 7*math.Pi/4:
		return SegmentBottom
	default:
		return SegmentRight
	}
}

// InGap reports whether a ring-local angle falls in the unpainted gap
// between segments. Gaps are cosmetic; collision ignores them.
func InGap(local, gap float64) bool {
	a := core.NormalizeAngle(local)
	d := math.Abs(a - SegmentAt(a).Center())
	if d > math.Pi {
		d = core.TwoPi - d
	}
	return d > math.Pi/4-gap
}

// ClassifyHit returns the segment under the point (x, y) of the ring plane.
// ok is false when the point lies in the open hub or outside the ring.
func ClassifyHit(x, y, rotation, inner, outer float64) (seg Segment, ok bool) {
	r := math.Hypot(x, y)
	if r <= inner || r >= outer {
		return 0, false
	}
	angle := core.NormalizeAngle(math.Atan2(y, x))
	return SegmentAt(angle - rotation), true
}

// Blocks reports whether a player of color c at (x, y) touches ring material
// of a different color.
func (o Obstacle) Blocks(x, y float64, c core.PaletteColor, inner, outer float64) bool {
	seg, ok := ClassifyHit(x, y, o.Rotation, inner, outer)
	if !ok {
		return false
	}
	return o.SegmentColor(seg) != c
}

// resolveCollisions scores passed rings and tests the player against the
// collision band of every ring. It stops at the first blocking ring.
func (s *Simulation) resolveCollisions() (passed int, hit bool) {
	oc := s.cfg.Obstacles
	pos := s.player.Pos

	for i := range s.obstacles.slots {
		o := &s.obstacles.slots[i]
		dz := pos.Z - o.Z

		if dz < -oc.PassMargin && !o.Passed {
			o.Passed = true
			passed++
			s.pass(o.Z)
		}

		if math.Abs(dz) < oc.BandHalfWidth && o.Blocks(pos.X, pos.Y, s.player.Color, oc.InnerRadius, oc.OuterRadius) {
			s.endRun()
			return passed, true
		}
	}
	return passed, false
}
