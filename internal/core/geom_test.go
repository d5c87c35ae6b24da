package core

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"zero", 0, 0},
		{"quarter turn", math.Pi / 2, math.Pi / 2},
		{"negative quarter", -math.Pi / 2, 3 * math.Pi / 2},
		{"full turn wraps", TwoPi, 0},
		{"two and a half turns", 5 * math.Pi, math.Pi},
		{"negative full turn", -TwoPi, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := NormalizeAngle(tc.in)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("NormalizeAngle(%f) = %f, expected %f", tc.in, result, tc.expected)
			}
			if result < 0 || result >= TwoPi {
				t.Errorf("NormalizeAngle(%f) = %f, outside [0, 2π)", tc.in, result)
			}
		})
	}
}

func TestNormalizeAngleTinyNegative(t *testing.T) {
	result := NormalizeAngle(-1e-18)
	if result < 0 || result >= TwoPi {
		t.Errorf("NormalizeAngle(-1e-18) = %v, outside [0, 2π)", result)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, -10, 20)

	half := a.Lerp(b, 0.5)
	if half != V3(5, -5, 10) {
		t.Errorf("Lerp(0.5) = %+v, expected {5 -5 10}", half)
	}

	if a.Lerp(b, 0) != a {
		t.Error("Lerp(0) should return the start vector")
	}
	if a.Lerp(b, 1) != b {
		t.Error("Lerp(1) should return the target vector")
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	if a.Add(b) != V3(5, 7, 9) {
		t.Errorf("Add = %+v", a.Add(b))
	}
	if b.Sub(a) != V3(3, 3, 3) {
		t.Errorf("Sub = %+v", b.Sub(a))
	}
	if a.Scale(2) != V3(2, 4, 6) {
		t.Errorf("Scale = %+v", a.Scale(2))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	if Cyan.Hex() != "#00FFFF" {
		t.Errorf("Cyan.Hex() = %q", Cyan.Hex())
	}
	if Lime.Next() != Cyan {
		t.Errorf("Lime.Next() = %v, expected wrap to Cyan", Lime.Next())
	}
	if PaletteColor(7).Valid() {
		t.Error("index 7 should not be a valid palette color")
	}
	if PaletteColor(-1).Hex() != ColorDefault {
		t.Error("invalid palette color should map to default color")
	}
	if Magenta.String() != "Magenta" {
		t.Errorf("Magenta.String() = %q", Magenta.String())
	}
}

func TestActionPaletteColor(t *testing.T) {
	c, ok := ActionColor3.PaletteColor()
	if !ok || c != Yellow {
		t.Errorf("ActionColor3.PaletteColor() = (%v, %v), expected (Yellow, true)", c, ok)
	}
	if _, ok := ActionJump.PaletteColor(); ok {
		t.Error("ActionJump should not map to a palette color")
	}
}
