package game

import (
	"math"
	"testing"
)

func TestHeadingTo(t *testing.T) {
	if h := HeadingTo(0, 0, 1, 0); math.Abs(h) > 1e-9 {
		t.Fatalf("east heading=%f, want 0", h)
	}
	if h := HeadingTo(0, 0, 0, 1); math.Abs(h-math.Pi/2) > 1e-9 {
		t.Fatalf("south heading=%f, want pi/2", h)
	}
	if h := HeadingTo(0, 0, -1, 0); math.Abs(h-math.Pi) > 1e-9 {
		t.Fatalf("west heading=%f, want pi", h)
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi}, // range is half-open: (-pi, pi]
		{3 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, -math.Pi / 2},
	}
	for _, c := range cases {
		if got := normalizeAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("normalizeAngle(%f)=%f, want %f", c.in, got, c.want)
		}
	}
}

func TestVec2_Helpers(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if l := v.Len(); l != 5 {
		t.Fatalf("len=%f, want 5", l)
	}
	if n := v.Normalized(); math.Abs(n.Len()-1) > 1e-9 {
		t.Fatalf("normalized len=%f, want 1", n.Len())
	}
	if c := v.ClampLen(2.5); math.Abs(c.Len()-2.5) > 1e-9 {
		t.Fatalf("clamped len=%f, want 2.5", c.Len())
	}
	if c := v.ClampLen(10); c != v {
		t.Fatalf("clamp above length changed the vector: %+v", c)
	}
	if !(Vec2{}).IsZero() || v.IsZero() {
		t.Fatal("IsZero misreported")
	}
}
