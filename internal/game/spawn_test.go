package game

import (
	"math"
	"math/rand"
	"testing"
)

// ringWorld is a 3x3 grid that is solid rock except the centre cell.
func ringWorld() *World {
	w := NewWorld(3, 3, 24)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if col != 1 || row != 1 {
				w.SetTerrain(col, row, TerrainRock)
			}
		}
	}
	return w
}

func TestFindWalkablePosition_OnlyCentreFits(t *testing.T) {
	w := ringWorld()
	rng := rand.New(rand.NewSource(21))

	pos, err := w.FindWalkablePosition(rng, nil, 12)
	if err != nil {
		t.Fatalf("small footprint should find the centre cell: %v", err)
	}
	// The footprint must lie entirely inside the centre cell [24,48).
	if pos.X < 24 || pos.X+12 > 48 || pos.Y < 24 || pos.Y+12 > 48 {
		t.Fatalf("position %+v not inside the centre cell", pos)
	}
	if !w.IsWalkableArea(pos.X, pos.Y, 12) {
		t.Fatal("returned position is not walkable")
	}
}

func TestFindWalkablePosition_SizeCannotFit(t *testing.T) {
	w := ringWorld()
	rng := rand.New(rand.NewSource(21))

	// A footprint wider than the centre cell always overlaps rock.
	if _, err := w.FindWalkablePosition(rng, nil, 30); err == nil {
		t.Fatal("oversized footprint must exhaust the attempt budget and fail")
	}
}

func TestFindWalkablePosition_FullySolidFailsFast(t *testing.T) {
	w := NewWorld(4, 4, 24)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			w.SetTerrain(col, row, TerrainRock)
		}
	}
	if _, err := w.FindWalkablePosition(rand.New(rand.NewSource(1)), nil, 10); err == nil {
		t.Fatal("fully solid world must fail the spawn search")
	}
}

func TestFindWalkablePosition_Region(t *testing.T) {
	w := NewWorld(10, 10, 24)
	region := &Region{X: 48, Y: 48, W: 48, H: 48}
	rng := rand.New(rand.NewSource(9))

	for i := 0; i < 20; i++ {
		pos, err := w.FindWalkablePosition(rng, region, 10)
		if err != nil {
			t.Fatalf("open region search failed: %v", err)
		}
		if pos.X < region.X || pos.X+10 > region.X+region.W ||
			pos.Y < region.Y || pos.Y+10 > region.Y+region.H {
			t.Fatalf("position %+v escaped the region", pos)
		}
	}
}

func TestFindWalkablePosition_WholeGridStaysInBounds(t *testing.T) {
	w := NewWorld(6, 6, 24)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		pos, err := w.FindWalkablePosition(rng, nil, 18)
		if err != nil {
			t.Fatalf("open world search failed: %v", err)
		}
		if pos.X < 0 || pos.Y < 0 ||
			pos.X+18 > w.PixelWidth() || pos.Y+18 > w.PixelHeight() {
			t.Fatalf("position %+v outside the grid", pos)
		}
		if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
			t.Fatal("position is NaN")
		}
	}
}
