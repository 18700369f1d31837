package game

import (
	"fmt"
	"math/rand"
)

// maxSpawnAttempts bounds the random placement search. Exhausting it is
// a configuration error for that spawn request, not something to retry.
const maxSpawnAttempts = 1000

// Region is a pixel-space sub-rectangle of the world.
type Region struct {
	X float64
	Y float64
	W float64
	H float64
}

// FindWalkablePosition samples random footprint positions until one
// lands fully on walkable tiles. region limits the search; nil searches
// the whole grid. The returned position is the footprint's top-left
// corner. Fails with an error once the attempt budget is spent.
func (w *World) FindWalkablePosition(rng *rand.Rand, region *Region, size float64) (Vec2, error) {
	r := Region{X: 0, Y: 0, W: w.PixelWidth(), H: w.PixelHeight()}
	if region != nil {
		r = *region
	}

	spanX := r.W - size
	spanY := r.H - size
	if spanX < 0 {
		spanX = 0
	}
	if spanY < 0 {
		spanY = 0
	}

	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		p := Vec2{
			X: r.X + rng.Float64()*spanX,
			Y: r.Y + rng.Float64()*spanY,
		}
		if w.IsWalkableArea(p.X, p.Y, size) {
			return p, nil
		}
	}
	return Vec2{}, fmt.Errorf("no walkable position for size %.1f after %d attempts", size, maxSpawnAttempts)
}
