package game

import "math"

// highlightFlashDuration is how long a tile's damage flash lasts, in
// seconds. Damage resets the timer; the scene decays it every tick.
const highlightFlashDuration = 0.2

// World is the authoritative per-cell terrain state for one level.
// Tile state lives in three parallel row-major slices so the hot
// collision queries stay cache-friendly.
type World struct {
	Cols     int
	Rows     int
	TileSize float64 // pixels per tile edge

	types      []TerrainType
	durability []int     // 0 for non-destructible terrain
	highlight  []float64 // seconds of damage flash remaining

	defaultTerrain TerrainType
	brokenTiles    int // destructible tiles destroyed since construction
}

// NewWorld creates a world filled with the default floor terrain.
// Procedural content is stamped separately by GenerateTerrain.
func NewWorld(cols, rows int, tileSize float64) *World {
	n := cols * rows
	return &World{
		Cols:           cols,
		Rows:           rows,
		TileSize:       tileSize,
		types:          make([]TerrainType, n),
		durability:     make([]int, n),
		highlight:      make([]float64, n),
		defaultTerrain: TerrainFloor,
	}
}

// PixelWidth returns the world's width in pixels.
func (w *World) PixelWidth() float64 {
	return float64(w.Cols) * w.TileSize
}

// PixelHeight returns the world's height in pixels.
func (w *World) PixelHeight() float64 {
	return float64(w.Rows) * w.TileSize
}

// inBounds returns true if (col, row) is within the grid.
func (w *World) inBounds(col, row int) bool {
	return col >= 0 && col < w.Cols && row >= 0 && row < w.Rows
}

func (w *World) index(col, row int) int {
	return row*w.Cols + col
}

// TerrainAt returns the terrain type at (col, row), or the default
// terrain for out-of-range cells.
func (w *World) TerrainAt(col, row int) TerrainType {
	if !w.inBounds(col, row) {
		return w.defaultTerrain
	}
	return w.types[w.index(col, row)]
}

// DurabilityAt returns the remaining durability at (col, row).
func (w *World) DurabilityAt(col, row int) int {
	if !w.inBounds(col, row) {
		return 0
	}
	return w.durability[w.index(col, row)]
}

// HighlightAt returns the remaining damage-flash time at (col, row).
func (w *World) HighlightAt(col, row int) float64 {
	if !w.inBounds(col, row) {
		return 0
	}
	return w.highlight[w.index(col, row)]
}

// SetTerrain sets the terrain at (col, row), initialising durability
// from the catalog default for destructible types.
func (w *World) SetTerrain(col, row int, t TerrainType) {
	if !w.inBounds(col, row) {
		return
	}
	i := w.index(col, row)
	w.types[i] = t
	if terrainDestructible(t) {
		w.durability[i] = terrainMaxDurability(t)
	} else {
		w.durability[i] = 0
	}
}

// cellRange returns the inclusive cell range overlapped by the
// half-open pixel interval [lo, lo+span).
func (w *World) cellRange(lo, span float64) (first, last int) {
	first = int(math.Floor(lo / w.TileSize))
	last = int(math.Ceil((lo+span)/w.TileSize)) - 1
	return first, last
}

// IsWalkableArea returns true if the square footprint [x,x+size) on
// both axes lies fully on in-bounds walkable tiles.
func (w *World) IsWalkableArea(x, y, size float64) bool {
	c0, c1 := w.cellRange(x, size)
	r0, r1 := w.cellRange(y, size)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !w.inBounds(col, row) {
				return false
			}
			if !terrainWalkable(w.types[w.index(col, row)]) {
				return false
			}
		}
	}
	return true
}

// IsCollidingRect returns true if the rectangle overlaps any
// non-walkable tile or exits the grid on any side. The grid boundary
// is solid.
func (w *World) IsCollidingRect(x, y, width, height float64) bool {
	if x < 0 || y < 0 || x+width > w.PixelWidth() || y+height > w.PixelHeight() {
		return true
	}
	c0, c1 := w.cellRange(x, width)
	r0, r1 := w.cellRange(y, height)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !w.inBounds(col, row) {
				continue
			}
			if !terrainWalkable(w.types[w.index(col, row)]) {
				return true
			}
		}
	}
	return false
}

// TileHit describes a solid tile found by TileAtRect.
type TileHit struct {
	Col        int
	Row        int
	Durability int
}

// TileAtRect scans the cells overlapped by the square footprint
// [x,x+size) in row-major order and returns the first non-walkable
// tile. Out-of-range cells are skipped, not reported.
func (w *World) TileAtRect(x, y, size float64) (TileHit, bool) {
	c0, c1 := w.cellRange(x, size)
	r0, r1 := w.cellRange(y, size)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !w.inBounds(col, row) {
				continue
			}
			if !terrainWalkable(w.types[w.index(col, row)]) {
				return TileHit{Col: col, Row: row, Durability: w.durability[w.index(col, row)]}, true
			}
		}
	}
	return TileHit{}, false
}

// SpeedFactorAt returns the terrain speed factor for the tile
// containing the point (x, y). Points outside the grid are neutral
// (1.0) for this query only.
func (w *World) SpeedFactorAt(x, y float64) float64 {
	col := int(math.Floor(x / w.TileSize))
	row := int(math.Floor(y / w.TileSize))
	if !w.inBounds(col, row) {
		return 1.0
	}
	return terrainSpeedFactor(w.types[w.index(col, row)])
}

// DamageTile subtracts amount from the tile's durability and starts its
// damage flash. When durability is exhausted the terrain is replaced by
// the default floor. The transition is one-way; a broken tile never regains
// its original type. Out-of-range, non-destructible, and
// no-durability tiles are ignored.
func (w *World) DamageTile(col, row, amount int) {
	if !w.inBounds(col, row) {
		return
	}
	i := w.index(col, row)
	t := w.types[i]
	if !terrainDestructible(t) || terrainMaxDurability(t) == 0 {
		return
	}
	w.durability[i] -= amount
	w.highlight[i] = highlightFlashDuration
	if w.durability[i] <= 0 {
		w.durability[i] = 0
		w.types[i] = w.defaultTerrain
		w.brokenTiles++
	}
}

// BreakTile destroys a destructible tile outright, skipping the
// gradual durability step. Used for externally triggered destruction.
func (w *World) BreakTile(col, row int) {
	if !w.inBounds(col, row) {
		return
	}
	i := w.index(col, row)
	if !terrainDestructible(w.types[i]) {
		return
	}
	w.durability[i] = 0
	w.types[i] = w.defaultTerrain
	w.highlight[i] = highlightFlashDuration
	w.brokenTiles++
}

// BrokenTiles returns how many destructible tiles have been destroyed.
func (w *World) BrokenTiles() int {
	return w.brokenTiles
}

// DecayHighlights advances every tile's damage-flash timer toward zero.
func (w *World) DecayHighlights(dt float64) {
	for i := range w.highlight {
		if w.highlight[i] <= 0 {
			continue
		}
		w.highlight[i] -= dt
		if w.highlight[i] < 0 {
			w.highlight[i] = 0
		}
	}
}
