package game

import (
	"fmt"
	"math/rand"

	"github.com/soradsauce/ironvein/internal/config"
)

// GenEntry is one terrain candidate for procedural generation.
// BaseProb values are relative weights; the generator normalises them
// when it builds the cumulative threshold table, so the list does not
// need to sum to 1. InheritProb is the chance that a neighbouring tile
// of this terrain propagates its type onto the cell being generated.
type GenEntry struct {
	Type          TerrainType
	BaseProb      float64
	InheritProb   float64
	MaxDurability int // 0 = use the catalog default
}

// DefaultGenEntries is the baseline cavern mix: mostly open floor with
// clustered rock walls and mineable vein pockets.
func DefaultGenEntries() []GenEntry {
	return []GenEntry{
		{Type: TerrainFloor, BaseProb: 0.52, InheritProb: 0.25},
		{Type: TerrainGravel, BaseProb: 0.08, InheritProb: 0.4},
		{Type: TerrainSand, BaseProb: 0.05, InheritProb: 0.4},
		{Type: TerrainWater, BaseProb: 0.03, InheritProb: 0.6},
		{Type: TerrainRock, BaseProb: 0.2, InheritProb: 0.65},
		{Type: TerrainMineral, BaseProb: 0.08, InheritProb: 0.55},
		{Type: TerrainCrystal, BaseProb: 0.04, InheritProb: 0.5},
	}
}

// GenerateTerrain fills the world with procedurally placed terrain.
// Each cell draws a weighted sample, then an inheritance pass gives the
// already-generated left/top neighbours a chance to propagate their
// type, biasing the field toward contiguous regions without a full
// noise function. All randomness comes from the caller's rng, so a
// fixed seed reproduces the same world.
func GenerateTerrain(w *World, entries []GenEntry, rng *rand.Rand) {
	if len(entries) == 0 {
		return
	}

	// Cumulative threshold table, normalised in list order.
	var total float64
	for _, e := range entries {
		total += e.BaseProb
	}
	thresholds := make([]float64, len(entries))
	var cum float64
	for i, e := range entries {
		cum += e.BaseProb / total
		thresholds[i] = cum
	}

	// Per-type generation parameters for the inheritance pass.
	byType := make(map[TerrainType]GenEntry, len(entries))
	for _, e := range entries {
		byType[e.Type] = e
	}

	for row := 0; row < w.Rows; row++ {
		for col := 0; col < w.Cols; col++ {
			s := rng.Float64()
			if s >= 0.9999 {
				s = 0.9999 // guarantee the last threshold matches
			}

			// First entry whose cumulative threshold exceeds the sample.
			chosen := entries[0].Type
			for i, th := range thresholds {
				if s < th {
					chosen = entries[i].Type
					break
				}
			}

			// Inheritance pass: the left and top neighbours already
			// exist; pick one at random and roll its terrain's
			// inherit probability.
			var neighbours []TerrainType
			if col > 0 {
				neighbours = append(neighbours, w.types[w.index(col-1, row)])
			}
			if row > 0 {
				neighbours = append(neighbours, w.types[w.index(col, row-1)])
			}
			if len(neighbours) > 0 {
				n := neighbours[rng.Intn(len(neighbours))]
				if e, ok := byType[n]; ok && rng.Float64() < e.InheritProb {
					chosen = n
				}
			}

			i := w.index(col, row)
			w.types[i] = chosen
			w.durability[i] = genDurability(byType, chosen)
		}
	}
}

// genDurability returns the starting durability for a generated tile:
// the entry's override if set, else the catalog default.
func genDurability(byType map[TerrainType]GenEntry, t TerrainType) int {
	if !terrainDestructible(t) {
		return 0
	}
	if e, ok := byType[t]; ok && e.MaxDurability > 0 {
		return e.MaxDurability
	}
	return terrainMaxDurability(t)
}

// GenEntriesFromConfig converts config terrain entries to generation
// entries, resolving terrain names against the catalog.
func GenEntriesFromConfig(cfg *config.WorldConfig) ([]GenEntry, error) {
	entries := make([]GenEntry, 0, len(cfg.Terrains))
	for _, t := range cfg.Terrains {
		tt, ok := TerrainByName(t.Terrain)
		if !ok {
			return nil, fmt.Errorf("unknown terrain %q in world config", t.Terrain)
		}
		entries = append(entries, GenEntry{
			Type:          tt,
			BaseProb:      t.BaseProbability,
			InheritProb:   t.InheritProbability,
			MaxDurability: t.MaxDurability,
		})
	}
	return entries, nil
}

// NewGeneratedWorld is a convenience constructor: build and populate in
// one call.
func NewGeneratedWorld(cols, rows int, tileSize float64, entries []GenEntry, rng *rand.Rand) *World {
	w := NewWorld(cols, rows, tileSize)
	GenerateTerrain(w, entries, rng)
	return w
}
