package game

// TerrainType identifies the surface of one world tile.
type TerrainType uint8

const (
	TerrainFloor   TerrainType = iota // Default open cavern floor
	TerrainGravel                     // Loose stone, slightly slow
	TerrainSand                       // Drifted sand patches
	TerrainWater                      // Shallow flooded channel
	TerrainRubble                     // Collapsed debris, very slow
	TerrainRock                       // Solid rock wall
	TerrainMineral                    // Ore vein, mineable wall
	TerrainCrystal                    // Crystal cluster, brittle wall
	terrainTypeCount                  // sentinel
)

func (t TerrainType) String() string {
	switch t {
	case TerrainFloor:
		return "floor"
	case TerrainGravel:
		return "gravel"
	case TerrainSand:
		return "sand"
	case TerrainWater:
		return "water"
	case TerrainRubble:
		return "rubble"
	case TerrainRock:
		return "rock"
	case TerrainMineral:
		return "mineral"
	case TerrainCrystal:
		return "crystal"
	default:
		return "unknown"
	}
}

// TerrainByName resolves a config-file terrain name to its type.
func TerrainByName(name string) (TerrainType, bool) {
	for t := TerrainType(0); t < terrainTypeCount; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return TerrainFloor, false
}

// terrainWalkable returns true if a footprint may occupy the tile.
func terrainWalkable(t TerrainType) bool {
	switch t {
	case TerrainRock, TerrainMineral, TerrainCrystal:
		return false
	default:
		return true
	}
}

// terrainSpeedFactor returns the movement speed multiplier on the tile.
// Impassable terrain reports 0; passability itself is governed solely
// by terrainWalkable.
func terrainSpeedFactor(t TerrainType) float64 {
	switch t {
	case TerrainFloor:
		return 1.0
	case TerrainGravel:
		return 0.85
	case TerrainSand:
		return 0.7
	case TerrainWater:
		return 0.4
	case TerrainRubble:
		return 0.55
	case TerrainRock, TerrainMineral, TerrainCrystal:
		return 0
	default:
		return 1.0
	}
}

// terrainDestructible returns true if the tile can be damaged away.
func terrainDestructible(t TerrainType) bool {
	switch t {
	case TerrainMineral, TerrainCrystal:
		return true
	default:
		return false
	}
}

// terrainMaxDurability returns the starting hit points for destructible
// terrain. 0 means the terrain defines no durability.
func terrainMaxDurability(t TerrainType) int {
	switch t {
	case TerrainMineral:
		return 100
	case TerrainCrystal:
		return 60
	default:
		return 0
	}
}

// terrainBaseColour returns the base RGB render colour for a terrain type.
func terrainBaseColour(t TerrainType) (r, g, b uint8) {
	switch t {
	case TerrainFloor:
		return 44, 40, 36
	case TerrainGravel:
		return 58, 54, 50
	case TerrainSand:
		return 76, 68, 48
	case TerrainWater:
		return 30, 42, 64
	case TerrainRubble:
		return 52, 46, 40
	case TerrainRock:
		return 24, 22, 20
	case TerrainMineral:
		return 92, 70, 34
	case TerrainCrystal:
		return 70, 96, 110
	default:
		return 44, 40, 36
	}
}
