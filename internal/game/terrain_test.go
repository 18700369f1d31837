package game

import "testing"

func TestTerrainCatalog_Invariants(t *testing.T) {
	for tt := TerrainType(0); tt < terrainTypeCount; tt++ {
		walkable := terrainWalkable(tt)
		sf := terrainSpeedFactor(tt)

		if sf < 0 {
			t.Fatalf("%s: speed factor %f must be >= 0", tt, sf)
		}
		// Zero speed factor is reserved for impassable terrain.
		if sf == 0 && walkable {
			t.Fatalf("%s: walkable terrain must have a positive speed factor", tt)
		}
		if terrainDestructible(tt) && terrainMaxDurability(tt) <= 0 {
			t.Fatalf("%s: destructible terrain must define max durability", tt)
		}
		if !terrainDestructible(tt) && terrainMaxDurability(tt) != 0 {
			t.Fatalf("%s: non-destructible terrain must not define durability", tt)
		}
	}
}

func TestTerrainByName_RoundTrip(t *testing.T) {
	for tt := TerrainType(0); tt < terrainTypeCount; tt++ {
		got, ok := TerrainByName(tt.String())
		if !ok {
			t.Fatalf("TerrainByName(%q) not found", tt.String())
		}
		if got != tt {
			t.Fatalf("TerrainByName(%q) = %v, want %v", tt.String(), got, tt)
		}
	}
	if _, ok := TerrainByName("lava"); ok {
		t.Fatal("unknown terrain name should not resolve")
	}
}

func TestTerrainDefaults(t *testing.T) {
	if !terrainWalkable(TerrainFloor) {
		t.Fatal("default floor must be walkable")
	}
	if terrainDestructible(TerrainFloor) {
		t.Fatal("default floor must not be destructible")
	}
	if terrainWalkable(TerrainMineral) || terrainWalkable(TerrainRock) {
		t.Fatal("walls must not be walkable")
	}
}
