package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// TerrainCensus counts tiles per terrain type.
type TerrainCensus [terrainTypeCount]int

// CensusOf tallies the world's current terrain distribution.
func CensusOf(w *World) TerrainCensus {
	var c TerrainCensus
	for row := 0; row < w.Rows; row++ {
		for col := 0; col < w.Cols; col++ {
			c[w.TerrainAt(col, row)]++
		}
	}
	return c
}

// Total returns the number of counted tiles.
func (c TerrainCensus) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// RunReport summarises one simulation run for the debug overlay and the
// headless-report tool.
type RunReport struct {
	Seed        int64
	Ticks       int
	Census      TerrainCensus
	ShotsFired  int
	TilesBroken int
	PlayerPos   Vec2
	PlayerSpeed float64
}

// ReportOf snapshots a harness run.
func ReportOf(ts *TestSim) RunReport {
	r := RunReport{
		Seed:        ts.seed,
		Ticks:       ts.Tick,
		Census:      CensusOf(ts.World),
		ShotsFired:  ts.ShotsFired,
		TilesBroken: ts.World.BrokenTiles(),
	}
	if ts.Player != nil {
		r.PlayerPos = ts.Player.Pos()
		r.PlayerSpeed = ts.Player.Velocity().Len()
	}
	return r
}

// Format renders the report as plain text.
func (r RunReport) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Ironvein world report ---\n")
	fmt.Fprintf(&b, "seed=%d ticks=%d shots=%d tiles_broken=%d\n",
		r.Seed, r.Ticks, r.ShotsFired, r.TilesBroken)
	fmt.Fprintf(&b, "player pos=(%.1f,%.1f) speed=%.1f\n", r.PlayerPos.X, r.PlayerPos.Y, r.PlayerSpeed)

	total := r.Census.Total()
	if total > 0 {
		b.WriteString("terrain:")
		for t := TerrainType(0); t < terrainTypeCount; t++ {
			n := r.Census[t]
			if n == 0 {
				continue
			}
			fmt.Fprintf(&b, " %s=%d (%.1f%%)", t, n, 100*float64(n)/float64(total))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// CopyToClipboard puts the formatted report on the system clipboard.
func (r RunReport) CopyToClipboard() error {
	return clipboard.WriteAll(r.Format())
}
