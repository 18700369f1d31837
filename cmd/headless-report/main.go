package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/soradsauce/ironvein/internal/game"
)

const tickDT = 1.0 / 60.0

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var cols, rows int

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&cols, "cols", 48, "grid width in tiles")
	flag.IntVar(&rows, "rows", 32, "grid height in tiles")
	flag.Parse()

	if runs <= 0 || ticks <= 0 {
		fmt.Println("error: -runs and -ticks must be > 0")
		os.Exit(1)
	}

	fmt.Printf("=== Headless World Report ===\n")
	fmt.Printf("runs=%d ticks=%d grid=%dx%d seed_base=%d seed_step=%d\n\n",
		runs, ticks, cols, rows, seedBase, seedStep)

	var totalBroken, totalShots int
	var totalDist float64

	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		report, dist, err := runOnce(seed, ticks, cols, rows)
		if err != nil {
			fmt.Printf("run %d (seed=%d): %v\n", i+1, seed, err)
			os.Exit(1)
		}

		fmt.Printf("--- run %d ---\n%sdistance=%.0fpx\n\n", i+1, report.Format(), dist)
		totalBroken += report.TilesBroken
		totalShots += report.ShotsFired
		totalDist += dist
	}

	fmt.Printf("=== aggregate ===\n")
	fmt.Printf("avg_shots=%.1f avg_broken=%.1f avg_distance=%.0fpx\n",
		float64(totalShots)/float64(runs),
		float64(totalBroken)/float64(runs),
		totalDist/float64(runs))
}

// runOnce drives a single deterministic run: the player random-walks,
// re-rolling its direction every couple of seconds, and fires along its
// travel direction a few times a second.
func runOnce(seed int64, ticks, cols, rows int) (game.RunReport, float64, error) {
	ts, err := game.NewTestSim(
		game.WithSeed(seed),
		game.WithGridSize(cols, rows),
		game.WithPlayer(18, game.DefaultActorConfig()),
	)
	if err != nil {
		return game.RunReport{}, 0, err
	}

	rng := ts.Rand()
	var dist float64
	var moveDir game.Vec2
	last := ts.Player.Pos()

	for t := 0; t < ticks; t++ {
		if t%120 == 0 {
			angle := rng.Float64() * 2 * math.Pi
			moveDir = game.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		}
		if t%20 == 10 {
			ts.Fire(moveDir, 520, 4, 40)
		}

		ts.Step(tickDT, moveDir, game.Vec2{})

		p := ts.Player.Pos()
		dist += p.Sub(last).Len()
		last = p
	}

	return game.ReportOf(ts), dist, nil
}
