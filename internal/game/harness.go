package game

import (
	"fmt"
	"math/rand"
)

// TestSim is a headless simulation harness used by tests and the
// headless-report tool. It mirrors the scene's per-tick ordering but
// has no Ebiten dependency and is fully deterministic for a seed.
type TestSim struct {
	World       *World
	Player      *Actor
	Projectiles []*Projectile
	Tick        int

	rng  *rand.Rand
	seed int64

	cols     int
	rows     int
	tileSize float64
	entries  []GenEntry

	// run counters
	ShotsFired int
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // grid size, seed, generation entries
	simOptActor                      // player placement, runs after the world exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim) error
}

// WithSeed sets the RNG seed for generation, tie-breaks, and spawns.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) error {
		ts.seed = seed
		return nil
	}}
}

// WithGridSize sets the world dimensions in tiles.
func WithGridSize(cols, rows int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) error {
		ts.cols = cols
		ts.rows = rows
		return nil
	}}
}

// WithTileSize sets the tile edge length in pixels.
func WithTileSize(px float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) error {
		ts.tileSize = px
		return nil
	}}
}

// WithGenEntries replaces the terrain generation table.
func WithGenEntries(entries []GenEntry) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) error {
		ts.entries = entries
		return nil
	}}
}

// WithPlayer spawns the player actor on a random walkable tile.
func WithPlayer(size float64, cfg ActorConfig) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) error {
		p, err := ts.World.FindWalkablePosition(ts.rng, nil, size)
		if err != nil {
			return fmt.Errorf("spawn player: %w", err)
		}
		ts.Player = NewActor(p.X, p.Y, size, cfg, ts.rng)
		return nil
	}}
}

// NewTestSim builds a harness: infra options first, then the world is
// generated, then actor options run against it.
func NewTestSim(opts ...SimOption) (*TestSim, error) {
	ts := &TestSim{
		seed:     1,
		cols:     32,
		rows:     24,
		tileSize: 24,
		entries:  DefaultGenEntries(),
	}
	for _, o := range opts {
		if o.kind != simOptInfra {
			continue
		}
		if err := o.fn(ts); err != nil {
			return nil, err
		}
	}

	ts.rng = rand.New(rand.NewSource(ts.seed))
	ts.World = NewGeneratedWorld(ts.cols, ts.rows, ts.tileSize, ts.entries, ts.rng)

	for _, o := range opts {
		if o.kind != simOptActor {
			continue
		}
		if err := o.fn(ts); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

// Rand exposes the harness RNG so callers share the deterministic stream.
func (ts *TestSim) Rand() *rand.Rand {
	return ts.rng
}

// Fire launches a projectile from the player's centre along dir.
func (ts *TestSim) Fire(dir Vec2, speed, size float64, damage int) *Projectile {
	c := ts.Player.Center()
	p := NewProjectile(
		Vec2{X: c.X - size/2, Y: c.Y - size/2},
		dir.Normalized().Scale(speed),
		size, damage,
	)
	ts.Projectiles = append(ts.Projectiles, p)
	ts.ShotsFired++
	return p
}

// Step advances one tick in the scene's order: actor kinematics, then
// projectiles (which may mutate tile durability), then highlight decay.
// Dead projectiles are pruned at the end of the tick.
func (ts *TestSim) Step(dt float64, moveDir, lookDir Vec2) {
	if ts.Player != nil {
		ts.Player.Update(dt, moveDir, lookDir, ts.World)
	}

	live := ts.Projectiles[:0]
	for _, p := range ts.Projectiles {
		p.Update(dt, ts.World)
		if p.Alive() {
			live = append(live, p)
		}
	}
	ts.Projectiles = live

	ts.World.DecayHighlights(dt)
	ts.Tick++
}

// Run steps the sim for n ticks with constant input.
func (ts *TestSim) Run(n int, dt float64, moveDir, lookDir Vec2) {
	for i := 0; i < n; i++ {
		ts.Step(dt, moveDir, lookDir)
	}
}
