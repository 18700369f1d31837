package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/soradsauce/ironvein/internal/config"
)

const (
	// Fixed simulation step. Ebiten calls Update at 60 TPS.
	tickDT = 1.0 / 60.0

	playerSize = 18.0

	projectileSpeed  = 520.0
	projectileSize   = 4.0
	projectileDamage = 40
	fireCooldown     = 0.18 // seconds between shots
)

// Game is the playable scene: one world, the player, and the live
// projectiles. The scene owns the World exclusively; actors and
// projectiles only see it for the duration of their update calls.
type Game struct {
	world       *World
	player      *Actor
	projectiles []*Projectile

	seed int64
	tick int

	cooldown float64
	firing   bool
	shots    int

	prevKeys map[ebiten.Key]bool
	notice   string  // transient HUD message
	noticeT  float64 // seconds remaining
}

// New creates a scene from the built-in default world config, seeded
// from the clock.
func New() (*Game, error) {
	return NewWithConfig(config.Default(), time.Now().UnixNano())
}

// NewWithConfig creates a scene from a validated world config.
func NewWithConfig(cfg *config.WorldConfig, seed int64) (*Game, error) {
	entries, err := GenEntriesFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	world := NewGeneratedWorld(cfg.Width, cfg.Height, cfg.TileSize, entries, rng)

	pos, err := world.FindWalkablePosition(rng, nil, playerSize)
	if err != nil {
		return nil, err
	}

	return &Game{
		world:    world,
		player:   NewActor(pos.X, pos.Y, playerSize, DefaultActorConfig(), rng),
		seed:     seed,
		prevKeys: map[ebiten.Key]bool{},
	}, nil
}

// Update runs one simulation tick in strict order: input resolution,
// actor kinematics, projectile updates (which may mutate tile
// durability), highlight decay.
func (g *Game) Update() error {
	in := g.readInput()

	g.player.Update(tickDT, in.moveDir, in.lookDir, g.world)

	g.firing = false
	g.cooldown -= tickDT
	if in.fire && g.cooldown <= 0 {
		g.fire(in)
		g.cooldown = fireCooldown
	}

	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Update(tickDT, g.world)
		if p.Alive() {
			live = append(live, p)
		}
	}
	g.projectiles = live

	g.world.DecayHighlights(tickDT)

	if in.copyReport {
		g.copyReport()
	}
	if g.noticeT > 0 {
		g.noticeT -= tickDT
		if g.noticeT <= 0 {
			g.notice = ""
		}
	}

	g.tick++
	return nil
}

// fire launches a projectile from the player's centre. Mouse aim wins;
// keyboard fire falls back to the smoothed movement direction.
func (g *Game) fire(in inputState) {
	dir := in.lookDir
	if dir.IsZero() {
		dir = g.player.SmoothedInputDir()
	}
	c := g.player.Center()
	g.projectiles = append(g.projectiles, NewProjectile(
		Vec2{X: c.X - projectileSize/2, Y: c.Y - projectileSize/2},
		dir.Normalized().Scale(projectileSpeed),
		projectileSize,
		projectileDamage,
	))
	g.firing = true
	g.shots++
}

// Firing reports whether the player fired this tick. Combined with
// Actor.Moving it yields the cosmetic idle/moving/shooting label.
func (g *Game) Firing() bool {
	return g.firing
}

func (g *Game) copyReport() {
	r := RunReport{
		Seed:        g.seed,
		Ticks:       g.tick,
		Census:      CensusOf(g.world),
		ShotsFired:  g.shots,
		TilesBroken: g.world.BrokenTiles(),
		PlayerPos:   g.player.Pos(),
		PlayerSpeed: g.player.Velocity().Len(),
	}
	if err := r.CopyToClipboard(); err != nil {
		g.showNotice("report copy failed: " + err.Error())
		return
	}
	g.showNotice("world report copied to clipboard")
}

func (g *Game) showNotice(msg string) {
	g.notice = msg
	g.noticeT = 2.0
}

// Layout reports the fixed render size: the world plus the HUD strip.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.world.PixelWidth()), int(g.world.PixelHeight()) + hudHeight
}
