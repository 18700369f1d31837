package game

// Projectile is a ballistic body with a small square footprint.
// Position is the footprint's top-left corner. Once alive goes false
// the body is inert and its owner may reclaim it.
type Projectile struct {
	pos    Vec2
	vel    Vec2
	size   float64
	damage int
	alive  bool
}

// NewProjectile creates a live projectile.
func NewProjectile(pos, vel Vec2, size float64, damage int) *Projectile {
	return &Projectile{
		pos:    pos,
		vel:    vel,
		size:   size,
		damage: damage,
		alive:  true,
	}
}

func (p *Projectile) Pos() Vec2     { return p.pos }
func (p *Projectile) Size() float64 { return p.size }
func (p *Projectile) Damage() int   { return p.damage }
func (p *Projectile) Alive() bool   { return p.alive }

// Destroy marks the projectile inert without applying damage.
func (p *Projectile) Destroy() {
	p.alive = false
}

// Update advances the projectile one tick. On impact the struck tile
// takes the projectile's damage and the body is consumed where it is;
// the position is not committed into the tile. Leaving the grid
// entirely also kills it, with no damage.
//
// Collision is single-step: a displacement larger than one tile can
// tunnel through a one-tile-thin wall. Known boundary case.
func (p *Projectile) Update(dt float64, w *World) {
	if !p.alive {
		return
	}

	next := p.pos.Add(p.vel.Scale(dt))

	if hit, ok := w.TileAtRect(next.X, next.Y, p.size); ok {
		w.DamageTile(hit.Col, hit.Row, p.damage)
		p.alive = false
		return
	}

	if next.X+p.size <= 0 || next.X >= w.PixelWidth() ||
		next.Y+p.size <= 0 || next.Y >= w.PixelHeight() {
		p.alive = false
		return
	}

	p.pos = next
}
