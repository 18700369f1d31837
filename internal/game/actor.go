package game

import (
	"math"
	"math/rand"
)

// RotationStrategy resolves the ambiguous 180-degree turn, where the
// shortest rotation direction is undefined.
type RotationStrategy int

const (
	RotateClockwise        RotationStrategy = iota // always +pi
	RotateCounterclockwise                         // always -pi
	RotateAuto                                     // per-occurrence coin flip
)

// ActorConfig holds the kinematic constants for one actor.
type ActorConfig struct {
	MaxSpeed        float64 // px/s
	Accel           float64 // px/s^2 toward the target velocity
	Decel           float64 // px/s^2 toward rest
	NonlinearFactor float64 // curvature of the accel/decel easing
	RotationSpeed   float64 // rad/s
	Rotation        RotationStrategy
}

// DefaultActorConfig returns the baseline player tuning.
func DefaultActorConfig() ActorConfig {
	return ActorConfig{
		MaxSpeed:        180,
		Accel:           900,
		Decel:           1200,
		NonlinearFactor: 0.3,
		RotationSpeed:   10,
		Rotation:        RotateAuto,
	}
}

const (
	// Below this speed an actor decelerating to rest snaps to a full
	// stop instead of creeping asymptotically.
	stopSnapSpeed = 1.0

	// Per-axis velocities below this are treated as already stationary
	// during collision resolution.
	axisMotionEps = 0.01

	// Thresholds for choosing the heading target: the look direction
	// wins when present, then the velocity, else the heading holds.
	lookDirEps    = 0.1
	velHeadingEps = 0.01

	// Angular distance from pi within which a turn counts as a full
	// reversal and the rotation strategy decides the direction.
	reversalEps = 1e-4

	// Input-direction history tuning.
	dirHistoryCap   = 8
	dirHistoryDecay = 0.6
)

// Actor is a kinematic body with a square footprint. Position is the
// footprint's top-left corner.
type Actor struct {
	pos     Vec2
	size    float64
	vel     Vec2
	heading float64 // radians, in (-pi, pi]
	cfg     ActorConfig
	rng     *rand.Rand

	// Recent non-zero movement inputs, newest last. Weighted with
	// exponential decay by SmoothedInputDir.
	dirHistory []Vec2
}

// NewActor creates an actor at (x, y). The rng feeds the RotateAuto
// coin flip; pass a seeded source for reproducible runs.
func NewActor(x, y, size float64, cfg ActorConfig, rng *rand.Rand) *Actor {
	return &Actor{
		pos:        Vec2{X: x, Y: y},
		size:       size,
		cfg:        cfg,
		rng:        rng,
		dirHistory: make([]Vec2, 0, dirHistoryCap),
	}
}

func (a *Actor) Pos() Vec2           { return a.pos }
func (a *Actor) Velocity() Vec2      { return a.vel }
func (a *Actor) Heading() float64    { return a.heading }
func (a *Actor) Size() float64       { return a.size }
func (a *Actor) Config() ActorConfig { return a.cfg }

// Center returns the middle of the actor's footprint.
func (a *Actor) Center() Vec2 {
	return Vec2{X: a.pos.X + a.size/2, Y: a.pos.Y + a.size/2}
}

// Moving reports whether the actor has any speed. Animation labels
// (idle/moving) derive from this plus the owner's firing flag; no
// separate state machine exists.
func (a *Actor) Moving() bool {
	return a.vel.Len() > 0
}

// SetPos teleports the actor, leaving velocity untouched.
func (a *Actor) SetPos(p Vec2) {
	a.pos = p
}

// Update advances the actor by one tick. moveDir and lookDir are
// normalised (or zero) intent vectors from the input layer; the world
// reference is only held for the duration of this call.
func (a *Actor) Update(dt float64, moveDir, lookDir Vec2, w *World) {
	a.clampToWorld(w)
	a.recordInput(moveDir)
	a.updateVelocity(dt, moveDir, w)
	a.updateHeading(dt, lookDir)
	a.resolveMove(dt, w)
}

// clampToWorld keeps the footprint inside the grid's pixel bounds.
// Defensive, independent of tile collision.
func (a *Actor) clampToWorld(w *World) {
	maxX := w.PixelWidth() - a.size
	maxY := w.PixelHeight() - a.size
	a.pos.X = math.Min(math.Max(a.pos.X, 0), maxX)
	a.pos.Y = math.Min(math.Max(a.pos.Y, 0), maxY)
}

// updateVelocity eases the velocity toward moveDir * maxSpeed, scaled
// by the terrain under the actor. The sqrt term makes acceleration
// ease in from rest and deceleration ease out toward rest.
func (a *Actor) updateVelocity(dt float64, moveDir Vec2, w *World) {
	factor := w.SpeedFactorAt(a.pos.X, a.pos.Y)
	target := moveDir.Scale(a.cfg.MaxSpeed * factor)

	diff := target.Sub(a.vel)
	if diff.Len() == 0 {
		return
	}

	hasInput := !moveDir.IsZero()
	rate := a.cfg.Decel
	if hasInput {
		rate = a.cfg.Accel
	}

	targetSpeed := target.Len()
	speedRatio := 0.0
	if targetSpeed > 0 {
		speedRatio = a.vel.Len() / targetSpeed
	}

	var maxDelta float64
	if hasInput {
		maxDelta = rate * dt * math.Sqrt(speedRatio+a.cfg.NonlinearFactor)
	} else {
		maxDelta = rate * dt * math.Sqrt(math.Max(1-speedRatio, 0)+a.cfg.NonlinearFactor)
	}

	a.vel = a.vel.Add(diff.ClampLen(maxDelta))

	// Kill asymptotic creep once the decel target is rest.
	if targetSpeed == 0 && a.vel.Len() < stopSnapSpeed {
		a.vel = Vec2{}
	}
}

// updateHeading eases the heading toward the look direction, falling
// back to the velocity direction, clamped to the turn rate. An exact
// reversal is ambiguous; the rotation strategy breaks the tie.
func (a *Actor) updateHeading(dt float64, lookDir Vec2) {
	var target float64
	switch {
	case lookDir.Len() > lookDirEps:
		target = lookDir.Angle()
	case a.vel.Len() > velHeadingEps:
		target = a.vel.Angle()
	default:
		return // nothing to face this tick
	}

	diff := normalizeAngle(target - a.heading)
	if math.Abs(math.Abs(diff)-math.Pi) < reversalEps {
		switch a.cfg.Rotation {
		case RotateClockwise:
			diff = math.Pi
		case RotateCounterclockwise:
			diff = -math.Pi
		case RotateAuto:
			if a.rng.Intn(2) == 0 {
				diff = math.Pi
			} else {
				diff = -math.Pi
			}
		}
	}

	step := a.cfg.RotationSpeed * dt
	if diff > step {
		diff = step
	} else if diff < -step {
		diff = -step
	}
	a.heading = normalizeAngle(a.heading + diff)
}

// resolveMove commits the tick's displacement one axis at a time, so a
// diagonal push into a wall keeps sliding along the open axis. A
// blocked axis zeroes that velocity component.
func (a *Actor) resolveMove(dt float64, w *World) {
	newX := a.pos.X + a.vel.X*dt
	newY := a.pos.Y + a.vel.Y*dt

	if math.Abs(a.vel.X) > axisMotionEps {
		if !w.IsCollidingRect(newX, a.pos.Y, a.size, a.size) {
			a.pos.X = newX
		} else {
			a.vel.X = 0
		}
	}
	if math.Abs(a.vel.Y) > axisMotionEps {
		if !w.IsCollidingRect(a.pos.X, newY, a.size, a.size) {
			a.pos.Y = newY
		} else {
			a.vel.Y = 0
		}
	}
}

// recordInput appends a non-zero movement direction to the bounded
// history buffer, dropping the oldest entry when full.
func (a *Actor) recordInput(moveDir Vec2) {
	if moveDir.IsZero() {
		return
	}
	if len(a.dirHistory) == dirHistoryCap {
		copy(a.dirHistory, a.dirHistory[1:])
		a.dirHistory = a.dirHistory[:dirHistoryCap-1]
	}
	a.dirHistory = append(a.dirHistory, moveDir)
}

// SmoothedInputDir returns the exponentially weighted average of the
// recent movement inputs (newest weighted 1, each older entry decayed).
// Falls back to the current heading when no input has been recorded.
func (a *Actor) SmoothedInputDir() Vec2 {
	if len(a.dirHistory) == 0 {
		return Vec2{X: math.Cos(a.heading), Y: math.Sin(a.heading)}
	}
	var sum Vec2
	weight := 1.0
	for i := len(a.dirHistory) - 1; i >= 0; i-- {
		sum = sum.Add(a.dirHistory[i].Scale(weight))
		weight *= dirHistoryDecay
	}
	out := sum.Normalized()
	if out.IsZero() {
		return Vec2{X: math.Cos(a.heading), Y: math.Sin(a.heading)}
	}
	return out
}
