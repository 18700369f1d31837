package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// inputState is one tick's resolved intent, handed to the kinematics
// pre-normalised.
type inputState struct {
	moveDir    Vec2 // unit vector or zero
	lookDir    Vec2 // unit vector toward the cursor, or zero
	fire       bool
	copyReport bool
}

// readInput polls the keyboard and mouse into an inputState.
func (g *Game) readInput() inputState {
	var in inputState

	var move Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X += 1
	}
	in.moveDir = move.Normalized()

	// Aim at the cursor while the right button or left button is held;
	// otherwise the actor faces its travel direction.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		c := g.player.Center()
		in.lookDir = Vec2{X: float64(mx) - c.X, Y: float64(my) - c.Y}.Normalized()
	}

	in.fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsKeyPressed(ebiten.KeySpace)

	in.copyReport = g.keyJustPressed(ebiten.KeyC)

	return in
}

// keyJustPressed is an edge detector over the previous frame's key state.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}
