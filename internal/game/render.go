package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// hudHeight is the pixel strip below the world reserved for HUD text.
const hudHeight = 28

// hudFace wraps the fixed 7x13 bitmap font for HUD text.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Draw renders the world, the player, and the projectiles.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 14, A: 255})

	g.drawWorld(screen)
	g.drawProjectiles(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)
}

// drawWorld fills every tile with its catalog colour, blending toward
// white while its damage flash is active.
func (g *Game) drawWorld(screen *ebiten.Image) {
	w := g.world
	ts := float32(w.TileSize)
	for row := 0; row < w.Rows; row++ {
		for col := 0; col < w.Cols; col++ {
			t := w.TerrainAt(col, row)
			r, gr, b := terrainBaseColour(t)

			if h := w.HighlightAt(col, row); h > 0 {
				k := h / highlightFlashDuration
				r = flashBlend(r, k)
				gr = flashBlend(gr, k)
				b = flashBlend(b, k)
			}

			vector.DrawFilledRect(screen,
				float32(col)*ts, float32(row)*ts, ts, ts,
				color.RGBA{R: r, G: gr, B: b, A: 255}, false)
		}
	}
}

// flashBlend lerps a colour channel toward white by k in [0,1].
func flashBlend(c uint8, k float64) uint8 {
	return uint8(float64(c) + (255-float64(c))*k)
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	c := g.player.Center()
	radius := float32(g.player.Size() / 2)

	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), radius,
		color.RGBA{R: 210, G: 180, B: 60, A: 255}, true)

	// Heading line.
	hLen := float64(radius) * 1.8
	hx := c.X + math.Cos(g.player.Heading())*hLen
	hy := c.Y + math.Sin(g.player.Heading())*hLen
	ebitenutil.DrawLine(screen, c.X, c.Y, hx, hy,
		color.RGBA{R: 255, G: 255, B: 255, A: 180})
}

func (g *Game) drawProjectiles(screen *ebiten.Image) {
	for _, p := range g.projectiles {
		pos := p.Pos()
		half := float32(p.Size() / 2)
		vector.DrawFilledCircle(screen,
			float32(pos.X)+half, float32(pos.Y)+half, half,
			color.RGBA{R: 255, G: 230, B: 140, A: 255}, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	y := int(g.world.PixelHeight())
	vector.DrawFilledRect(screen, 0, float32(y), float32(g.world.PixelWidth()),
		hudHeight, color.RGBA{R: 20, G: 20, B: 24, A: 255}, false)

	label := "idle"
	switch {
	case g.Firing():
		label = "shooting"
	case g.player.Moving():
		label = "moving"
	}

	line := fmt.Sprintf("seed=%d  %s  speed=%.0f  shots=%d  broken=%d  [C] copy report",
		g.seed, label, g.player.Velocity().Len(), g.shots, g.world.BrokenTiles())
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(8, float64(y)+8)
	opts.ColorScale.ScaleWithColor(color.RGBA{R: 200, G: 200, B: 190, A: 255})
	text.Draw(screen, line, hudFace, opts)

	if g.notice != "" {
		ebitenutil.DebugPrintAt(screen, g.notice, 8, y-20)
	}
}
