package game

import (
	"image"
	"image/color"

	"chosenoffset.com/tileindicators/internal/core/geom"
	"chosenoffset.com/tileindicators/internal/render"
)

var (
	backgroundColor = color.NRGBA{R: 20, G: 20, B: 30, A: 255}
	playerColor     = color.NRGBA{R: 230, G: 200, B: 60, A: 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	now := g.lastUpdate
	if now.IsZero() {
		now = g.Now()
	}

	screen.Fill(backgroundColor)
	g.World.DrawFloor(screen)
	g.drawPlayer(screen)
	g.Overlay.Draw(screen, now)
	g.drawUI(screen)
}

// drawPlayer fills the middle of the player's tile.
func (g *Game) drawPlayer(screen render.Surface) {
	poly, ok := g.World.TilePolygon(g.World.PlayerPosition())
	if !ok {
		return
	}
	screen.FillPolygon(shrink(poly, 2), playerColor)
}

func (g *Game) drawUI(screen render.Image) {
	if g.Renderer == nil {
		return
	}
	x, y := g.TextMargin, g.TextMargin
	for _, line := range g.hud() {
		g.Renderer.DrawText(screen, line, x, y)
		y += g.LineHeight
	}
	y += g.LineHeight
	for _, msg := range g.Messages {
		g.Renderer.DrawText(screen, msg.Text, x, y)
		y += g.LineHeight
	}
}

// shrink moves every vertex of poly toward its bounds' center by 1/divisor.
func shrink(poly geom.Polygon, divisor int) geom.Polygon {
	b := poly.Bounds()
	center := image.Pt((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)
	out := make(geom.Polygon, len(poly))
	for i, pt := range poly {
		out[i] = geom.Toward(pt, center, divisor)
	}
	return out
}

func rect(width, height int) image.Rectangle {
	return image.Rect(0, 0, width, height)
}
