// Package terminal implements the render interfaces on a tcell screen. One
// cell is one coordinate unit, so tile polygons must be projected in cells.
package terminal

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/tileindicators/internal/core/geom"
	"chosenoffset.com/tileindicators/internal/render"
)

// lineRune is drawn on every cell a line passes through.
const lineRune = '█'

// Image draws onto a tcell screen. Translucent colors are blended over the
// cell's current background.
type Image struct {
	screen tcell.Screen
}

// NewImage wraps screen.
func NewImage(screen tcell.Screen) *Image {
	return &Image{screen: screen}
}

// Bounds returns the screen size in cells.
func (i *Image) Bounds() image.Rectangle {
	w, h := i.screen.Size()
	return image.Rect(0, 0, w, h)
}

// Size returns the width and height in cells.
func (i *Image) Size() (width, height int) {
	return i.screen.Size()
}

// Fill sets every cell to a blank with the given background.
func (i *Image) Fill(clr color.Color) {
	style := tcell.StyleDefault.Background(toTcell(clr))
	w, h := i.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Clear resets every cell.
func (i *Image) Clear() {
	i.screen.Clear()
}

// StrokeLine rasterizes a line with Bresenham's algorithm. The width is
// ignored since a cell is the smallest unit.
func (i *Image) StrokeLine(from, to image.Point, _ float32, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	if c.A == 0 {
		return
	}

	dx, dy := abs(to.X-from.X), -abs(to.Y-from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}

	x, y := from.X, from.Y
	e := dx + dy
	for {
		i.plot(x, y, c)
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// FillPolygon tints the background of every cell whose center lies inside
// the polygon.
func (i *Image) FillPolygon(points []image.Point, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	if c.A == 0 || len(points) < 3 {
		return
	}

	poly := geom.Polygon(points)
	r := poly.Bounds().Intersect(i.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !poly.Contains(float64(x)+0.5, float64(y)+0.5) {
				continue
			}
			mainc, combc, style, _ := i.screen.GetContent(x, y)
			fg, bg, attr := style.Decompose()
			style = tcell.StyleDefault.Foreground(fg).Background(blend(bg, c)).Attributes(attr)
			i.screen.SetContent(x, y, mainc, combc, style)
		}
	}
}

// DrawText writes text left to right starting at (x, y).
func (i *Image) DrawText(text string, x, y int) {
	for _, r := range text {
		_, _, style, _ := i.screen.GetContent(x, y)
		i.screen.SetContent(x, y, r, nil, style.Foreground(tcell.ColorWhite))
		x++
	}
}

func (i *Image) plot(x, y int, c color.NRGBA) {
	w, h := i.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	_, _, style, _ := i.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	i.screen.SetContent(x, y, lineRune, nil, style.Foreground(blend(bg, c)))
}

// blend composites c over the background color bg.
func blend(bg tcell.Color, c color.NRGBA) tcell.Color {
	base := colorful.Color{}
	if r, g, b := bg.RGB(); r >= 0 && g >= 0 && b >= 0 {
		base = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	}
	top := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := base.BlendRgb(top, float64(c.A)/255).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toTcell(clr color.Color) tcell.Color {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Renderer implements render.Renderer for terminal images.
type Renderer struct{}

// NewRenderer creates a terminal renderer.
func NewRenderer() render.Renderer {
	return &Renderer{}
}

// DrawText draws text at cell (x, y).
func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	dst.(*Image).DrawText(text, x, y)
}
