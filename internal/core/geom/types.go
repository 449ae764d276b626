// Package geom holds the grid and screen-space types shared by the overlay,
// the render backends and the demo hosts.
package geom

import (
	"fmt"
	"image"
)

// WorldPoint is a tile coordinate on the world grid.
type WorldPoint struct {
	X, Y  int
	Plane int
}

// String formats the point as "(x, y, plane)".
func (p WorldPoint) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Plane)
}

// Step returns p moved by at most one tile toward q on each axis. Diagonal
// steps are allowed; the plane is never changed.
func (p WorldPoint) Step(q WorldPoint) WorldPoint {
	return WorldPoint{X: p.X + sign(q.X-p.X), Y: p.Y + sign(q.Y-p.Y), Plane: p.Plane}
}

// Polygon is a closed loop of screen-space vertices. The last vertex is
// implicitly connected back to the first.
type Polygon []image.Point

// Prev returns the index of the vertex before i, wrapping around the loop.
func (p Polygon) Prev(i int) int {
	if i-1 < 0 {
		return len(p) - 1
	}
	return i - 1
}

// Next returns the index of the vertex after i, wrapping around the loop.
func (p Polygon) Next(i int) int {
	if i+1 > len(p)-1 {
		return 0
	}
	return i + 1
}

// Bounds returns the smallest rectangle containing every vertex. The
// rectangle is inclusive of the max vertex, so Max is one past it.
func (p Polygon) Bounds() image.Rectangle {
	if len(p) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: p[0], Max: p[0]}
	for _, pt := range p[1:] {
		r.Min.X = min(r.Min.X, pt.X)
		r.Min.Y = min(r.Min.Y, pt.Y)
		r.Max.X = max(r.Max.X, pt.X)
		r.Max.Y = max(r.Max.Y, pt.Y)
	}
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
