package game

import (
	"image"
	"math"

	"chosenoffset.com/tileindicators/internal/core/geom"
)

// Projector maps world tiles to screen polygons and back.
type Projector interface {
	// Project returns the screen outline of tile p.
	Project(p geom.WorldPoint) geom.Polygon
	// Unproject returns the tile containing screen point (x, y).
	Unproject(x, y int) geom.WorldPoint
}

// IsoProjector draws tiles as diamonds. Origin is the top vertex of tile (0, 0).
type IsoProjector struct {
	TileWidth  int
	TileHeight int
	Origin     image.Point
}

// Project implements Projector. Vertices run top, right, bottom, left.
func (p IsoProjector) Project(t geom.WorldPoint) geom.Polygon {
	hw, hh := p.TileWidth/2, p.TileHeight/2
	cx := p.Origin.X + (t.X-t.Y)*hw
	cy := p.Origin.Y + (t.X+t.Y)*hh
	return geom.Polygon{
		{cx, cy},
		{cx + hw, cy + hh},
		{cx, cy + p.TileHeight},
		{cx - hw, cy + hh},
	}
}

// Unproject implements Projector.
func (p IsoProjector) Unproject(x, y int) geom.WorldPoint {
	rx := float64(x-p.Origin.X) / float64(p.TileWidth/2)
	ry := float64(y-p.Origin.Y) / float64(p.TileHeight/2)
	return geom.WorldPoint{
		X: int(math.Floor((rx + ry) / 2)),
		Y: int(math.Floor((ry - rx) / 2)),
	}
}

// GridProjector draws tiles as axis-aligned rectangles, used by the terminal
// host where one unit is one cell.
type GridProjector struct {
	CellWidth  int
	CellHeight int
	Origin     image.Point
}

// Project implements Projector. Vertices run clockwise from the top-left.
func (p GridProjector) Project(t geom.WorldPoint) geom.Polygon {
	x0 := p.Origin.X + t.X*p.CellWidth
	y0 := p.Origin.Y + t.Y*p.CellHeight
	x1, y1 := x0+p.CellWidth, y0+p.CellHeight
	return geom.Polygon{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// Unproject implements Projector.
func (p GridProjector) Unproject(x, y int) geom.WorldPoint {
	return geom.WorldPoint{
		X: floorDiv(x-p.Origin.X, p.CellWidth),
		Y: floorDiv(y-p.Origin.Y, p.CellHeight),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
