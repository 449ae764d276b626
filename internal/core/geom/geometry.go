package geom

import "image"

// Toward returns the point 1/divisor of the way from a to b using integer
// arithmetic. Division truncates toward zero. A zero divisor panics.
func Toward(a, b image.Point, divisor int) image.Point {
	return image.Point{
		X: (b.X-a.X)/divisor + a.X,
		Y: (b.Y-a.Y)/divisor + a.Y,
	}
}

// Contains tests if a point is inside the polygon using ray casting.
// Coordinates are floats so callers can sample pixel or cell centers.
func (p Polygon) Contains(x, y float64) bool {
	inside := false
	j := len(p) - 1

	for i := 0; i < len(p); i++ {
		xi, yi := float64(p[i].X), float64(p[i].Y)
		xj, yj := float64(p[j].X), float64(p[j].Y)

		if ((yi > y) != (yj > y)) &&
			(x < (xj-xi)*(y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}
