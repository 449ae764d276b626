package overlay

import (
	"image/color"

	"chosenoffset.com/tileindicators/internal/core/geom"
	"chosenoffset.com/tileindicators/internal/render"
)

// RenderCorners draws only the corners of poly: from every vertex, one
// segment toward each neighbour covering 1/divisor of that edge. The whole
// interior is then filled. divisor must not be zero.
func RenderCorners(dst render.Surface, poly geom.Polygon, border, fill color.Color, borderWidth float64, divisor int) {
	width := float32(borderWidth)

	for i, pt := range poly {
		next := geom.Toward(pt, poly[poly.Next(i)], divisor)
		prev := geom.Toward(pt, poly[poly.Prev(i)], divisor)
		dst.StrokeLine(pt, next, width, border)
		dst.StrokeLine(pt, prev, width, border)
	}

	dst.FillPolygon(poly, fill)
}

// RenderPolygon draws the full outline of poly and fills its interior.
func RenderPolygon(dst render.Surface, poly geom.Polygon, border, fill color.Color, borderWidth float64) {
	width := float32(borderWidth)

	for i, pt := range poly {
		dst.StrokeLine(pt, poly[poly.Next(i)], width, border)
	}

	dst.FillPolygon(poly, fill)
}
