package game

import (
	"image"
	"testing"

	"chosenoffset.com/tileindicators/internal/core/geom"
)

func TestIsoProjectorDiamond(t *testing.T) {
	p := IsoProjector{TileWidth: 64, TileHeight: 32, Origin: image.Pt(400, 50)}

	got := p.Project(geom.WorldPoint{})
	want := geom.Polygon{{400, 50}, {432, 66}, {400, 82}, {368, 66}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d vertices, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vertex %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestIsoProjectorRoundTrip(t *testing.T) {
	p := IsoProjector{TileWidth: 64, TileHeight: 32, Origin: image.Pt(400, 50)}

	for _, tile := range []geom.WorldPoint{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 5, Y: 9}, {X: 7, Y: 0}} {
		b := p.Project(tile).Bounds()
		cx, cy := (b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2
		if got := p.Unproject(cx, cy); got != tile {
			t.Errorf("Unproject(center of %v) = %v", tile, got)
		}
	}
}

func TestGridProjector(t *testing.T) {
	p := GridProjector{CellWidth: 2, CellHeight: 1}

	poly := p.Project(geom.WorldPoint{X: 3, Y: 4})
	if b := poly.Bounds(); b != image.Rect(6, 4, 9, 6) {
		t.Errorf("Expected bounds (6,4)-(9,6), got %v", b)
	}

	tests := []struct {
		x, y int
		want geom.WorldPoint
	}{
		{0, 0, geom.WorldPoint{X: 0, Y: 0}},
		{3, 2, geom.WorldPoint{X: 1, Y: 2}},
		{-1, 0, geom.WorldPoint{X: -1, Y: 0}},
		{-2, -1, geom.WorldPoint{X: -1, Y: -1}},
		{-3, 0, geom.WorldPoint{X: -2, Y: 0}},
	}
	for _, tt := range tests {
		if got := p.Unproject(tt.x, tt.y); got != tt.want {
			t.Errorf("Unproject(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}
