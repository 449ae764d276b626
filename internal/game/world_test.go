package game

import (
	"image"
	"testing"
	"time"

	"chosenoffset.com/tileindicators/internal/core/geom"
	"chosenoffset.com/tileindicators/internal/overlay"
	"chosenoffset.com/tileindicators/internal/render"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestWorld() *World {
	return NewWorld(10, 10, GridProjector{CellWidth: 10, CellHeight: 10}, 600*time.Millisecond)
}

func TestNewWorldCentersPlayer(t *testing.T) {
	w := newTestWorld()
	if got := w.PlayerPosition(); got != (geom.WorldPoint{X: 5, Y: 5}) {
		t.Errorf("Expected player at (5, 5), got %v", got)
	}
	if w.TickCount() != 0 {
		t.Errorf("Expected tick 0, got %d", w.TickCount())
	}
}

func TestWorldWalksOneTilePerTick(t *testing.T) {
	w := newTestWorld()
	if !w.WalkTo(geom.WorldPoint{X: 8, Y: 5}) {
		t.Fatal("Expected WalkTo to accept an in-bounds tile")
	}

	if n := w.Update(epoch); n != 0 {
		t.Errorf("First update should only start the clock, got %d ticks", n)
	}
	if n := w.Update(epoch.Add(300 * time.Millisecond)); n != 0 {
		t.Errorf("Expected no tick before 600ms, got %d", n)
	}
	if n := w.Update(epoch.Add(600 * time.Millisecond)); n != 1 {
		t.Errorf("Expected 1 tick, got %d", n)
	}
	if got := w.PlayerPosition(); got != (geom.WorldPoint{X: 6, Y: 5}) {
		t.Errorf("Expected player at (6, 5), got %v", got)
	}

	if n := w.Update(epoch.Add(1800 * time.Millisecond)); n != 2 {
		t.Errorf("Expected 2 ticks, got %d", n)
	}
	if got := w.PlayerPosition(); got != (geom.WorldPoint{X: 8, Y: 5}) {
		t.Errorf("Expected player at (8, 5), got %v", got)
	}
	if _, ok := w.Destination(); ok {
		t.Error("Destination should clear once reached")
	}
	if w.TickCount() != 3 {
		t.Errorf("Expected tick 3, got %d", w.TickCount())
	}
}

func TestWorldWalkToRejects(t *testing.T) {
	w := newTestWorld()
	if w.WalkTo(geom.WorldPoint{X: -1, Y: 0}) {
		t.Error("Expected out-of-bounds tile to be rejected")
	}
	if w.WalkTo(geom.WorldPoint{X: 5, Y: 5}) {
		t.Error("Expected the player's own tile to be rejected")
	}
	if _, ok := w.Destination(); ok {
		t.Error("Expected no destination")
	}
}

func TestWorldHoveredTileOnBoat(t *testing.T) {
	w := newTestWorld()

	if _, ok := w.HoveredTile(overlay.ViewWorld); ok {
		t.Error("Expected no hovered tile before the mouse moves")
	}

	w.SetCursor(15, 15)
	if got, ok := w.HoveredTile(overlay.ViewPlayer); !ok || got != (geom.WorldPoint{X: 1, Y: 1}) {
		t.Errorf("Expected (1, 1) on land, got %v, %v", got, ok)
	}

	if !w.ToggleBoat() || !w.SeparateView() {
		t.Fatal("Expected the player to be on the boat")
	}
	if _, ok := w.HoveredTile(overlay.ViewPlayer); ok {
		t.Error("Tile off the deck should not be in the player's view")
	}
	if got, ok := w.HoveredTile(overlay.ViewWorld); !ok || got != (geom.WorldPoint{X: 1, Y: 1}) {
		t.Errorf("Expected (1, 1) in the world view, got %v, %v", got, ok)
	}

	w.SetCursor(55, 45)
	if got, ok := w.HoveredTile(overlay.ViewPlayer); !ok || got != (geom.WorldPoint{X: 5, Y: 4}) {
		t.Errorf("Expected deck tile (5, 4), got %v, %v", got, ok)
	}

	w.SetCursor(150, 15)
	if _, ok := w.HoveredTile(overlay.ViewWorld); ok {
		t.Error("Cursor outside the world should not hover a tile")
	}
}

func TestWorldTilePolygonCulling(t *testing.T) {
	w := newTestWorld()
	w.SetViewport(image.Rect(0, 0, 30, 30))

	if _, ok := w.TilePolygon(geom.WorldPoint{X: 1, Y: 1}); !ok {
		t.Error("Expected visible tile to project")
	}
	if _, ok := w.TilePolygon(geom.WorldPoint{X: 5, Y: 5}); ok {
		t.Error("Expected tile outside the viewport to be culled")
	}
	if _, ok := w.TilePolygon(geom.WorldPoint{X: -1, Y: 0}); ok {
		t.Error("Expected tile outside the world to have no polygon")
	}
}

func TestWorldDrawFloor(t *testing.T) {
	w := newTestWorld()
	w.SetViewport(image.Rect(0, 0, 100, 100))

	var list render.DrawList
	w.DrawFloor(&list)
	if got := list.Count(render.CmdFill); got != 100 {
		t.Errorf("Expected 100 floor fills, got %d", got)
	}
	if got := list.Count(render.CmdLine); got != 0 {
		t.Errorf("Expected no lines, got %d", got)
	}
}

func TestWorldOnTickCatchesUp(t *testing.T) {
	w := newTestWorld()
	type call struct {
		tick int
		at   time.Time
	}
	var calls []call
	w.OnTick = func(tick int, at time.Time) {
		calls = append(calls, call{tick, at})
	}

	w.Update(epoch)
	w.Update(epoch.Add(1900 * time.Millisecond))

	if len(calls) != 3 {
		t.Fatalf("Expected 3 tick callbacks, got %d", len(calls))
	}
	for i, c := range calls {
		wantAt := epoch.Add(time.Duration(i+1) * 600 * time.Millisecond)
		if c.tick != i+1 || !c.at.Equal(wantAt) {
			t.Errorf("Callback %d: expected tick %d at %v, got tick %d at %v", i, i+1, wantAt, c.tick, c.at)
		}
	}
}
