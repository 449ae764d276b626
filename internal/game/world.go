package game

import (
	"image"
	"image/color"
	"time"

	"chosenoffset.com/tileindicators/internal/core/geom"
	"chosenoffset.com/tileindicators/internal/overlay"
	"chosenoffset.com/tileindicators/internal/render"
)

// deckRadius is how far the boat deck extends from the player, in tiles.
const deckRadius = 1

var (
	floorLight = color.NRGBA{R: 70, G: 96, B: 58, A: 255}
	floorDark  = color.NRGBA{R: 62, G: 86, B: 52, A: 255}
	deckColor  = color.NRGBA{R: 112, G: 82, B: 50, A: 255}
)

// World is a small tile grid with a player who walks one tile per game tick
// toward a clicked destination. It implements overlay.Host.
type World struct {
	Width, Height int
	TickLength    time.Duration

	// OnTick, if set, is called after every tick with the time the tick
	// was due, including ticks caught up in a single Update.
	OnTick func(tick int, at time.Time)

	proj     Projector
	viewport image.Rectangle

	player      geom.WorldPoint
	destination geom.WorldPoint
	walking     bool
	onBoat      bool

	tick    int
	start   time.Time
	started bool

	cursor   image.Point
	hasMouse bool
}

// NewWorld creates a width x height world with the player in the middle.
func NewWorld(width, height int, proj Projector, tickLength time.Duration) *World {
	return &World{
		Width:      width,
		Height:     height,
		TickLength: tickLength,
		proj:       proj,
		player:     geom.WorldPoint{X: width / 2, Y: height / 2},
	}
}

// SetViewport sets the visible screen area; tiles outside it are culled.
func (w *World) SetViewport(r image.Rectangle) {
	w.viewport = r
}

// SetCursor records the mouse position in screen coordinates.
func (w *World) SetCursor(x, y int) {
	w.cursor = image.Pt(x, y)
	w.hasMouse = true
}

// Update advances the tick counter to match now, moving the player once per
// elapsed tick. It returns the number of ticks that elapsed.
func (w *World) Update(now time.Time) int {
	if !w.started {
		w.start = now
		w.started = true
		return 0
	}

	target := int(now.Sub(w.start) / w.TickLength)
	elapsed := 0
	for w.tick < target {
		w.tick++
		w.step()
		elapsed++
		if w.OnTick != nil {
			w.OnTick(w.tick, w.start.Add(time.Duration(w.tick)*w.TickLength))
		}
	}
	return elapsed
}

func (w *World) step() {
	if !w.walking {
		return
	}
	w.player = w.player.Step(w.destination)
	if w.player == w.destination {
		w.walking = false
	}
}

// WalkTo sets the destination. Tiles outside the world are ignored.
func (w *World) WalkTo(p geom.WorldPoint) bool {
	if !w.inBounds(p) || p == w.player {
		return false
	}
	w.destination = p
	w.walking = true
	return true
}

// ToggleBoat puts the player on or off a boat whose deck is a separate grid.
func (w *World) ToggleBoat() bool {
	w.onBoat = !w.onBoat
	return w.onBoat
}

// TickCount implements overlay.Host.
func (w *World) TickCount() int {
	return w.tick
}

// PlayerPosition implements overlay.Host.
func (w *World) PlayerPosition() geom.WorldPoint {
	return w.player
}

// Destination implements overlay.Host.
func (w *World) Destination() (geom.WorldPoint, bool) {
	return w.destination, w.walking
}

// SeparateView implements overlay.Host.
func (w *World) SeparateView() bool {
	return w.onBoat
}

// HoveredTile implements overlay.Host. On a boat the player's grid only
// covers the deck around the player.
func (w *World) HoveredTile(view overlay.View) (geom.WorldPoint, bool) {
	if !w.hasMouse {
		return geom.WorldPoint{}, false
	}
	p := w.proj.Unproject(w.cursor.X, w.cursor.Y)
	if !w.inBounds(p) {
		return geom.WorldPoint{}, false
	}
	if view == overlay.ViewPlayer && w.onBoat && !w.onDeck(p) {
		return geom.WorldPoint{}, false
	}
	return p, true
}

// TilePolygon implements overlay.Host.
func (w *World) TilePolygon(p geom.WorldPoint) (geom.Polygon, bool) {
	if !w.inBounds(p) {
		return nil, false
	}
	poly := w.proj.Project(p)
	if !w.viewport.Empty() && !poly.Bounds().Overlaps(w.viewport) {
		return nil, false
	}
	return poly, true
}

// DrawFloor fills every tile with a checkerboard, and the deck when on a boat.
func (w *World) DrawFloor(dst render.Surface) {
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			p := geom.WorldPoint{X: x, Y: y}
			poly, ok := w.TilePolygon(p)
			if !ok {
				continue
			}
			c := floorLight
			if (x+y)%2 == 1 {
				c = floorDark
			}
			if w.onBoat && w.onDeck(p) {
				c = deckColor
			}
			dst.FillPolygon(poly, c)
		}
	}
}

func (w *World) onDeck(p geom.WorldPoint) bool {
	return abs(p.X-w.player.X) <= deckRadius && abs(p.Y-w.player.Y) <= deckRadius
}

func (w *World) inBounds(p geom.WorldPoint) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w.Width && p.Y < w.Height
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
