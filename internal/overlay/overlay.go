// Package overlay draws the hovered, destination and current tile highlights
// on top of a host's scene.
//
// The host drives two entry points from its single update/render thread:
// AdvanceTick once per discrete game tick, and Render once per frame.
package overlay

import (
	"time"

	"go.uber.org/zap"

	"chosenoffset.com/tileindicators/internal/config"
	"chosenoffset.com/tileindicators/internal/core/geom"
	"chosenoffset.com/tileindicators/internal/render"
)

// View identifies one of the host's tile grids.
type View int

const (
	// ViewPlayer is the grid the player stands on, e.g. a boat deck.
	ViewPlayer View = iota
	// ViewWorld is the top-level world grid.
	ViewWorld
)

// Host is the capability set the overlay needs from the game client.
type Host interface {
	// TickCount returns the monotonic game tick counter.
	TickCount() int
	// PlayerPosition returns the local player's tile.
	PlayerPosition() geom.WorldPoint
	// Destination returns the tile the player is walking to, if any.
	Destination() (geom.WorldPoint, bool)
	// SeparateView reports whether the player's grid differs from the world grid.
	SeparateView() bool
	// HoveredTile returns the tile under the cursor on the given grid, if any.
	HoveredTile(view View) (geom.WorldPoint, bool)
	// TilePolygon projects a tile to its screen outline. ok is false when the
	// tile is off screen or outside the loaded scene.
	TilePolygon(p geom.WorldPoint) (geom.Polygon, bool)
}

// Settings supplies the settings for a render pass.
type Settings interface {
	Current() config.Config
}

// Overlay renders the tile highlights for one host.
type Overlay struct {
	host     Host
	settings Settings
	tracker  *MovementTracker
	log      *zap.SugaredLogger

	// TickLength is subtracted from the fade duration for the grace tick.
	TickLength time.Duration
}

// New creates an overlay. A nil logger disables logging.
func New(host Host, settings Settings, log *zap.SugaredLogger) *Overlay {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Overlay{
		host:       host,
		settings:   settings,
		tracker:    NewMovementTracker(),
		log:        log,
		TickLength: config.GameTickLength,
	}
}

// Tracker exposes the movement tracker, mainly for diagnostics.
func (o *Overlay) Tracker() *MovementTracker {
	return o.tracker
}

// AdvanceTick records the player position for the host's current tick.
func (o *Overlay) AdvanceTick(now time.Time) {
	before := o.tracker.LastMovedTick()
	o.tracker.Advance(o.host.TickCount(), o.host.PlayerPosition(), now)
	if o.tracker.LastMovedTick() != before {
		o.log.Debugw("Player moved", "tick", o.tracker.LastMovedTick(), "position", o.tracker.Position())
	}
}

// Render builds the draw commands for one frame at time now.
func (o *Overlay) Render(now time.Time) *render.DrawList {
	cfg := o.settings.Current()
	out := &render.DrawList{}

	if style := cfg.Hovered(); style.Enabled {
		if tile, ok := SelectHoveredTile(o.host, cfg.HoveredTileSailingMode); ok {
			o.renderTile(out, tile, style)
		}
	}

	if style := cfg.Destination(); style.Enabled {
		if tile, ok := o.host.Destination(); ok {
			o.renderTile(out, tile, style)
		}
	}

	if style := cfg.Current(); style.Enabled {
		opacity, visible := o.tracker.Opacity(o.host.TickCount(), now, Fade{
			Enabled:    cfg.TrueTileFadeout,
			Duration:   cfg.FadeoutTime(),
			TickLength: o.TickLength,
		})
		if visible {
			if opacity < 1 {
				style.Border = WithOpacity(style.Border, opacity)
				style.Fill = WithOpacity(style.Fill, opacity)
			}
			o.renderTile(out, o.tracker.Position(), style)
		}
	}

	return out
}

// Draw renders a frame directly onto dst.
func (o *Overlay) Draw(dst render.Surface, now time.Time) {
	o.Render(now).Replay(dst)
}

func (o *Overlay) renderTile(dst render.Surface, tile geom.WorldPoint, style config.Style) {
	poly, ok := o.host.TilePolygon(tile)
	if !ok || poly == nil {
		return
	}

	if style.CornersOnly {
		RenderCorners(dst, poly, style.Border, style.Fill, style.BorderWidth, style.CornerSize)
	} else {
		RenderPolygon(dst, poly, style.Border, style.Fill, style.BorderWidth)
	}
}
