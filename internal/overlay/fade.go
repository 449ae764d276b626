package overlay

import (
	"image/color"
	"time"

	"chosenoffset.com/tileindicators/internal/core/geom"
)

// MovementTracker follows the player's tile across host ticks and decides how
// opaque the current tile highlight is once the player stands still.
//
// The stop time is recorded on the tick after the last move rather than on
// the move itself, so a player moving every tick never starts a fade.
type MovementTracker struct {
	lastPosition  geom.WorldPoint
	lastMovedTick int
	stoppedAt     time.Time

	lastTick int
	advanced bool
}

// NewMovementTracker creates a tracker that assumes the player starts at the
// origin on tick 0.
func NewMovementTracker() *MovementTracker {
	return &MovementTracker{}
}

// Advance feeds the player position observed on tick. Repeated calls for the
// same tick are ignored, so hosts may call it from every update.
func (t *MovementTracker) Advance(tick int, pos geom.WorldPoint, now time.Time) {
	if t.advanced && tick == t.lastTick {
		return
	}
	t.advanced = true
	t.lastTick = tick

	if pos != t.lastPosition {
		t.lastMovedTick = tick
		t.lastPosition = pos
	} else if t.lastMovedTick+1 == tick {
		t.stoppedAt = now
	}
}

// Position returns the last observed player position.
func (t *MovementTracker) Position() geom.WorldPoint {
	return t.lastPosition
}

// LastMovedTick returns the tick on which the position last changed.
func (t *MovementTracker) LastMovedTick() int {
	return t.lastMovedTick
}

// StoppedAt returns when the player was last confirmed standing still.
func (t *MovementTracker) StoppedAt() time.Time {
	return t.stoppedAt
}

// Fade configures the current tile fade-out.
type Fade struct {
	Enabled    bool
	Duration   time.Duration
	TickLength time.Duration
}

// Opacity returns the alpha multiplier for the current tile on tick at time
// now. visible is false once the highlight has fully faded.
func (t *MovementTracker) Opacity(tick int, now time.Time, fade Fade) (opacity float64, visible bool) {
	// Full opacity while moving and for one tick after, so consecutive moves
	// never flicker
	if !fade.Enabled || tick-t.lastMovedTick <= 1 {
		return 1, true
	}

	// The first tick of standing still already counts toward the duration
	window := fade.Duration - fade.TickLength
	return FadeOpacity(now.Sub(t.stoppedAt), window)
}

// FadeOpacity eases from 1 to 0 over window: 1 - (elapsed/window)^2.
// A zero, negative or exhausted window is fully faded.
func FadeOpacity(elapsed, window time.Duration) (float64, bool) {
	if window <= 0 || elapsed >= window {
		return 0, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	ratio := float64(elapsed) / float64(window)
	return 1 - ratio*ratio, true
}

// WithOpacity scales the alpha channel of c by opacity, truncating.
func WithOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(opacity * float64(c.A))
	return c
}
