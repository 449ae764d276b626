package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"chosenoffset.com/tileindicators/internal/config"
	"chosenoffset.com/tileindicators/internal/overlay"
	"chosenoffset.com/tileindicators/internal/render"
)

// messageLifetime is how long a status message stays on screen.
const messageLifetime = 3 * time.Second

// Message is a status line shown on screen for a short time.
type Message struct {
	Text     string
	TimeLeft time.Duration
}

// Game is the demo host: a small world with the tile overlay drawn on top.
// It implements render.Game for any backend.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	World    *World
	Overlay  *overlay.Overlay
	Settings *Manager
	Renderer render.Renderer
	InputMgr render.InputManager

	// Now is the clock used for ticks and fades.
	Now func() time.Time

	// LineHeight and TextMargin place the HUD text, in screen units.
	LineHeight int
	TextMargin int

	Messages []Message

	lastUpdate time.Time
	log        *zap.SugaredLogger
}

// NewGame wires the overlay to world and settings.
func NewGame(world *World, settings *Manager, renderer render.Renderer, input render.InputManager, log *zap.SugaredLogger) *Game {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	ov := overlay.New(world, settings, log.Named("overlay"))
	ov.TickLength = world.TickLength
	world.OnTick = func(_ int, at time.Time) {
		ov.AdvanceTick(at)
	}
	return &Game{
		World:      world,
		Overlay:    ov,
		Settings:   settings,
		Renderer:   renderer,
		InputMgr:   input,
		Now:        time.Now,
		LineHeight: 16,
		TextMargin: 4,
		log:        log,
	}
}

// Update handles input, advances the world to the current time and records
// the player's position for the overlay.
func (g *Game) Update() error {
	now := g.Now()
	if !g.lastUpdate.IsZero() {
		g.updateMessages(now.Sub(g.lastUpdate))
	}
	g.lastUpdate = now

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}
	g.handleInput()

	// Ticks reach the overlay through World.OnTick; this covers tick 0
	g.World.Update(now)
	g.Overlay.AdvanceTick(now)
	return nil
}

func (g *Game) handleInput() {
	x, y := g.InputMgr.GetCursorPosition()
	g.World.SetCursor(x, y)

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		if tile, ok := g.World.HoveredTile(overlay.ViewWorld); ok && g.World.WalkTo(tile) {
			g.log.Debugw("Walking", "destination", tile)
		}
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyB) {
		if g.World.ToggleBoat() {
			g.ShowMessage("Boarded the boat")
		} else {
			g.ShowMessage("Left the boat")
		}
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyC) {
		on, err := g.Settings.ToggleCornersOnly()
		g.report("Corners only", on, err)
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyF) {
		on, err := g.Settings.Toggle("trueTileFadeout")
		g.report("True tile fadeout", on, err)
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyM) {
		on, err := g.Settings.Toggle(config.KeyMirrorSettings)
		g.report("Mirror settings", on, err)
		if err == nil && on {
			// Turning mirroring on pulls the sibling's values right away
			if n := g.Settings.Mirror.CopyFromSibling(); n > 0 {
				g.ShowMessage(fmt.Sprintf("Copied %d settings", n))
			}
		}
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyP) {
		name, err := g.Settings.NextProfile()
		if err != nil {
			g.log.Errorw("Profile switch failed", "error", err)
			g.ShowMessage("Profile switch failed")
		} else {
			g.ShowMessage("Profile: " + name)
		}
	}
}

func (g *Game) report(name string, on bool, err error) {
	if err != nil {
		g.log.Errorw("Setting change failed", "setting", name, "error", err)
		g.ShowMessage(name + " failed")
		return
	}
	state := "off"
	if on {
		state = "on"
	}
	g.ShowMessage(name + ": " + state)
}

func (g *Game) updateMessages(dt time.Duration) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{Text: text, TimeLeft: messageLifetime})
	g.log.Infow("Message", "text", text)
}

// Layout handles window resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ScreenWidth = outsideWidth
	g.ScreenHeight = outsideHeight
	g.World.SetViewport(rect(outsideWidth, outsideHeight))
	return outsideWidth, outsideHeight
}

// hud returns the status lines drawn in the top-left corner.
func (g *Game) hud() []string {
	cfg := g.Settings.Current()
	pos := g.World.PlayerPosition()
	lines := []string{
		fmt.Sprintf("tick %d  player %s", g.World.TickCount(), pos),
		fmt.Sprintf("profile %s  corners %v  fade %v  mirror %v",
			g.Settings.Profile(), cfg.CurrentTileCornersOnly, cfg.TrueTileFadeout, cfg.MirrorSettings),
	}
	if g.World.SeparateView() {
		lines = append(lines, "on boat")
	}
	return lines
}
