package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrQuit is returned by Game.Update to end the game loop without an error.
var ErrQuit = errors.New("quit")

// Surface is a drawing target for tile highlights. Coordinates are screen
// pixels for graphical backends and cells for the terminal backend.
type Surface interface {
	// StrokeLine draws a line segment of the given stroke width.
	StrokeLine(from, to image.Point, width float32, clr color.Color)

	// FillPolygon fills the interior of a closed polygon.
	FillPolygon(points []image.Point, clr color.Color)
}

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// overlay logic.
type Renderer interface {
	// DrawText draws debug text with its top-left corner at (x, y).
	DrawText(dst Image, text string, x, y int)
}

// Image represents a renderable image surface that can be drawn to.
type Image interface {
	Surface

	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the demo controls
const (
	KeyB Key = iota // Board or leave the boat
	KeyC            // Toggle corners-only rendering
	KeyF            // Toggle current tile fade-out
	KeyM            // Toggle settings mirroring
	KeyP            // Switch settings profile
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// Game represents the game interface that the engine will call.
// This is typically implemented by the demo host.
type Game interface {
	// Update updates the game logic. It is called every update tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
