package terminal

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/tileindicators/internal/render"
)

// frameInterval paces Update and Draw at roughly 30 frames per second.
const frameInterval = 33 * time.Millisecond

// InputManager collects tcell events into per-frame input state.
type InputManager struct {
	cursorX, cursorY int
	buttons          tcell.ButtonMask
	justKeys         map[render.Key]bool
	justButtons      map[render.MouseButton]bool
}

// NewInputManager creates an empty input state.
func NewInputManager() *InputManager {
	return &InputManager{
		justKeys:    make(map[render.Key]bool),
		justButtons: make(map[render.MouseButton]bool),
	}
}

// IsKeyJustPressed returns whether the key was pressed since the last frame.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return m.justKeys[key]
}

// GetCursorPosition returns the last mouse cell.
func (m *InputManager) GetCursorPosition() (x, y int) {
	return m.cursorX, m.cursorY
}

// IsMouseButtonJustPressed returns whether the button went down since the last frame.
func (m *InputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return m.justButtons[button]
}

// Handle folds one tcell event into the input state.
func (m *InputManager) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			m.justKeys[render.KeyEscape] = true
			return
		}
		if ev.Key() != tcell.KeyRune {
			return
		}
		switch ev.Rune() {
		case 'b', 'B':
			m.justKeys[render.KeyB] = true
		case 'c', 'C':
			m.justKeys[render.KeyC] = true
		case 'f', 'F':
			m.justKeys[render.KeyF] = true
		case 'm', 'M':
			m.justKeys[render.KeyM] = true
		case 'p', 'P':
			m.justKeys[render.KeyP] = true
		case 'q', 'Q':
			m.justKeys[render.KeyEscape] = true
		}
	case *tcell.EventMouse:
		m.cursorX, m.cursorY = ev.Position()
		buttons := ev.Buttons()
		pressed := buttons &^ m.buttons
		if pressed&tcell.Button1 != 0 {
			m.justButtons[render.MouseButtonLeft] = true
		}
		if pressed&tcell.Button2 != 0 {
			m.justButtons[render.MouseButtonRight] = true
		}
		m.buttons = buttons
	}
}

// EndFrame clears the just-pressed state.
func (m *InputManager) EndFrame() {
	clear(m.justKeys)
	clear(m.justButtons)
}

// Engine runs a render.Game on a terminal screen.
type Engine struct {
	screen tcell.Screen
	input  *InputManager
}

// NewEngine creates an engine over screen. The screen is initialized by
// RunGame and finalized when it returns.
func NewEngine(screen tcell.Screen, input *InputManager) *Engine {
	return &Engine{screen: screen, input: input}
}

// SetWindowSize is a no-op; the terminal decides its size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle is a no-op.
func (e *Engine) SetWindowTitle(title string) {}

// SetWindowResizable is a no-op; terminals are always resizable.
func (e *Engine) SetWindowResizable(resizable bool) {}

// RunGame runs the loop until the game returns an error. render.ErrQuit
// ends the loop and is not reported.
func (e *Engine) RunGame(game render.Game) error {
	if err := e.screen.Init(); err != nil {
		return err
	}
	defer e.screen.Fini()

	e.screen.EnableMouse()
	e.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(e.screen, events, done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	img := NewImage(e.screen)
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				e.screen.Sync()
			}
			e.input.Handle(ev)
		case <-ticker.C:
			err := e.frame(game, img)
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (e *Engine) frame(game render.Game, img *Image) error {
	err := game.Update()
	e.input.EndFrame()
	if err != nil {
		return err
	}

	w, h := e.screen.Size()
	game.Layout(w, h)
	game.Draw(img)
	e.screen.Show()
	return nil
}
