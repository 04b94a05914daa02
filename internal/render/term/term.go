// Package term is a terminal backend for the render interfaces. Logical
// screen coordinates are scaled onto the cell grid, so one scene renders the
// same in a window or a terminal, only coarser.
package term

import (
	"errors"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"chosenoffset.com/sightline/internal/render"
)

const defaultTPS = 30

// Image draws onto a tcell screen.
type Image struct {
	screen     tcell.Screen
	width      int // logical
	height     int
	cols, rows int
	bg         tcell.Color
}

// NewImage wraps screen as a logical width x height surface.
func NewImage(screen tcell.Screen, width, height int) *Image {
	cols, rows := screen.Size()
	return &Image{
		screen: screen,
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		bg:     tcell.ColorDefault,
	}
}

// Size returns the logical size.
func (i *Image) Size() (width, height int) {
	return i.width, i.height
}

// Fill paints every cell with the background color.
func (i *Image) Fill(clr color.Color) {
	i.bg = tcell.FromImageColor(clr)
	i.screen.Fill(' ', tcell.StyleDefault.Background(i.bg))
}

// Clear blanks the screen.
func (i *Image) Clear() {
	i.bg = tcell.ColorDefault
	i.screen.Clear()
}

// DrawLine rasterises the line into cells with Bresenham's algorithm.
// The glyph follows the line's slope on screen.
func (i *Image) DrawLine(x0, y0, x1, y1 float64, strokeWidth float32, clr color.Color) {
	c0, r0 := i.toCell(x0, y0)
	c1, r1 := i.toCell(x1, y1)
	glyph := lineGlyph(c1-c0, r1-r0)
	style := i.style(clr)

	dx := abs(c1 - c0)
	dy := -abs(r1 - r0)
	sx, sy := 1, 1
	if c0 > c1 {
		sx = -1
	}
	if r0 > r1 {
		sy = -1
	}
	err := dx + dy

	for {
		i.set(c0, r0, glyph, style)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c0 += sx
		}
		if e2 <= dx {
			err += dx
			r0 += sy
		}
	}
}

// DrawRect outlines the cells covered by the rectangle.
func (i *Image) DrawRect(x, y, width, height float64, strokeWidth float32, clr color.Color) {
	left, top := i.toCell(x, y)
	right, bottom := i.toCell(x+width, y+height)
	style := i.style(clr)

	for c := left; c <= right; c++ {
		i.set(c, top, '#', style)
		i.set(c, bottom, '#', style)
	}
	for r := top; r <= bottom; r++ {
		i.set(left, r, '#', style)
		i.set(right, r, '#', style)
	}
}

// DrawText writes text starting at the cell containing (x, y). Wide runes
// take two columns.
func (i *Image) DrawText(text string, x, y int, clr color.Color) {
	col, row := i.toCell(float64(x), float64(y))
	style := i.style(clr)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > i.cols {
			return
		}
		i.set(col, row, r, style)
		col += w
	}
}

func (i *Image) style(clr color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.FromImageColor(clr)).Background(i.bg)
}

func (i *Image) set(col, row int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= i.cols || row >= i.rows {
		return
	}
	i.screen.SetContent(col, row, r, nil, style)
}

// toCell maps logical coordinates to a cell.
func (i *Image) toCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * float64(i.cols) / float64(i.width)))
	row = int(math.Floor(y * float64(i.rows) / float64(i.height)))
	return col, row
}

// toLogical maps a cell to the logical coordinates of its top-left corner.
func (i *Image) toLogical(col, row int) (x, y int) {
	if i.cols == 0 || i.rows == 0 {
		return 0, 0
	}
	return col * i.width / i.cols, row * i.height / i.rows
}

func lineGlyph(dc, dr int) rune {
	switch {
	case dc == 0 && dr == 0:
		return '+'
	case abs(dr)*2 < abs(dc):
		return '-'
	case abs(dc)*2 < abs(dr):
		return '|'
	case (dc > 0) == (dr > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// InputManager turns tcell events into per-frame "just pressed" state.
type InputManager struct {
	keys    map[render.Key]bool
	buttons map[render.MouseButton]bool
	held    tcell.ButtonMask
	cursorX int
	cursorY int
}

// NewInputManager creates an input manager with no pending input.
func NewInputManager() *InputManager {
	return &InputManager{
		keys:    make(map[render.Key]bool),
		buttons: make(map[render.MouseButton]bool),
	}
}

// IsKeyJustPressed reports whether key was pressed since the last frame.
// Terminals only report presses, so auto-repeat counts as a new press.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return m.keys[key]
}

// IsMouseButtonJustPressed reports whether button went down since the last frame.
func (m *InputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return m.buttons[button]
}

// GetCursorPosition returns the last mouse position in logical coordinates.
func (m *InputManager) GetCursorPosition() (x, y int) {
	return m.cursorX, m.cursorY
}

// beginFrame drops the previous frame's presses.
func (m *InputManager) beginFrame() {
	clear(m.keys)
	clear(m.buttons)
}

// handleEvent records one event. img maps cells back to logical coordinates.
func (m *InputManager) handleEvent(ev tcell.Event, img *Image) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			m.keys[render.KeyLeft] = true
		case tcell.KeyRight:
			m.keys[render.KeyRight] = true
		case tcell.KeyTab:
			m.keys[render.KeyTab] = true
		case tcell.KeyEscape, tcell.KeyCtrlC:
			m.keys[render.KeyEscape] = true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				m.keys[render.KeyEscape] = true
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		m.cursorX, m.cursorY = img.toLogical(col, row)

		buttons := ev.Buttons()
		pressed := buttons &^ m.held
		if pressed&tcell.Button1 != 0 {
			m.buttons[render.MouseButtonLeft] = true
		}
		if pressed&tcell.Button2 != 0 {
			m.buttons[render.MouseButtonRight] = true
		}
		m.held = buttons
	}
}

// Engine runs a render.Game in the terminal at a fixed tick rate.
type Engine struct {
	screen tcell.Screen
	input  *InputManager
	tps    int
	title  string
}

// NewEngine creates a terminal engine. The screen is opened by RunGame.
func NewEngine() *Engine {
	return &Engine{input: NewInputManager(), tps: defaultTPS}
}

// NewEngineWithScreen creates an engine drawing to an existing screen,
// e.g. a tcell simulation screen.
func NewEngineWithScreen(screen tcell.Screen) *Engine {
	e := NewEngine()
	e.screen = screen
	return e
}

// Input returns the input manager fed by this engine.
func (e *Engine) Input() render.InputManager {
	return e.input
}

// SetWindowSize is a no-op: the terminal decides its size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle sets the terminal title where supported.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// SetTPS sets the tick rate.
func (e *Engine) SetTPS(tps int) {
	if tps > 0 {
		e.tps = tps
	}
}

// RunGame opens the screen and runs the game until it returns an error or
// render.ErrQuit.
func (e *Engine) RunGame(game render.Game) error {
	if e.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		e.screen = screen
	}
	if err := e.screen.Init(); err != nil {
		return err
	}
	defer e.screen.Fini()

	e.screen.EnableMouse()
	e.screen.HideCursor()
	if e.title != "" {
		e.screen.SetTitle(e.title)
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(e.tps))
	defer ticker.Stop()

	for {
		if err := e.step(game, events); err != nil {
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			return err
		}
		<-ticker.C
	}
}

// step runs one tick: drain pending input, update, draw, show. Input is only
// applied here so a frame never sees a half-applied event.
func (e *Engine) step(game render.Game, events <-chan tcell.Event) error {
	cols, rows := e.screen.Size()
	width, height := game.Layout(cols, rows)
	img := NewImage(e.screen, width, height)

	e.input.beginFrame()
drain:
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return render.ErrQuit
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				e.screen.Sync()
				continue
			}
			e.input.handleEvent(ev, img)
		default:
			break drain
		}
	}

	if err := game.Update(); err != nil {
		return err
	}
	game.Draw(img)
	e.screen.Show()
	return nil
}
