package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to stop the game loop cleanly.
var ErrQuit = errors.New("quit")

// Debug font metrics in logical pixels. DrawText lays out one line per
// TextLineHeight.
const (
	TextGlyphWidth = 6
	TextLineHeight = 16
)

// Image is a drawing surface in logical screen coordinates. It abstracts
// the underlying graphics backend so the game never talks to it directly.
type Image interface {
	// Size returns the logical width and height.
	Size() (width, height int)

	// Fill fills the entire surface with the given color.
	Fill(clr color.Color)
	// Clear clears the surface to transparent.
	Clear()

	// DrawLine draws a line from (x0, y0) to (x1, y1).
	DrawLine(x0, y0, x1, y1 float64, strokeWidth float32, clr color.Color)
	// DrawRect draws a rectangle outline with its top-left corner at (x, y).
	DrawRect(x, y, width, height float64, strokeWidth float32, clr color.Color)
	// DrawText draws a single line of debug text with its top-left corner at (x, y).
	DrawText(text string, x, y int, clr color.Color)
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	IsMouseButtonJustPressed(button MouseButton) bool
	// GetCursorPosition returns the cursor in logical screen coordinates.
	GetCursorPosition() (x, y int)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reacts to
const (
	KeyLeft Key = iota
	KeyRight
	KeyTab
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
type Game interface {
	// Update updates the game logic. It is called every tick.
	// Returning ErrQuit ends the loop without an error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the backend that owns the window (or terminal) and
// drives the game loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
