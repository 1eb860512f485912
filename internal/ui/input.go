package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input tracks mouse and keyboard state for one frame.
type Input struct {
	mouseX, mouseY   int
	leftPressed      bool
	leftJustPressed  bool
	leftJustReleased bool
}

// NewInput creates a new input tracker.
func NewInput() *Input {
	return &Input{}
}

// Update refreshes the input state. Call once per frame.
func (in *Input) Update() {
	in.mouseX, in.mouseY = ebiten.CursorPosition()
	in.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.leftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	in.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// MousePosition returns the current cursor position.
func (in *Input) MousePosition() (int, int) {
	return in.mouseX, in.mouseY
}

// LeftJustPressed reports whether the left button was pressed this frame.
func (in *Input) LeftJustPressed() bool {
	return in.leftJustPressed
}

// LeftJustReleased reports whether the left button was released this frame.
func (in *Input) LeftJustReleased() bool {
	return in.leftJustReleased
}

// LeftPressed reports whether the left button is held down.
func (in *Input) LeftPressed() bool {
	return in.leftPressed
}

// InBounds reports whether the cursor is inside the given rectangle.
func (in *Input) InBounds(x, y, w, h int) bool {
	return in.mouseX >= x && in.mouseX < x+w && in.mouseY >= y && in.mouseY < y+h
}

// ClickedIn reports whether the left button was pressed this frame with
// the cursor inside the given rectangle.
func (in *Input) ClickedIn(x, y, w, h int) bool {
	return in.leftJustPressed && in.InBounds(x, y, w, h)
}

// KeyJustPressed reports whether the key was pressed this frame.
func KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
