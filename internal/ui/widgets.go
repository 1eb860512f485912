package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget colors
var (
	accentColor   = color.RGBA{76, 175, 120, 255}
	accentPressed = color.RGBA{56, 155, 100, 255}
	accentHover   = color.RGBA{96, 195, 140, 255}
	buttonBg      = color.RGBA{60, 64, 72, 255}
	buttonHoverBg = color.RGBA{80, 84, 92, 255}
	buttonBorder  = color.RGBA{68, 72, 78, 255}
	textPrimary   = color.RGBA{235, 235, 240, 255}
	textSecondary = color.RGBA{160, 165, 175, 255}
)

// Button is a clickable rectangle with a centered label.
type Button struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewButton creates a new button.
func NewButton(x, y, w, h int, label string, primary bool, onClick func()) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// Update handles hover and click. Returns true when the button fired.
func (b *Button) Update(in *Input) bool {
	b.hovered = in.InBounds(b.X, b.Y, b.W, b.H)
	b.pressed = b.hovered && in.LeftPressed()

	if b.hovered && in.LeftJustPressed() && b.OnClick != nil {
		b.OnClick()
		return true
	}
	return false
}

// Hovered reports whether the cursor is over the button.
func (b *Button) Hovered() bool {
	return b.hovered
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	var bg, border color.RGBA
	if b.Primary {
		bg, border = accentColor, accentPressed
		if b.pressed {
			bg = accentPressed
		} else if b.hovered {
			bg, border = accentHover, accentHover
		}
	} else {
		bg, border = buttonBg, buttonBorder
		if b.pressed {
			bg = color.RGBA{40, 44, 50, 255}
		} else if b.hovered {
			bg, border = buttonHoverBg, accentColor
		}
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, border, false)

	face := labelFace
	if face == nil {
		return
	}
	w, h := measure(b.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.X)+float64(b.W)/2-w/2, float64(b.Y)+float64(b.H)/2-h/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, b.Label, face, op)
}
