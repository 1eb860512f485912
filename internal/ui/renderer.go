package ui

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/res"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare   color.RGBA
	DarkSquare    color.RGBA
	Selected      color.RGBA
	TrajectoryDot color.RGBA
	CaptureRing   color.RGBA
	ThreatTint    color.RGBA
	LastMove      color.RGBA
	Background    color.RGBA
	StatusBar     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:   color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:    color.RGBA{181, 136, 99, 255},  // Brown
		Selected:      color.RGBA{247, 247, 105, 180}, // Yellow highlight
		TrajectoryDot: color.RGBA{130, 151, 105, 200}, // Green dots
		CaptureRing:   color.RGBA{220, 80, 70, 220},   // Red rings
		ThreatTint:    color.RGBA{255, 100, 100, 90},  // Translucent red
		LastMove:      color.RGBA{180, 190, 100, 90},  // Soft yellow-green
		Background:    color.RGBA{40, 44, 52, 255},    // Dark gray
		StatusBar:     color.RGBA{30, 33, 39, 255},
	}
}

// fallbackPalette colors pieces whose texture could not be loaded, one
// color per suit in declaration order.
var fallbackPalette = []color.RGBA{
	{244, 239, 224, 255},
	{59, 56, 47, 255},
	{190, 80, 70, 255},
	{70, 110, 190, 255},
}

// Renderer draws the configured board grid, highlights and pieces.
type Renderer struct {
	conf     *config.BoardConfig
	textures *res.Manager
	theme    *Theme
	failed   map[string]bool
}

// NewRenderer creates a renderer for the given board configuration.
func NewRenderer(conf *config.BoardConfig, textures *res.Manager) *Renderer {
	return &Renderer{
		conf:     conf,
		textures: textures,
		theme:    DefaultTheme(),
		failed:   make(map[string]bool),
	}
}

// Theme returns the active theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// BoardPixels returns the pixel size of the playing area.
func (r *Renderer) BoardPixels() (int, int) {
	return r.conf.Width * r.conf.CellWidth, r.conf.Height * r.conf.CellHeight
}

// CellOrigin returns the top-left pixel of the cell at pos.
func (r *Renderer) CellOrigin(pos util.Pos) (int, int) {
	return pos.X * r.conf.CellWidth, pos.Y * r.conf.CellHeight
}

// PosAt maps a pixel coordinate to a board position. The second result
// is false when the pixel lies outside the playing area.
func (r *Renderer) PosAt(x, y int) (util.Pos, bool) {
	w, h := r.BoardPixels()
	if x < 0 || x >= w || y < 0 || y >= h {
		return util.Pos{}, false
	}
	return util.Pos{X: x / r.conf.CellWidth, Y: y / r.conf.CellHeight}, true
}

// DrawGrid draws the checkered playing area.
func (r *Renderer) DrawGrid(screen *ebiten.Image) {
	for y := 0; y < r.conf.Height; y++ {
		for x := 0; x < r.conf.Width; x++ {
			c := r.theme.DarkSquare
			if (x+y)%2 == 0 {
				c = r.theme.LightSquare
			}
			vector.DrawFilledRect(screen,
				float32(x*r.conf.CellWidth), float32(y*r.conf.CellHeight),
				float32(r.conf.CellWidth), float32(r.conf.CellHeight), c, false)
		}
	}
}

// FillCell draws a colored overlay over the cell at pos.
func (r *Renderer) FillCell(screen *ebiten.Image, pos util.Pos, c color.RGBA) {
	x, y := r.CellOrigin(pos)
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(r.conf.CellWidth), float32(r.conf.CellHeight), c, false)
}

// DrawTrajectoryDot marks a cell the selected piece can move to.
func (r *Renderer) DrawTrajectoryDot(screen *ebiten.Image, pos util.Pos) {
	x, y := r.CellOrigin(pos)
	cx := float32(x) + float32(r.conf.CellWidth)/2
	cy := float32(y) + float32(r.conf.CellHeight)/2
	radius := float32(r.conf.CellWidth) * 0.15
	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.TrajectoryDot, false)
}

// DrawCaptureRing marks a cell the selected piece can capture on.
func (r *Renderer) DrawCaptureRing(screen *ebiten.Image, pos util.Pos) {
	x, y := r.CellOrigin(pos)
	cx := float32(x) + float32(r.conf.CellWidth)/2
	cy := float32(y) + float32(r.conf.CellHeight)/2
	radius := float32(r.conf.CellWidth) * 0.38
	vector.StrokeCircle(screen, cx, cy, radius, 3, r.theme.CaptureRing, false)
}

// DrawPiece draws a piece at its board position, falling back to a
// plain disc with the kind initial when its texture is unavailable.
func (r *Renderer) DrawPiece(screen *ebiten.Image, p *board.Piece) {
	x, y := r.CellOrigin(p.Pos())

	path := p.Texture()
	if path != "" && !r.failed[path] {
		tex, err := res.From[res.Texture](r.textures, path)
		if err != nil {
			log.Printf("Warning: Failed to load texture %s: %v", path, err)
			r.failed[path] = true
		} else {
			bounds := tex.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(
				float64(r.conf.CellWidth)/float64(bounds.Dx()),
				float64(r.conf.CellHeight)/float64(bounds.Dy()))
			op.GeoM.Translate(float64(x), float64(y))
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(tex.Image(), op)
			return
		}
	}

	r.drawFallbackPiece(screen, p, x, y)
}

// drawFallbackPiece draws a suit-colored disc with the kind's initial.
func (r *Renderer) drawFallbackPiece(screen *ebiten.Image, p *board.Piece, x, y int) {
	suitIdx := 0
	for i, s := range r.conf.Suits {
		if s == p.Suit() {
			suitIdx = i
			break
		}
	}
	c := fallbackPalette[suitIdx%len(fallbackPalette)]

	cx := float32(x) + float32(r.conf.CellWidth)/2
	cy := float32(y) + float32(r.conf.CellHeight)/2
	radius := float32(r.conf.CellWidth) * 0.32
	vector.DrawFilledCircle(screen, cx, cy, radius, c, false)

	face := labelFace
	if face == nil {
		return
	}
	initial := string(p.Kind())
	if len(initial) > 1 {
		initial = initial[:1]
	}
	w, h := measure(initial, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx)-w/2, float64(cy)-h/2)
	op.ColorScale.ScaleWithColor(r.theme.Background)
	text.Draw(screen, initial, face, op)
}
