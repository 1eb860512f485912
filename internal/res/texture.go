package res

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/pieces/*.svg
var builtinAssets embed.FS

// renderSize is the square pixel size SVG sources rasterize at. It is
// larger than any board cell so downscaling stays sharp.
const renderSize = 240

// Texture is a rasterized image asset. SVG sources render through oksvg
// with anti-aliasing; raster sources decode directly. Paths resolve
// against the built-in asset set before the filesystem, so configs can
// reference shipped art and custom files with the same syntax.
type Texture struct {
	rgba *image.RGBA
	img  *ebiten.Image
}

// Load reads and rasterizes the asset at path.
func (t *Texture) Load(path string) error {
	data, err := builtinAssets.ReadFile(path)
	if err != nil {
		data, err = os.ReadFile(path)
		if err != nil {
			return err
		}
	}
	if strings.HasSuffix(path, ".svg") {
		return t.fromSVG(data)
	}
	return t.fromRaster(data)
}

func (t *Texture) fromSVG(data []byte) error {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))
	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(renderSize, renderSize, scanner), 1.0)
	t.rgba = rgba
	return nil
}

func (t *Texture) fromRaster(data []byte) error {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	t.rgba = rgba
	return nil
}

// Bounds returns the rasterized pixel bounds.
func (t *Texture) Bounds() image.Rectangle {
	return t.rgba.Bounds()
}

// Image returns the texture as an Ebitengine image, creating it on first
// use so loading never requires a graphics context.
func (t *Texture) Image() *ebiten.Image {
	if t.img == nil {
		t.img = ebiten.NewImageFromImage(t.rgba)
	}
	return t.img
}
