package res

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// blob is a trivial resource recording what it loaded.
type blob struct {
	path  string
	loads int
}

func (b *blob) Load(path string) error {
	b.path = path
	b.loads++
	return nil
}

// brittle always fails to load.
type brittle struct{}

var errBrittle = errors.New("brittle resource")

func (*brittle) Load(path string) error { return errBrittle }

func TestFromCachesPerPathAndType(t *testing.T) {
	m := NewManager()

	first, err := From[blob](m, "a/b.bin")
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if first.path != "a/b.bin" || first.loads != 1 {
		t.Errorf("loaded %q %d times, want a/b.bin once", first.path, first.loads)
	}

	second, err := From[blob](m, "a/b.bin")
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if first != second {
		t.Error("same path and type produced distinct instances")
	}
	if second.loads != 1 {
		t.Errorf("cached resource reloaded: %d loads", second.loads)
	}

	other, err := From[blob](m, "a/c.bin")
	if err != nil {
		t.Fatalf("other path: %v", err)
	}
	if other == first {
		t.Error("distinct paths share an instance")
	}
}

func TestFromFailureNotCached(t *testing.T) {
	m := NewManager()

	if _, err := From[brittle](m, "x"); !errors.Is(err, errBrittle) {
		t.Fatalf("error = %v, want the resource's own error", err)
	}
	if len(m.cache) != 0 {
		t.Error("failed load left a cache entry")
	}
}

func TestFromScopedPerManager(t *testing.T) {
	m1, m2 := NewManager(), NewManager()
	a, _ := From[blob](m1, "p")
	b, _ := From[blob](m2, "p")
	if a == b {
		t.Error("managers share cached instances")
	}
}

func TestTextureLoadsBuiltinSVG(t *testing.T) {
	m := NewManager()

	tex, err := From[Texture](m, "assets/pieces/wK.svg")
	if err != nil {
		t.Fatalf("builtin asset load: %v", err)
	}
	if got := tex.Bounds().Dx(); got != renderSize {
		t.Errorf("rasterized width = %d, want %d", got, renderSize)
	}

	again, err := From[Texture](m, "assets/pieces/wK.svg")
	if err != nil {
		t.Fatalf("cached lookup: %v", err)
	}
	if tex != again {
		t.Error("builtin texture not cached")
	}
}

func TestTextureLoadsEveryBuiltinPiece(t *testing.T) {
	m := NewManager()
	for _, suit := range []string{"w", "b"} {
		for _, kind := range []string{"P", "N", "B", "R", "Q", "K"} {
			path := fmt.Sprintf("assets/pieces/%s%s.svg", suit, kind)
			if _, err := From[Texture](m, path); err != nil {
				t.Errorf("builtin %s: %v", path, err)
			}
		}
	}
}

func TestTextureLoadsDiskPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flag.png")
	src := image.NewRGBA(image.Rect(0, 0, 4, 6))
	src.Set(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	tex, err := From[Texture](NewManager(), path)
	if err != nil {
		t.Fatalf("disk load: %v", err)
	}
	if got := tex.Bounds(); got.Dx() != 4 || got.Dy() != 6 {
		t.Errorf("decoded bounds = %v, want 4x6", got)
	}
}

func TestTextureMissingPath(t *testing.T) {
	if _, err := From[Texture](NewManager(), "assets/pieces/none.svg"); err == nil {
		t.Error("missing asset loaded")
	}
}
