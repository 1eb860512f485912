package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	labelFace *text.GoTextFace
	titleFace *text.GoTextFace
)

const (
	labelFontSize = 14.0
	titleFontSize = 28.0
)

func init() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Warning: Failed to load regular font: %v", err)
	} else {
		labelFace = &text.GoTextFace{Source: regular, Size: labelFontSize}
	}

	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Warning: Failed to load bold font: %v", err)
	} else {
		titleFace = &text.GoTextFace{Source: bold, Size: titleFontSize}
	}
}

// faceWithSize returns the label face resized, or nil if fonts failed to load.
func faceWithSize(size float64) *text.GoTextFace {
	if labelFace == nil {
		return nil
	}
	return &text.GoTextFace{Source: labelFace.Source, Size: size}
}

// measure returns the rendered width and height of s in the given face.
func measure(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
