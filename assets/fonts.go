package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/stagerunner/gfx"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	ButtonFontSize  = 24
	CounterFontSize = 14
)

// LoadFaces builds the faces used for buttons and counters. A missing or
// corrupt font is a startup error.
func LoadFaces() (gfx.Faces, error) {
	button, err := loadFace(goregular.TTF, ButtonFontSize)
	if err != nil {
		return nil, fmt.Errorf("assets: load button font: %w", err)
	}
	counter, err := loadFace(gomono.TTF, CounterFontSize)
	if err != nil {
		return nil, fmt.Errorf("assets: load counter font: %w", err)
	}
	return gfx.Faces{
		gfx.FontButton:  button,
		gfx.FontCounter: counter,
	}, nil
}

// BasicFace is the fixed-size fallback face used by UI panels.
func BasicFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

func loadFace(ttf []byte, size float64) (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}
