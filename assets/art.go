package assets

import (
	"image/color"

	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/gfx"
)

var (
	SkyColor        = color.NRGBA{R: 0x5c, G: 0x94, B: 0xfc, A: 0xff}
	HillColor       = color.NRGBA{R: 0x3a, G: 0x7d, B: 0x44, A: 0xff}
	MenuColor       = color.NRGBA{R: 0x1b, G: 0x1b, B: 0x2f, A: 0xff}
	DecorationColor = color.NRGBA{A: 0xff}
	OverlayColor    = color.NRGBA{A: 0xa0}
	ButtonColor     = color.NRGBA{R: 0x2e, G: 0x8b, B: 0x3a, A: 0xff}
	HighlightColor  = color.NRGBA{R: 0xc8, G: 0x2a, B: 0x2a, A: 0xff}
	TextColor       = color.White
)

// Art holds the textures drawn every frame. Everything is painted
// procedurally at startup so the binary carries no image files.
type Art struct {
	Background     gfx.Surface
	MenuBackground gfx.Surface
	Player         gfx.Surface
	Overlay        gfx.Surface
}

func NewArt(fac gfx.Factory) *Art {
	if fac == nil {
		return nil
	}
	return &Art{
		Background:     paintBackground(fac),
		MenuBackground: paintMenuBackground(fac),
		Player:         paintPlayer(fac),
		Overlay:        paintOverlay(fac),
	}
}

func (a *Art) Dispose() {
	if a == nil {
		return
	}
	gfx.Dispose(a.Background, a.MenuBackground, a.Player, a.Overlay)
	*a = Art{}
}

func paintBackground(fac gfx.Factory) gfx.Surface {
	s := fac.NewSurface(common.BaseWidth, common.BaseHeight)
	s.Clear(SkyColor)
	// hills get taller to the right so flipped stages read differently
	for i := 0; i < 5; i++ {
		h := float32(60 + i*25)
		s.FillRect(gfx.Rect{X: float32(i * 160), Y: common.BaseHeight - h, W: 160, H: h}, HillColor)
	}
	return s
}

func paintMenuBackground(fac gfx.Factory) gfx.Surface {
	s := fac.NewSurface(common.BaseWidth, common.BaseHeight)
	s.Clear(MenuColor)
	s.FillRect(gfx.Rect{X: 250, Y: 180, W: 300, H: 210}, color.NRGBA{R: 0x26, G: 0x26, B: 0x40, A: 0xff})
	return s
}

func paintPlayer(fac gfx.Factory) gfx.Surface {
	s := fac.NewSurface(common.PlayerWidth, common.PlayerHeight)
	s.Clear(color.Transparent)
	body := color.NRGBA{R: 0xd0, G: 0x3a, B: 0x2f, A: 0xff}
	skin := color.NRGBA{R: 0xf5, G: 0xc6, B: 0x9a, A: 0xff}
	s.FillRect(gfx.Rect{X: 9, Y: 0, W: 20, H: 16}, skin)
	// eye on the right; flipping the sprite faces it left
	s.FillRect(gfx.Rect{X: 22, Y: 5, W: 3, H: 3}, color.Black)
	s.FillRect(gfx.Rect{X: 5, Y: 16, W: 28, H: 20}, body)
	s.FillRect(gfx.Rect{X: 7, Y: 36, W: 9, H: 12}, color.NRGBA{R: 0x22, G: 0x22, B: 0x66, A: 0xff})
	s.FillRect(gfx.Rect{X: 22, Y: 36, W: 9, H: 12}, color.NRGBA{R: 0x22, G: 0x22, B: 0x66, A: 0xff})
	return s
}

func paintOverlay(fac gfx.Factory) gfx.Surface {
	s := fac.NewSurface(common.BaseWidth, common.BaseHeight)
	s.Clear(OverlayColor)
	return s
}
