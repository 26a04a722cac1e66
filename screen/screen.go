// Package screen holds the concrete screens of the state machine.
package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/stagerunner/assets"
	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/gfx"
)

// Presence texts shown while outside the game.
const (
	stateMenu       = "In Main Menu"
	stateGame       = "In Game"
	detailsIdle     = "Wasting some time"
	detailsSettings = "Changing some options"
)

// All builds one screen per mode. face is used for UI panels and may be nil.
func All(face text.Face) map[engine.Mode]engine.Screen {
	return map[engine.Mode]engine.Screen{
		engine.ModeGame:    NewGame(),
		engine.ModeMenu:    NewMenu(),
		engine.ModeOptions: NewOptions(),
		engine.ModeDialog:  NewDialog(face),
	}
}

// drawBackdrop paints the dimmed menu background shared by every non-game
// screen.
func drawBackdrop(ctx *engine.Context, dst gfx.Surface) {
	dst.Clear(assets.MenuColor)
	if ctx.Art == nil {
		return
	}
	if ctx.Art.MenuBackground != nil {
		dst.DrawSurface(ctx.Art.MenuBackground, 0, 0, false)
	}
	if ctx.Art.Overlay != nil {
		dst.DrawSurface(ctx.Art.Overlay, 0, 0, false)
	}
}

// button draws a menu button, outlined in the highlight color when selected.
func button(dst gfx.Surface, label string, r gfx.Rect, selected bool) {
	border := color.Color(assets.ButtonColor)
	if selected {
		border = assets.HighlightColor
	}
	gfx.Button(dst, gfx.FontButton, label, r, assets.TextColor, assets.ButtonColor, border)
}

// hitRect is the clickable area of a button drawn at r. It is two pixels
// shorter than the drawn button.
func hitRect(r gfx.Rect) gfx.Rect {
	r.H -= 2
	return r
}
