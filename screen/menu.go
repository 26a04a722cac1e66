package screen

import (
	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/gfx"
	"github.com/milk9111/stagerunner/input"
)

const menuEntries = 3

var menuButtons = [menuEntries]gfx.Rect{
	{X: 300, Y: 200, W: 200, H: 50},
	{X: 300, Y: 260, W: 200, H: 50},
	{X: 300, Y: 320, W: 200, H: 50},
}

type Menu struct{}

func NewMenu() *Menu {
	return &Menu{}
}

func (m *Menu) Name() string { return "menu" }

func (m *Menu) Enter(ctx *engine.Context) {
	ctx.SetPresence(stateMenu, detailsIdle)
	// hovering selects only after the mouse moves
	ctx.Menu.LastMouseX, ctx.Menu.LastMouseY = ctx.Input.MouseX, ctx.Input.MouseY
	if ctx.Menu.Selected < 1 || ctx.Menu.Selected > menuEntries {
		ctx.Menu.Selected = 1
	}
}

func (m *Menu) Exit(ctx *engine.Context) {}

func (m *Menu) Update(ctx *engine.Context) {
	in := ctx.Input
	st := &ctx.Menu

	if ctx.Latches.Pressed(in, input.LatchOption, input.KeyUp) {
		st.Selected--
		if st.Selected < 1 {
			st.Selected = menuEntries
		}
	} else if ctx.Latches.Pressed(in, input.LatchOption, input.KeyDown) {
		st.Selected++
		if st.Selected > menuEntries {
			st.Selected = 1
		}
	}

	if in.MouseX != st.LastMouseX || in.MouseY != st.LastMouseY {
		st.LastMouseX, st.LastMouseY = in.MouseX, in.MouseY
		if i, ok := menuHit(in.MouseX, in.MouseY); ok {
			st.Selected = i
		}
	}

	if ctx.Latches.Pressed(in, input.LatchEnter, input.KeyEnter) {
		activate(ctx, st.Selected)
		return
	}
	if ctx.Latches.Clicked(in) {
		if i, ok := menuHit(in.MouseX, in.MouseY); ok {
			activate(ctx, i)
		}
	}
}

func (m *Menu) Draw(ctx *engine.Context, dst gfx.Surface) {
	drawBackdrop(ctx, dst)
	labels := [menuEntries]string{"Play", "Options", "Exit"}
	if ctx.Playing {
		labels[0] = "Back to game"
	}
	for i, r := range menuButtons {
		button(dst, labels[i], r, ctx.Menu.Selected == i+1)
	}
}

// menuHit returns the 1-based entry under (x, y).
func menuHit(x, y int) (int, bool) {
	for i, r := range menuButtons {
		if hitRect(r).Contains(x, y) {
			return i + 1, true
		}
	}
	return 0, false
}

func activate(ctx *engine.Context, entry int) {
	switch entry {
	case 1:
		ctx.Playing = true
		ctx.Mode = engine.ModeGame
	case 2:
		ctx.Mode = engine.ModeOptions
	case 3:
		ctx.Mode = engine.ModeExiting
	}
}
