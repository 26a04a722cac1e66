package screen

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/stagerunner/assets"
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/gfx"
	"github.com/milk9111/stagerunner/input"
)

const dialogTextY = 260

var dialogButton = gfx.Rect{X: 300, Y: 300, W: 200, H: 50}

// Dialog shows a message with an optional dismiss button.
type Dialog struct {
	face text.Face

	// message panel, rebuilt when the message changes
	ui      *ebitenui.UI
	uiText  string
	msg     gfx.Surface
	msgText string
}

// NewDialog returns a dialog screen. face renders the message panel when the
// target is an ebiten image; a nil face falls back to plain surfaces.
func NewDialog(face text.Face) *Dialog {
	return &Dialog{face: face}
}

func (d *Dialog) Name() string { return "dialog" }

func (d *Dialog) Enter(ctx *engine.Context) {
	ctx.SetPresence(stateMenu, detailsIdle)
}

func (d *Dialog) Exit(ctx *engine.Context) {
	gfx.Dispose(d.msg)
	d.msg, d.msgText = nil, ""
	d.ui, d.uiText = nil, ""
}

func (d *Dialog) Update(ctx *engine.Context) {
	if ctx.Factory != nil && (d.msg == nil || d.msgText != ctx.Dialog.Message) {
		gfx.Dispose(d.msg)
		d.msg = gfx.RenderText(ctx.Factory, gfx.FontButton, ctx.Dialog.Message, assets.TextColor)
		d.msgText = ctx.Dialog.Message
	}

	if !ctx.Dialog.Dismissable() {
		return
	}
	in := ctx.Input
	if ctx.Latches.Pressed(in, input.LatchEnter, input.KeyEnter) {
		ctx.Mode = engine.ModeMenu
		return
	}
	if ctx.Latches.Clicked(in) && hitRect(dialogButton).Contains(in.MouseX, in.MouseY) {
		ctx.Mode = engine.ModeMenu
	}
}

func (d *Dialog) Draw(ctx *engine.Context, dst gfx.Surface) {
	drawBackdrop(ctx, dst)
	d.drawMessage(ctx, dst)
	if ctx.Dialog.Dismissable() {
		button(dst, ctx.Dialog.Button, dialogButton, true)
	}
}

func (d *Dialog) drawMessage(ctx *engine.Context, dst gfx.Surface) {
	message := ctx.Dialog.Message
	if im, ok := dst.(gfx.Imager); ok && d.face != nil && im.Image() != nil {
		if d.ui == nil || d.uiText != message {
			d.ui = d.panel(message)
			d.uiText = message
		}
		d.ui.Draw(im.Image())
		return
	}

	if d.msg != nil && d.msgText == message {
		w, h := d.msg.Size()
		dst.DrawSurface(d.msg, float64(common.BaseWidth-w)/2, dialogTextY-float64(h)/2, false)
		return
	}
	w, h := dst.MeasureText(message, gfx.FontButton)
	dst.DrawText(message, gfx.FontButton, (common.BaseWidth-w)/2, dialogTextY-h/2, assets.TextColor)
}

// panel builds a centered, dimmed strip holding message.
func (d *Dialog) panel(message string) *ebitenui.UI {
	face := d.face
	label := widget.NewText(
		widget.TextOpts.Text(message, &face, assets.TextColor),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	strip := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 0x80})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)
	strip.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: dialogTextY - 20}),
		)),
	)
	root.AddChild(strip)

	return &ebitenui.UI{Container: root}
}
