package screen

import (
	"fmt"
	"image/color"

	"github.com/milk9111/stagerunner/assets"
	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/gfx"
	"github.com/milk9111/stagerunner/input"
)

// Volume trackbar geometry. The track spans TrackX..TrackX+TrackWidth and
// one pixel of track is one percent of volume.
const (
	TrackX      = 130
	TrackWidth  = 100
	trackY      = 300
	trackGrab   = 10
	handleW     = 10
	handleH     = 20
	labelY      = 250
	trackHeight = 4
)

var backButton = gfx.Rect{X: 300, Y: 400, W: 200, H: 50}

// Options edits the music volume.
type Options struct {
	label gfx.Surface
	track gfx.Surface
}

func NewOptions() *Options {
	return &Options{}
}

func (o *Options) Name() string { return "options" }

func (o *Options) Enter(ctx *engine.Context) {
	ctx.SetPresence(stateMenu, detailsSettings)
	ctx.Options.Dragging = false
	if ctx.Factory == nil {
		return
	}
	o.label = gfx.RenderText(ctx.Factory, gfx.FontButton, "Volume", assets.TextColor)
	o.track = ctx.Factory.NewSurface(TrackWidth+handleW, handleH)
	o.track.Clear(color.Transparent)
	o.track.FillRect(gfx.Rect{X: handleW / 2, Y: (handleH - trackHeight) / 2, W: TrackWidth, H: trackHeight}, assets.TextColor)
}

func (o *Options) Exit(ctx *engine.Context) {
	gfx.Dispose(o.label, o.track)
	o.label, o.track = nil, nil
	ctx.Options.Dragging = false
	if ctx.Store == nil {
		return
	}
	if err := ctx.Store.Save(ctx.OptionsSnapshot()); err != nil {
		ctx.Log.Error("save options", "error", err)
	}
}

func (o *Options) Update(ctx *engine.Context) {
	in := ctx.Input
	st := &ctx.Options

	if ctx.Latches.Pressed(in, input.LatchEnter, input.KeyEnter) {
		ctx.Mode = engine.ModeMenu
		return
	}
	if in.Down(input.KeyLeft) {
		ctx.SetVolume(st.Volume - 1)
	}
	if in.Down(input.KeyRight) {
		ctx.SetVolume(st.Volume + 1)
	}

	if ctx.Latches.Clicked(in) {
		switch {
		case onHandle(in.MouseX, in.MouseY, st.Volume):
			st.Dragging = true
		case onTrack(in.MouseX, in.MouseY):
			ctx.SetVolume(in.MouseX - TrackX)
		case hitRect(backButton).Contains(in.MouseX, in.MouseY):
			ctx.Mode = engine.ModeMenu
			return
		}
	}

	if st.Dragging {
		if !in.MouseLeft {
			st.Dragging = false
			return
		}
		ctx.SetVolume(in.MouseX - TrackX)
	}
}

func (o *Options) Draw(ctx *engine.Context, dst gfx.Surface) {
	drawBackdrop(ctx, dst)
	if o.label != nil {
		dst.DrawSurface(o.label, TrackX, labelY, false)
	} else {
		dst.DrawText("Volume", gfx.FontButton, TrackX, labelY, assets.TextColor)
	}
	top := float64(trackY - handleH/2)
	if o.track != nil {
		dst.DrawSurface(o.track, TrackX-handleW/2, top, false)
	} else {
		dst.FillRect(gfx.Rect{X: TrackX, Y: trackY - trackHeight/2, W: TrackWidth, H: trackHeight}, assets.TextColor)
	}
	vol := ctx.Options.Volume
	handle := gfx.Rect{X: float32(TrackX + vol - handleW/2), Y: float32(top), W: handleW, H: handleH}
	fill := color.Color(assets.ButtonColor)
	if ctx.Options.Dragging {
		fill = assets.HighlightColor
	}
	dst.FillRect(handle, fill)
	dst.DrawText(fmt.Sprintf("%d%%", vol), gfx.FontButton, TrackX+TrackWidth+20, top-4, assets.TextColor)

	button(dst, "Back", backButton, true)
}

// onTrack reports whether (x, y) is on the trackbar, ends included.
func onTrack(x, y int) bool {
	return x >= TrackX && x <= TrackX+TrackWidth && y >= trackY-trackGrab && y <= trackY+trackGrab
}

func onHandle(x, y, volume int) bool {
	cx := TrackX + volume
	return x >= cx-handleW/2 && x <= cx+handleW/2 && y >= trackY-handleH/2 && y <= trackY+handleH/2
}
