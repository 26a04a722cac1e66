package loop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/gfx"
	"github.com/milk9111/stagerunner/input"
)

// Host adapts a Frame to ebiten.Game.
type Host struct {
	frame   Frame
	src     input.Source
	factory *gfx.EbitenFactory
	screen  *gfx.EbitenSurface
}

func NewHost(frame Frame, src input.Source, factory *gfx.EbitenFactory) *Host {
	if src == nil {
		src = input.Idle
	}
	return &Host{frame: frame, src: src, factory: factory}
}

// ConfigureWindow prepares the window before ebiten.RunGame. Closing the
// window is reported through input so the game can tear down first.
func ConfigureWindow(title string, fps int) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if fps > 0 {
		ebiten.SetTPS(fps)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}
}

func (h *Host) Update() error {
	if h.frame.Done() {
		return ebiten.Termination
	}
	h.frame.Update(h.src.Sample())
	if h.frame.Done() {
		return ebiten.Termination
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	if h.screen == nil || h.screen.Image() != screen {
		h.screen = h.factory.Wrap(screen)
	}
	h.frame.Draw(h.screen)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
