package system

import (
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/gfx"
)

// StagePainter draws a full frame of the player's current stage.
type StagePainter interface {
	PaintStage(ctx *engine.Context, dst gfx.Surface)
}

// TransitionSystem animates an armed stage change by sliding a snapshot of
// the old stage out and a snapshot of the new one in.
type TransitionSystem struct {
	painter StagePainter
}

func NewTransitionSystem(painter StagePainter) *TransitionSystem {
	return &TransitionSystem{painter: painter}
}

const scrollStep = common.BaseWidth / common.ScrollTicks

func (s *TransitionSystem) Update(ctx *engine.Context) {
	if ctx == nil {
		return
	}
	t := &ctx.Transition
	if t.Delta == 0 {
		return
	}
	if t.Front == nil {
		s.arm(ctx)
		return
	}
	t.ScrollOffset -= t.Delta * scrollStep
	if common.AbsInt(t.ScrollOffset) >= common.BaseWidth {
		t.Release()
	}
}

func (s *TransitionSystem) arm(ctx *engine.Context) {
	t := &ctx.Transition
	p := &ctx.Player

	t.Front = s.snapshot(ctx)
	p.Stage += t.Delta
	p.Pos.X -= float64(t.Delta * common.BaseWidth)
	// land strictly inside the new stage so the opposite edge does not fire
	p.Pos.X = common.Clamp(p.Pos.X, LeftTrigger+1, RightTrigger-1)
	t.Back = s.snapshot(ctx)
	t.ScrollOffset = 0

	if t.Front == nil || t.Back == nil {
		// nothing to animate with
		t.Release()
	}
}

func (s *TransitionSystem) snapshot(ctx *engine.Context) gfx.Surface {
	if ctx.Factory == nil || s.painter == nil {
		return nil
	}
	buf := ctx.Factory.NewSurface(common.BaseWidth, common.BaseHeight)
	s.painter.PaintStage(ctx, buf)
	return buf
}

// DrawTransition blits both cached stages at the current scroll offset.
func DrawTransition(t engine.StageTransition, dst gfx.Surface) {
	if !t.Active() || t.Front == nil || t.Back == nil {
		return
	}
	dst.DrawSurface(t.Front, float64(t.ScrollOffset), 0, false)
	dst.DrawSurface(t.Back, float64(t.ScrollOffset+t.Delta*common.BaseWidth), 0, false)
}
