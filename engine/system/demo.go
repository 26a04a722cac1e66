package system

import (
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/engine"
)

// DemoSystem plays the game on its own: it walks, jumps as soon as it lands,
// double jumps near the top of each jump and turns around at the outer ends
// of the first and last stages. Stage edges arm a scroll whenever none is
// running.
type DemoSystem struct{}

func NewDemoSystem() *DemoSystem {
	return &DemoSystem{}
}

func (s *DemoSystem) Update(ctx *engine.Context) {
	if ctx == nil {
		return
	}
	p := &ctx.Player
	t := &ctx.Transition

	if !t.Active() {
		if p.DemoLeft {
			p.Facing = engine.FacingLeft
			p.Pos.X -= common.Speed * common.Delta
		} else {
			p.Facing = engine.FacingRight
			p.Pos.X += common.Speed * common.Delta
		}
	}

	p.Pos.Y += p.VelocityY * common.Delta
	switch {
	case p.Pos.Y < common.FloorY:
		if p.Jump == engine.JumpFirst && p.VelocityY > 100 {
			p.VelocityY = -2 * common.JumpStrength
			p.Jump = engine.JumpSecond
		}
		if p.Jump != engine.JumpFalling && p.VelocityY > common.TerminalVelocity {
			p.Jump = engine.JumpFalling
		}
		p.VelocityY += common.Gravity * common.Delta
	case p.Jump > engine.JumpGrounded:
		land(p)
	default:
		p.Pos.Y = common.FloorY
		p.Jump = engine.JumpFirst
		p.VelocityY = -common.JumpStrength
	}

	count := ctx.StageCount()
	if p.Stage < count {
		if p.Pos.X >= RightTrigger && !t.Active() {
			t.Delta = 1
		}
	} else if p.Pos.X > common.BaseWidth-common.PlayerWidth {
		p.Pos.X = common.BaseWidth - common.PlayerWidth
		p.DemoLeft = true
	}
	if p.Stage > 1 {
		if p.Pos.X <= LeftTrigger && !t.Active() {
			t.Delta = -1
		}
	} else if p.Pos.X < 1 {
		p.Pos.X = 1
		p.DemoLeft = false
	}
}
