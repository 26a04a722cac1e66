package system

import (
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/input"
)

// PlayerControlSystem applies keyboard input to the local player.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(ctx *engine.Context) {
	if ctx == nil {
		return
	}
	p := &ctx.Player
	in := ctx.Input

	// the scroll animation owns horizontal motion
	if !ctx.Transition.Active() {
		if in.Down(input.KeyLeft) {
			p.Facing = engine.FacingLeft
			p.Pos.X -= common.Speed * common.Delta
		}
		if in.Down(input.KeyRight) {
			p.Facing = engine.FacingRight
			p.Pos.X += common.Speed * common.Delta
		}
	}

	if p.Jump < engine.JumpSecond && ctx.Latches.Pressed(in, input.LatchJump, input.KeyUp) {
		p.Jump++
		strength := common.JumpStrength
		if p.Jump == engine.JumpSecond {
			strength *= 2
		}
		p.VelocityY = -strength
	}
}
