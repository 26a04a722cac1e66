package system

import (
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/engine"
)

// GravitySystem integrates vertical motion and lands the player on the floor.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (s *GravitySystem) Update(ctx *engine.Context) {
	if ctx == nil {
		return
	}
	p := &ctx.Player
	p.Pos.Y += p.VelocityY * common.Delta
	if p.Pos.Y < common.FloorY {
		if p.Jump != engine.JumpFalling && p.VelocityY > common.TerminalVelocity {
			p.Jump = engine.JumpFalling
		}
		p.VelocityY += common.Gravity * common.Delta
		return
	}
	land(p)
}

func land(p *engine.PlayerState) {
	p.Pos.Y = common.FloorY
	p.Jump = engine.JumpGrounded
	p.VelocityY = 0
}
