package system

import (
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/engine"
)

const (
	halfWidth = common.PlayerWidth / 2.0
	// RightTrigger and LeftTrigger are the x positions at which the player
	// leaves a stage.
	RightTrigger = common.BaseWidth - halfWidth
	LeftTrigger  = -halfWidth
)

// StageBoundarySystem keeps the player inside the stage and arms a scroll to
// the neighbouring stage the first time an edge is crossed.
type StageBoundarySystem struct{}

func NewStageBoundarySystem() *StageBoundarySystem {
	return &StageBoundarySystem{}
}

func (s *StageBoundarySystem) Update(ctx *engine.Context) {
	if ctx == nil {
		return
	}
	p := &ctx.Player
	t := &ctx.Transition
	count := ctx.StageCount()
	// a crossing arms only once per arrival; until LastStage catches up the
	// edge behaves like a wall
	canArm := !t.Active() && p.Stage == p.LastStage

	if p.Stage < count {
		if p.Pos.X >= RightTrigger {
			if canArm {
				t.Delta = 1
				return
			}
			p.Pos.X = RightTrigger
		}
	} else if p.Pos.X > common.BaseWidth-common.PlayerWidth {
		p.Pos.X = common.BaseWidth - common.PlayerWidth
	}

	if p.Stage > 1 {
		if p.Pos.X <= LeftTrigger {
			if canArm {
				t.Delta = -1
				return
			}
			p.Pos.X = LeftTrigger
		}
	} else if p.Pos.X < 1 {
		p.Pos.X = 1
	}
}
