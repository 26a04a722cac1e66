package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/engine"
)

// SpectatorSystem mirrors the followed player from the newest received
// sample. It never waits for one.
type SpectatorSystem struct{}

func NewSpectatorSystem() *SpectatorSystem {
	return &SpectatorSystem{}
}

func (s *SpectatorSystem) Update(ctx *engine.Context) {
	if ctx == nil || ctx.Network == nil {
		return
	}
	sample, ok := ctx.Network.Latest()
	if !ok {
		return
	}
	p := &ctx.Player
	switch {
	case sample.X < p.Pos.X:
		p.Facing = engine.FacingLeft
	case sample.X > p.Pos.X:
		p.Facing = engine.FacingRight
	}
	if count := ctx.StageCount(); count > 0 {
		p.Stage = common.ClampInt(sample.Stage, 1, count)
	} else {
		p.Stage = sample.Stage
	}
	p.Pos = cp.Vector{X: sample.X, Y: sample.Y}
}
