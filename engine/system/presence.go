package system

import "github.com/milk9111/stagerunner/engine"

// StagePresenceSystem commits the arrival on a new stage once its scroll has
// finished and publishes it.
type StagePresenceSystem struct{}

func NewStagePresenceSystem() *StagePresenceSystem {
	return &StagePresenceSystem{}
}

func (s *StagePresenceSystem) Update(ctx *engine.Context) {
	if ctx == nil || ctx.Transition.Active() {
		return
	}
	p := &ctx.Player
	if p.Stage == p.LastStage {
		return
	}
	p.LastStage = p.Stage
	ctx.Log.Debug("entered stage", "stage", p.Stage)
	ctx.SetPresence("In Game", ctx.GameDetails())
}
