package system

import (
	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/netsync"
)

// NetSyncSystem publishes the local player's position whenever it moves.
type NetSyncSystem struct{}

func NewNetSyncSystem() *NetSyncSystem {
	return &NetSyncSystem{}
}

func (s *NetSyncSystem) Update(ctx *engine.Context) {
	if ctx == nil || ctx.Spectating || !ctx.Connected() {
		return
	}
	p := &ctx.Player
	if p.Pos.Equal(p.LastSent) {
		return
	}
	p.LastSent = p.Pos
	err := ctx.Network.Send(netsync.Sample{Stage: p.Stage, X: p.Pos.X, Y: p.Pos.Y})
	if err == nil {
		return
	}
	ctx.Log.Warn("send position", "error", err)
	ctx.ShowDialog(netsync.Describe(netsync.KindConnect, err), "OK")
	ctx.Connect()
}
