package system

import (
	"fmt"
	"syscall"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/netsync"
)

func TestNetSyncSendsOnMove(t *testing.T) {
	ctx, _ := newGameContext(t)
	net := &fakeNetwork{connected: true}
	ctx.Network = net
	sys := NewNetSyncSystem()

	sys.Update(ctx)
	sys.Update(ctx)
	if len(net.sent) != 1 {
		t.Fatalf("expected one send for one position, got %d", len(net.sent))
	}
	ctx.Player.Pos.X += 4
	sys.Update(ctx)
	if len(net.sent) != 2 || net.sent[1].X != ctx.Player.Pos.X || net.sent[1].Stage != 1 {
		t.Fatalf("unexpected samples %+v", net.sent)
	}
}

func TestNetSyncSkipsWhenIdle(t *testing.T) {
	cases := []struct {
		name       string
		connected  bool
		spectating bool
	}{
		{"disconnected", false, false},
		{"spectating", true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx, _ := newGameContext(t)
			net := &fakeNetwork{connected: c.connected}
			ctx.Network = net
			ctx.Spectating = c.spectating
			NewNetSyncSystem().Update(ctx)
			if len(net.sent) != 0 {
				t.Fatalf("nothing should be sent")
			}
		})
	}
}

func TestNetSyncWriteFailureShowsDialog(t *testing.T) {
	ctx, _ := newGameContext(t)
	net := &fakeNetwork{
		connected: true,
		sendErr:   &netsync.Error{Code: int(syscall.EPIPE), Place: netsync.PlaceWrite, Err: syscall.EPIPE},
	}
	ctx.Network = net

	NewNetSyncSystem().Update(ctx)
	if ctx.Mode != engine.ModeDialog {
		t.Fatalf("expected dialog, got %v", ctx.Mode)
	}
	want := fmt.Sprintf("Error while communicating with the server (%d at 2)", int(syscall.EPIPE))
	if ctx.Dialog.Message != want || ctx.Dialog.Button == "" {
		t.Fatalf("unexpected dialog %+v", ctx.Dialog)
	}
	if len(net.handshakes) != 1 || net.handshakes[0] != netsync.KindConnect {
		t.Fatalf("connect handshake not re-armed: %v", net.handshakes)
	}
}

func TestSpectatorMirrorsNewestSample(t *testing.T) {
	ctx, _ := newGameContext(t)
	net := &fakeNetwork{latest: []netsync.Sample{{Stage: 2, X: 10, Y: 20}, {Stage: 9, X: 5, Y: 500}}}
	ctx.Network = net
	ctx.Spectating = true
	ctx.Player.Pos = cp.Vector{X: 100, Y: 552}
	spectator := NewSpectatorSystem()

	spectator.Update(ctx)
	p := ctx.Player
	if p.Stage != 3 || p.Pos.X != 5 || p.Pos.Y != 500 || p.Facing != engine.FacingLeft {
		t.Fatalf("unexpected player %+v", p)
	}
	spectator.Update(ctx)
	if ctx.Player.Pos.X != 5 {
		t.Fatalf("no new sample should leave the player alone")
	}
}

func TestStagePresenceCommitsOnce(t *testing.T) {
	ctx, _ := newGameContext(t)
	pres := &fakePresence{}
	ctx.Presence = pres
	ctx.Player.Stage = 2
	presenceSys := NewStagePresenceSystem()

	ctx.Transition.Delta = 1
	presenceSys.Update(ctx)
	if ctx.Player.LastStage != 1 {
		t.Fatalf("must wait for the scroll to finish")
	}
	ctx.Transition.Delta = 0
	presenceSys.Update(ctx)
	presenceSys.Update(ctx)
	if ctx.Player.LastStage != 2 || len(pres.updates) != 1 {
		t.Fatalf("last=%d updates=%d", ctx.Player.LastStage, len(pres.updates))
	}
	if pres.updates[0].State != "In Game" || pres.updates[0].Details != "Stage 2" {
		t.Fatalf("unexpected activity %+v", pres.updates[0])
	}
}
