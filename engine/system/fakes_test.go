package system

import (
	"testing"

	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/gfx"
	"github.com/milk9111/stagerunner/netsync"
	"github.com/milk9111/stagerunner/presence"
	"github.com/milk9111/stagerunner/stages"
)

type fakeNetwork struct {
	connected  bool
	sendErr    error
	sent       []netsync.Sample
	latest     []netsync.Sample
	handshakes []netsync.Kind
}

func (n *fakeNetwork) Connected() bool { return n.connected }

func (n *fakeNetwork) Send(s netsync.Sample) error {
	n.sent = append(n.sent, s)
	if n.sendErr != nil {
		n.connected = false
	}
	return n.sendErr
}

func (n *fakeNetwork) Latest() (netsync.Sample, bool) {
	if len(n.latest) == 0 {
		return netsync.Sample{}, false
	}
	s := n.latest[len(n.latest)-1]
	n.latest = nil
	return s, true
}

func (n *fakeNetwork) StartHandshake(kind netsync.Kind, secret string) bool {
	n.handshakes = append(n.handshakes, kind)
	return true
}

func (n *fakeNetwork) Poll() (netsync.Event, bool) { return netsync.Event{}, false }
func (n *fakeNetwork) Close() error                { return nil }

type fakePresence struct {
	presence.Nop
	updates []presence.Activity
}

func (p *fakePresence) Update(a presence.Activity) {
	p.updates = append(p.updates, a)
}

type fakePainter struct {
	painted []int
}

func (p *fakePainter) PaintStage(ctx *engine.Context, dst gfx.Surface) {
	p.painted = append(p.painted, ctx.Player.Stage)
	dst.Clear(nil)
}

func newGameContext(t *testing.T) (*engine.Context, *gfx.Recorder) {
	t.Helper()
	layout, err := stages.Load()
	if err != nil {
		t.Fatalf("load stages: %v", err)
	}
	rec := gfx.NewRecorder()
	ctx := engine.NewContext()
	ctx.Mode = engine.ModeGame
	ctx.PrevMode = engine.ModeGame
	ctx.Playing = true
	ctx.Layout = layout
	ctx.Factory = rec
	return ctx, rec
}
