package screen

import (
	"fmt"
	"image/color"

	"github.com/milk9111/stagerunner/assets"
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/engine/system"
	"github.com/milk9111/stagerunner/gfx"
)

const counterLines = 5

// Game runs the simulation. Which scheduler drives the player depends on
// whether this game is played, demoed or spectated.
type Game struct {
	play     *engine.Scheduler
	demo     *engine.Scheduler
	spectate *engine.Scheduler
	tail     *engine.Scheduler

	counterText [counterLines]string
	counters    [counterLines]gfx.Surface
}

func NewGame() *Game {
	g := &Game{}
	g.play = engine.NewScheduler(
		system.NewPlayerControlSystem(),
		system.NewGravitySystem(),
		system.NewStageBoundarySystem(),
		system.NewNetSyncSystem(),
	)
	g.demo = engine.NewScheduler(system.NewDemoSystem())
	g.spectate = engine.NewScheduler(system.NewSpectatorSystem())
	g.tail = engine.NewScheduler(
		system.NewTransitionSystem(g),
		system.NewStagePresenceSystem(),
	)
	return g
}

func (g *Game) Name() string { return "game" }

func (g *Game) Enter(ctx *engine.Context) {
	ctx.SetPresence(stateGame, ctx.GameDetails())
	if ctx.Music != nil {
		ctx.Music.Resume()
	}
}

func (g *Game) Exit(ctx *engine.Context) {
	if ctx.Music != nil {
		ctx.Music.Pause()
	}
	g.releaseCounters()
}

func (g *Game) Update(ctx *engine.Context) {
	switch {
	case ctx.Spectating:
		g.spectate.Update(ctx)
	case ctx.Demo:
		g.demo.Update(ctx)
	default:
		g.play.Update(ctx)
	}
	g.tail.Update(ctx)

	if ctx.ShowCounter {
		g.refreshCounters(ctx)
	} else {
		g.releaseCounters()
	}
}

func (g *Game) Draw(ctx *engine.Context, dst gfx.Surface) {
	if ctx.Transition.Active() && ctx.Transition.Front != nil {
		system.DrawTransition(ctx.Transition, dst)
	} else {
		g.PaintStage(ctx, dst)
	}
	if ctx.ShowCounter {
		g.drawCounters(ctx, dst)
	}
}

// PaintStage draws the player's current stage: background, decorations and
// the player sprite.
func (g *Game) PaintStage(ctx *engine.Context, dst gfx.Surface) {
	dst.Clear(assets.SkyColor)
	var bg gfx.Surface
	if ctx.Art != nil {
		bg = ctx.Art.Background
	}
	ctx.Layout.Paint(dst, ctx.Player.Stage, bg, assets.DecorationColor)

	p := ctx.Player
	r := gfx.Rect{X: float32(p.Pos.X), Y: float32(p.Pos.Y), W: common.PlayerWidth, H: common.PlayerHeight}
	if ctx.Art != nil && ctx.Art.Player != nil {
		dst.DrawSprite(ctx.Art.Player, r, p.Facing == engine.FacingLeft)
		return
	}
	dst.FillRect(r, color.NRGBA{R: 0xd0, G: 0x3a, B: 0x2f, A: 0xff})
}

func counterStrings(ctx *engine.Context) [counterLines]string {
	p := ctx.Player
	return [counterLines]string{
		"X: " + twoPlaces(p.Pos.X),
		"Y: " + twoPlaces(p.Pos.Y),
		fmt.Sprintf("Frame: %d/%d", p.Stage, ctx.StageCount()),
		fmt.Sprintf("Jump state: %d", p.Jump),
		"Velocity: " + twoPlaces(p.VelocityY),
	}
}

func twoPlaces(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// refreshCounters re-renders only the lines whose text changed.
func (g *Game) refreshCounters(ctx *engine.Context) {
	if ctx.Factory == nil {
		return
	}
	for i, s := range counterStrings(ctx) {
		if g.counters[i] != nil && g.counterText[i] == s {
			continue
		}
		gfx.Dispose(g.counters[i])
		g.counters[i] = gfx.RenderText(ctx.Factory, gfx.FontCounter, s, color.Black)
		g.counterText[i] = s
	}
}

func (g *Game) releaseCounters() {
	for i := range g.counters {
		gfx.Dispose(g.counters[i])
		g.counters[i] = nil
		g.counterText[i] = ""
	}
}

func (g *Game) drawCounters(ctx *engine.Context, dst gfx.Surface) {
	for i := range g.counters {
		y := float64(4 + 18*(i+1))
		if g.counters[i] != nil {
			dst.DrawSurface(g.counters[i], 10, y, false)
			continue
		}
		// nothing cached yet, e.g. the counter was switched on this tick
		dst.DrawText(counterStrings(ctx)[i], gfx.FontCounter, 10, y, color.Black)
	}
}
