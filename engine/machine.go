package engine

import (
	"fmt"
	"image/color"
	"time"

	"github.com/milk9111/stagerunner/gfx"
	"github.com/milk9111/stagerunner/input"
)

var counterColor = color.Black

// Machine sequences one tick of the game: lifecycle hooks, collaborator
// polling, global input, then the active screen.
type Machine struct {
	ctx     *Context
	screens map[Mode]Screen
	active  Screen

	finished bool

	frames   int
	fps      int
	fpsSince time.Time
	fpsSurf  gfx.Surface
	fpsStale bool
}

func NewMachine(ctx *Context, screens map[Mode]Screen) *Machine {
	return &Machine{
		ctx:      ctx,
		screens:  screens,
		fpsStale: true,
	}
}

func (m *Machine) Context() *Context {
	return m.ctx
}

// Done reports whether teardown has run.
func (m *Machine) Done() bool {
	return m.finished
}

// Active is the screen whose hooks last ran.
func (m *Machine) Active() Screen {
	return m.active
}

func (m *Machine) Update(in input.Snapshot) {
	if m.finished {
		return
	}
	ctx := m.ctx
	if ctx.Mode == ModeExiting {
		m.teardown()
		return
	}
	m.switchScreen()
	m.poll()
	m.countFrame()
	if m.handleGlobalInput(in) {
		return
	}
	// a collaborator may have changed the mode this tick; the new screen
	// takes over on the next one
	if m.active != nil && ctx.Mode == ctx.PrevMode {
		m.active.Update(ctx)
	}
}

func (m *Machine) Draw(dst gfx.Surface) {
	if dst == nil {
		return
	}
	ctx := m.ctx
	if m.finished {
		dst.Clear(color.Black)
		return
	}
	if m.active != nil {
		m.active.Draw(ctx, dst)
	}
	if ctx.ShowCounter {
		m.drawFPS(dst)
	}
}

func (m *Machine) switchScreen() {
	ctx := m.ctx
	if ctx.Mode == ctx.PrevMode && m.active != nil {
		return
	}
	next, ok := m.screens[ctx.Mode]
	if !ok {
		ctx.Log.Error("no screen for mode", "mode", ctx.Mode)
		ctx.Mode = ModeExiting
		return
	}
	if m.active != nil {
		m.active.Exit(ctx)
	}
	ctx.Log.Debug("switching screen", "from", ctx.PrevMode, "to", ctx.Mode)
	ctx.PrevMode = ctx.Mode
	m.active = next
	next.Enter(ctx)
}

func (m *Machine) poll() {
	ctx := m.ctx
	if ctx.Presence != nil {
		ctx.Presence.RunTasks()
	}
	if ctx.Network != nil {
		for {
			ev, ok := ctx.Network.Poll()
			if !ok {
				break
			}
			ctx.HandleNetEvent(ev)
		}
	}
	if ctx.Watcher != nil {
		if opts, ok := ctx.Watcher.Poll(); ok {
			ctx.Log.Debug("options reloaded", "volume", opts.Volume)
			ctx.SetVolume(opts.Volume)
		}
		if err := ctx.Watcher.PollError(); err != nil {
			ctx.Log.Warn("options reload failed", "error", err)
		}
	}
}

// handleGlobalInput applies the inputs every screen shares. It returns true
// when the rest of the tick must be skipped.
func (m *Machine) handleGlobalInput(in input.Snapshot) bool {
	ctx := m.ctx
	ctx.Input = in
	ctx.Latches.Release(in)

	if in.Quit {
		ctx.Mode = ModeExiting
		return true
	}
	if ctx.Latches.Pressed(in, input.LatchCounter, input.KeyCounter) {
		ctx.ShowCounter = !ctx.ShowCounter
	}
	if ctx.Latches.Pressed(in, input.LatchCopy, input.KeyCopySecret) && ctx.Clipboard != nil {
		if err := ctx.Clipboard.Copy(ctx.Secrets.Spectate); err != nil {
			ctx.Log.Warn("copy spectate secret", "error", err)
		} else {
			ctx.Log.Info("spectate secret copied to clipboard")
		}
	}
	if ctx.Latches.Pressed(in, input.LatchEscape, input.KeyEscape) {
		if ctx.Mode == ModeDialog && !ctx.Dialog.Dismissable() {
			return false
		}
		ctx.Mode = escapeTarget(ctx)
		return true
	}
	return false
}

func escapeTarget(ctx *Context) Mode {
	switch {
	case ctx.Demo:
		return ModeExiting
	case ctx.Mode != ModeMenu:
		return ModeMenu
	case ctx.Playing:
		return ModeGame
	default:
		return ModeExiting
	}
}

func (m *Machine) teardown() {
	ctx := m.ctx
	if m.active != nil {
		m.active.Exit(ctx)
		m.active = nil
	}
	ctx.Transition.Release()
	gfx.Dispose(m.fpsSurf)
	m.fpsSurf = nil
	ctx.Art.Dispose()

	if ctx.Store != nil {
		if err := ctx.Store.Save(ctx.OptionsSnapshot()); err != nil {
			ctx.Log.Error("save options", "error", err)
		}
	}
	if ctx.Network != nil {
		if err := ctx.Network.Close(); err != nil {
			ctx.Log.Debug("close relay connection", "error", err)
		}
	}
	if ctx.Presence != nil {
		ctx.Presence.Shutdown()
	}
	if ctx.Music != nil {
		if err := ctx.Music.Close(); err != nil {
			ctx.Log.Debug("close music", "error", err)
		}
	}
	ctx.Log.Debug("teardown complete")
	m.finished = true
}

func (m *Machine) countFrame() {
	now := m.ctx.Now()
	if m.fpsSince.IsZero() {
		m.fpsSince = now
	}
	m.frames++
	if now.Sub(m.fpsSince) >= time.Second {
		m.fps = m.frames
		m.frames = 0
		m.fpsSince = now
		m.fpsStale = true
	}
}

// FPS is the number of ticks counted over the last full second.
func (m *Machine) FPS() int {
	return m.fps
}

func (m *Machine) drawFPS(dst gfx.Surface) {
	label := fmt.Sprintf("FPS: %d", m.fps)
	if m.ctx.Factory == nil {
		dst.DrawText(label, gfx.FontCounter, 10, 4, counterColor)
		return
	}
	if m.fpsStale || m.fpsSurf == nil {
		gfx.Dispose(m.fpsSurf)
		m.fpsSurf = gfx.RenderText(m.ctx.Factory, gfx.FontCounter, label, counterColor)
		m.fpsStale = false
	}
	dst.DrawSurface(m.fpsSurf, 10, 4, false)
}
