package engine

import "github.com/milk9111/stagerunner/gfx"

// Screen is one mode of the state machine. Enter and Exit run exactly once
// per visit; Update and Draw run every tick while the screen is active.
type Screen interface {
	Name() string
	Enter(ctx *Context)
	Exit(ctx *Context)
	Update(ctx *Context)
	Draw(ctx *Context, dst gfx.Surface)
}
