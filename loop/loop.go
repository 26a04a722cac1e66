// Package loop drives a Frame either from an owned blocking loop or from
// ebiten's callbacks. Both call Update and Draw the same way, so a game
// behaves identically under either driver.
package loop

import (
	"context"
	"time"

	"github.com/milk9111/stagerunner/gfx"
	"github.com/milk9111/stagerunner/input"
)

// Frame is a game advanced one tick at a time.
type Frame interface {
	Update(in input.Snapshot)
	Draw(dst gfx.Surface)
	// Done reports whether the game has torn itself down.
	Done() bool
}

// Clock is the time source of the owned loop.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// quitTicks bounds how many ticks a cancelled loop spends tearing down.
const quitTicks = 4

// Budget is the time one tick may take at fps. Zero means uncapped.
func Budget(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(1000/fps) * time.Millisecond
}

// Run drives f until it is done, sleeping out whatever is left of each
// tick's budget. When ctx is cancelled every later sample asks the game to
// quit so it can tear down; Run then returns ctx.Err().
func Run(ctx context.Context, f Frame, src input.Source, dst gfx.Surface, fps int, clock Clock) error {
	if clock == nil {
		clock = SystemClock
	}
	if src == nil {
		src = input.Idle
	}
	budget := Budget(fps)

	quitting := 0
	for !f.Done() {
		start := clock.Now()
		in := src.Sample()
		if ctx.Err() != nil {
			if quitting == quitTicks {
				return ctx.Err()
			}
			quitting++
			in.Quit = true
		}

		f.Update(in)
		if dst != nil {
			f.Draw(dst)
		}

		if quitting > 0 || budget == 0 {
			continue
		}
		if wait := budget - clock.Now().Sub(start); wait > 0 {
			clock.Sleep(ctx, wait)
		}
	}
	return ctx.Err()
}
