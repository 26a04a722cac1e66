package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/gfx"
	"github.com/milk9111/stagerunner/input"
	"github.com/milk9111/stagerunner/screen"
	"github.com/milk9111/stagerunner/stages"
)

type fakeClock struct {
	now    time.Time
	step   time.Duration
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

// script replays snapshots and then asks to quit.
type script struct {
	steps []input.Snapshot
	i     int
}

func (s *script) Sample() input.Snapshot {
	if s.i >= len(s.steps) {
		return input.Snapshot{Quit: true}
	}
	in := s.steps[s.i]
	s.i++
	return in
}

type countingFrame struct {
	updates int
	draws   int
	limit   int
	quits   int
}

func (f *countingFrame) Update(in input.Snapshot) {
	f.updates++
	if in.Quit {
		f.quits++
	}
}
func (f *countingFrame) Draw(gfx.Surface) { f.draws++ }
func (f *countingFrame) Done() bool       { return f.limit > 0 && f.updates >= f.limit }

func TestBudget(t *testing.T) {
	cases := []struct {
		fps  int
		want time.Duration
	}{
		{60, 16 * time.Millisecond},
		{50, 20 * time.Millisecond},
		{0, 0},
		{-5, 0},
	}
	for _, c := range cases {
		if got := Budget(c.fps); got != c.want {
			t.Fatalf("Budget(%d) = %v, want %v", c.fps, got, c.want)
		}
	}
}

func TestRunSleepsRemainingBudget(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0), step: 5 * time.Millisecond}
	f := &countingFrame{limit: 3}
	if err := Run(context.Background(), f, nil, gfx.NewRecorder().Screen(800, 600), 50, clock); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if f.updates != 3 || f.draws != 3 {
		t.Fatalf("updates=%d draws=%d, want 3 each", f.updates, f.draws)
	}
	if len(clock.sleeps) != 3 {
		t.Fatalf("got %d sleeps, want 3", len(clock.sleeps))
	}
	for _, d := range clock.sleeps {
		if d != 15*time.Millisecond {
			t.Fatalf("slept %v, want 15ms", d)
		}
	}
}

func TestRunUncappedNeverSleeps(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0), step: time.Millisecond}
	f := &countingFrame{limit: 5}
	if err := Run(context.Background(), f, nil, nil, 0, clock); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(clock.sleeps) != 0 {
		t.Fatalf("uncapped loop slept %v", clock.sleeps)
	}
	if f.draws != 0 {
		t.Fatalf("drew %d times without a target", f.draws)
	}
}

func TestRunSkipsSleepWhenOverBudget(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0), step: 30 * time.Millisecond}
	f := &countingFrame{limit: 2}
	if err := Run(context.Background(), f, nil, nil, 60, clock); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(clock.sleeps) != 0 {
		t.Fatalf("slow ticks should not sleep, got %v", clock.sleeps)
	}
}

func TestRunCancelledAsksToQuit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &countingFrame{}
	err := Run(ctx, f, nil, nil, 60, &fakeClock{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if f.quits != quitTicks || f.updates != quitTicks {
		t.Fatalf("updates=%d quits=%d, want %d quitting ticks", f.updates, f.quits, quitTicks)
	}
}

func newMachine(t *testing.T) *engine.Machine {
	t.Helper()
	layout, err := stages.Load()
	if err != nil {
		t.Fatalf("load stages: %v", err)
	}
	now := time.Unix(0, 0)
	ctx := engine.NewContext()
	ctx.Layout = layout
	ctx.Factory = gfx.NewRecorder()
	ctx.Now = func() time.Time {
		now = now.Add(16 * time.Millisecond)
		return now
	}
	return engine.NewMachine(ctx, screen.All(nil))
}

func gameScript() []input.Snapshot {
	var steps []input.Snapshot
	steps = append(steps, input.Snapshot{}, input.Snapshot{}.With(input.KeyEnter), input.Snapshot{})
	for i := 0; i < 230; i++ {
		in := input.Snapshot{}.With(input.KeyRight)
		if i == 10 || i == 30 {
			in = in.With(input.KeyUp)
		}
		steps = append(steps, in)
	}
	steps = append(steps, input.Snapshot{}.With(input.KeyEscape), input.Snapshot{}, input.Snapshot{})
	return steps
}

func TestDriversAgree(t *testing.T) {
	owned := newMachine(t)
	if err := Run(context.Background(), owned, &script{steps: gameScript()}, nil, 0, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	hosted := newMachine(t)
	host := NewHost(hosted, &script{steps: gameScript()}, nil)
	var err error
	for i := 0; i < 1000 && err == nil; i++ {
		err = host.Update()
	}
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("host ended with %v, want ebiten.Termination", err)
	}

	a, b := owned.Context(), hosted.Context()
	if !owned.Done() || !hosted.Done() {
		t.Fatalf("both machines should have torn down")
	}
	if a.Player != b.Player {
		t.Fatalf("player differs:\nowned  %+v\nhosted %+v", a.Player, b.Player)
	}
	if a.Player.Stage < 2 {
		t.Fatalf("script should have crossed into stage 2, got %d", a.Player.Stage)
	}
	if a.Playing != b.Playing || a.Mode != b.Mode {
		t.Fatalf("mode differs: %v/%v vs %v/%v", a.Mode, a.Playing, b.Mode, b.Playing)
	}
}

func TestHostLayout(t *testing.T) {
	h := NewHost(&countingFrame{}, nil, nil)
	if w, hgt := h.Layout(1920, 1080); w != 800 || hgt != 600 {
		t.Fatalf("layout = %dx%d, want 800x600", w, hgt)
	}
}
