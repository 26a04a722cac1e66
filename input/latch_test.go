package input

import "testing"

func TestLatchesPressedFiresOncePerPress(t *testing.T) {
	var l Latches
	held := Snapshot{}.With(KeyEnter)

	fired := 0
	for i := 0; i < 5; i++ {
		l.Release(held)
		if l.Pressed(held, LatchEnter, KeyEnter) {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("expected one press while held, got %d", fired)
	}

	l.Release(Snapshot{})
	if l.Held(LatchEnter) {
		t.Fatalf("latch should open once the key is released")
	}
	if !l.Pressed(held, LatchEnter, KeyEnter) {
		t.Fatalf("expected a second press after release")
	}
}

func TestLatchGroups(t *testing.T) {
	cases := []struct {
		name     string
		latch    Latch
		press    Key
		next     Snapshot
		wantHeld bool
	}{
		{"option_stays_while_down_held", LatchOption, KeyUp, Snapshot{}.With(KeyDown), true},
		{"option_opens_when_both_released", LatchOption, KeyUp, Snapshot{}, false},
		{"jump_opens_on_up_release", LatchJump, KeyUp, Snapshot{}.With(KeyDown), false},
		{"escape_stays_while_held", LatchEscape, KeyEscape, Snapshot{}.With(KeyEscape), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var l Latches
			if !l.Pressed(Snapshot{}.With(c.press), c.latch, c.press) {
				t.Fatalf("expected initial press to fire")
			}
			l.Release(c.next)
			if got := l.Held(c.latch); got != c.wantHeld {
				t.Fatalf("held = %v, want %v", got, c.wantHeld)
			}
		})
	}
}

func TestLatchesClicked(t *testing.T) {
	var l Latches
	down := Snapshot{}.Click(10, 10)
	if !l.Clicked(down) {
		t.Fatalf("expected first click")
	}
	l.Release(down)
	if l.Clicked(down) {
		t.Fatalf("held button must not click again")
	}
	l.Release(Snapshot{})
	if !l.Clicked(down) {
		t.Fatalf("expected click after release")
	}
}

func TestNilLatchesAreInert(t *testing.T) {
	var l *Latches
	l.Release(Snapshot{})
	if l.Pressed(Snapshot{}.With(KeyUp), LatchJump, KeyUp) {
		t.Fatalf("nil latches must not fire")
	}
	if l.Clicked(Snapshot{}.Click(1, 1)) {
		t.Fatalf("nil latches must not click")
	}
}

func TestSnapshotWithout(t *testing.T) {
	s := Snapshot{}.With(KeyLeft, KeyRight).Without(KeyLeft)
	if s.Down(KeyLeft) || !s.Down(KeyRight) {
		t.Fatalf("unexpected snapshot %+v", s)
	}
	if Key(99).String() != "unknown" || KeyEscape.String() != "escape" {
		t.Fatalf("unexpected key names")
	}
}
