package gfx

import (
	"image/color"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 300, Y: 200, W: 200, H: 48}
	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 400, 220, true},
		{"left_edge_exclusive", 300, 220, false},
		{"right_edge_inclusive", 500, 248, true},
		{"below", 400, 249, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Contains(c.x, c.y); got != c.want {
				t.Fatalf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestTrianglePoints(t *testing.T) {
	cases := []struct {
		dir  Direction
		want [3][2]float32
	}{
		{DirUp, [3][2]float32{{50, 0}, {0, 100}, {100, 100}}},
		{DirDown, [3][2]float32{{0, 0}, {100, 0}, {50, 100}}},
		{DirLeft, [3][2]float32{{100, 0}, {100, 100}, {0, 50}}},
		{DirRight, [3][2]float32{{0, 0}, {0, 100}, {100, 50}}},
	}
	for _, c := range cases {
		if got := TrianglePoints(0, 0, 100, c.dir); got != c.want {
			t.Fatalf("dir %d: got %v, want %v", c.dir, got, c.want)
		}
	}
}

func TestRecorderLifecycle(t *testing.T) {
	rec := NewRecorder()
	label := RenderText(rec, FontButton, "Volume", color.White)
	if w, h := label.Size(); w != 6*recordGlyphW || h != recordGlyphH {
		t.Fatalf("unexpected label size %dx%d", w, h)
	}
	if rec.Live() != 1 {
		t.Fatalf("expected 1 live surface, got %d", rec.Live())
	}
	Dispose(label, nil)
	if rec.Live() != 0 {
		t.Fatalf("expected label to be released")
	}
}

func TestRecorderForgetsDisposedSurfaces(t *testing.T) {
	rec := NewRecorder()
	screen := rec.Screen(800, 600)
	for i := 0; i < 1000; i++ {
		s := rec.NewSurface(16, 16).(*RecordSurface)
		s.FillRect(Rect{W: 16, H: 16}, color.White)
		s.Dispose()
		s.Dispose()
		if !s.Disposed || s.Ops != nil {
			t.Fatalf("disposed surface kept its ops: %+v", s.Ops)
		}
	}
	if len(rec.live) != 1 || rec.live[screen.ID] != screen {
		t.Fatalf("recorder tracks %d surfaces, want only the screen", len(rec.live))
	}
	screen.Dispose()
	if rec.Live() != 0 {
		t.Fatalf("expected no live surfaces, got %d", rec.Live())
	}
}

func TestRecordSurfaceClearResetsOps(t *testing.T) {
	rec := NewRecorder()
	screen := rec.Screen(800, 600)
	Button(screen, FontButton, "Exit", Rect{X: 300, Y: 320, W: 200, H: 50}, color.White, color.Black, color.White)
	if !screen.HasText("Exit") || len(screen.Find(OpFillRect)) != 1 {
		t.Fatalf("button not recorded: %+v", screen.Ops)
	}
	screen.Clear(color.Black)
	if len(screen.Ops) != 1 || screen.Ops[0].Kind != OpClear {
		t.Fatalf("clear should drop earlier ops, got %+v", screen.Ops)
	}
}
