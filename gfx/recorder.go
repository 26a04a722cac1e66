package gfx

import (
	"image/color"
	"unicode/utf8"
)

// Glyph metrics used by the recorder, close to basicfont's 7x13 face.
const (
	recordGlyphW = 7
	recordGlyphH = 13
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpStrokeRect
	OpTriangle
	OpText
	OpBlit
	OpSprite
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	Rect  Rect
	Color color.Color
	Text  string
	Font  Font
	Dir   Direction
	Src   *RecordSurface
	X, Y  float64
	FlipX bool
}

// Recorder is a Factory whose surfaces record draw calls instead of
// rasterizing them. It backs headless runs and tests.
type Recorder struct {
	live   map[int]*RecordSurface
	nextID int
}

func NewRecorder() *Recorder {
	return &Recorder{live: make(map[int]*RecordSurface)}
}

func (r *Recorder) NewSurface(w, h int) Surface {
	return r.newSurface(w, h)
}

// Screen returns a recording surface that stands in for the window.
func (r *Recorder) Screen(w, h int) *RecordSurface {
	return r.newSurface(w, h)
}

func (r *Recorder) newSurface(w, h int) *RecordSurface {
	r.nextID++
	s := &RecordSurface{ID: r.nextID, W: w, H: h, owner: r}
	r.live[s.ID] = s
	return s
}

func (r *Recorder) MeasureText(s string, _ Font) (float64, float64) {
	return recordMeasure(s)
}

// Live counts surfaces that have not been disposed.
func (r *Recorder) Live() int {
	if r == nil {
		return 0
	}
	return len(r.live)
}

func recordMeasure(s string) (float64, float64) {
	return float64(utf8.RuneCountInString(s) * recordGlyphW), recordGlyphH
}

// RecordSurface is a Surface that keeps the draw calls issued since its last
// Clear.
type RecordSurface struct {
	ID       int
	W, H     int
	Ops      []Op
	Disposed bool

	owner *Recorder
}

func (s *RecordSurface) Size() (int, int) {
	return s.W, s.H
}

func (s *RecordSurface) Clear(c color.Color) {
	s.Ops = append(s.Ops[:0], Op{Kind: OpClear, Color: c})
}

func (s *RecordSurface) FillRect(r Rect, c color.Color) {
	s.Ops = append(s.Ops, Op{Kind: OpFillRect, Rect: r, Color: c})
}

func (s *RecordSurface) StrokeRect(r Rect, _ float32, c color.Color) {
	s.Ops = append(s.Ops, Op{Kind: OpStrokeRect, Rect: r, Color: c})
}

func (s *RecordSurface) FillTriangle(x, y, size float32, dir Direction, c color.Color) {
	s.Ops = append(s.Ops, Op{Kind: OpTriangle, Rect: Rect{X: x, Y: y, W: size, H: size}, Dir: dir, Color: c})
}

func (s *RecordSurface) DrawText(str string, f Font, x, y float64, c color.Color) {
	s.Ops = append(s.Ops, Op{Kind: OpText, Text: str, Font: f, X: x, Y: y, Color: c})
}

func (s *RecordSurface) MeasureText(str string, _ Font) (float64, float64) {
	return recordMeasure(str)
}

func (s *RecordSurface) DrawSurface(src Surface, x, y float64, flipX bool) {
	rs, _ := src.(*RecordSurface)
	s.Ops = append(s.Ops, Op{Kind: OpBlit, Src: rs, X: x, Y: y, FlipX: flipX})
}

func (s *RecordSurface) DrawSprite(src Surface, dst Rect, flipX bool) {
	rs, _ := src.(*RecordSurface)
	s.Ops = append(s.Ops, Op{Kind: OpSprite, Src: rs, Rect: dst, X: float64(dst.X), Y: float64(dst.Y), FlipX: flipX})
}

// Dispose forgets the surface and its ops.
func (s *RecordSurface) Dispose() {
	if s.Disposed {
		return
	}
	s.Disposed = true
	s.Ops = nil
	if s.owner != nil {
		delete(s.owner.live, s.ID)
		s.owner = nil
	}
}

// Find returns the recorded ops of the given kind.
func (s *RecordSurface) Find(kind OpKind) []Op {
	var out []Op
	for _, op := range s.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// HasText reports whether str was drawn since the last Clear.
func (s *RecordSurface) HasText(str string) bool {
	for _, op := range s.Ops {
		if op.Kind == OpText && op.Text == str {
			return true
		}
	}
	return false
}
