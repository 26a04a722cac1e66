package gfx

import "image/color"

// Font selects one of the faces loaded at startup.
type Font int

const (
	FontButton Font = iota
	FontCounter
)

// Direction is the way a decoration triangle points.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Rect is a rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r. The left and top edges are
// exclusive, matching how button hit tests have always behaved.
func (r Rect) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx > r.X && fx <= r.X+r.W && fy > r.Y && fy <= r.Y+r.H
}

// Surface is a drawable render target: the screen, an offscreen buffer, or a
// cached texture.
type Surface interface {
	Size() (w, h int)
	Clear(c color.Color)
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, width float32, c color.Color)
	FillTriangle(x, y, size float32, dir Direction, c color.Color)
	DrawText(s string, f Font, x, y float64, c color.Color)
	MeasureText(s string, f Font) (w, h float64)
	// DrawSurface blits src unscaled with its top-left corner at (x, y).
	DrawSurface(src Surface, x, y float64, flipX bool)
	// DrawSprite draws src scaled into dst.
	DrawSprite(src Surface, dst Rect, flipX bool)
	Dispose()
}

// Factory creates surfaces that share the loaded fonts.
type Factory interface {
	NewSurface(w, h int) Surface
	MeasureText(s string, f Font) (w, h float64)
}

// RenderText draws s into a new surface sized to fit it.
func RenderText(fac Factory, f Font, s string, c color.Color) Surface {
	if fac == nil {
		return nil
	}
	w, h := fac.MeasureText(s, f)
	iw, ih := int(w+0.5), int(h+0.5)
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}
	surf := fac.NewSurface(iw, ih)
	surf.DrawText(s, f, 0, 0, c)
	return surf
}

// Dispose releases every non-nil surface.
func Dispose(surfaces ...Surface) {
	for _, s := range surfaces {
		if s != nil {
			s.Dispose()
		}
	}
}

// TrianglePoints returns the corners of a triangle fitted to the size×size box
// at (x, y).
func TrianglePoints(x, y, size float32, dir Direction) [3][2]float32 {
	switch dir {
	case DirDown:
		return [3][2]float32{{x, y}, {x + size, y}, {x + size/2, y + size}}
	case DirLeft:
		return [3][2]float32{{x + size, y}, {x + size, y + size}, {x, y + size/2}}
	case DirRight:
		return [3][2]float32{{x, y}, {x, y + size}, {x + size, y + size/2}}
	default:
		return [3][2]float32{{x + size/2, y}, {x, y + size}, {x + size, y + size}}
	}
}

// Button draws a filled, bordered button with a centered label.
func Button(dst Surface, f Font, label string, r Rect, fg, bg, border color.Color) {
	if dst == nil {
		return
	}
	const borderSize = 3
	dst.FillRect(r, bg)
	dst.StrokeRect(r, borderSize, border)
	w, h := dst.MeasureText(label, f)
	x := float64(r.X) + (float64(r.W)-w)/2
	y := float64(r.Y) + (float64(r.H)-h)/2
	dst.DrawText(label, f, x, y, fg)
}
