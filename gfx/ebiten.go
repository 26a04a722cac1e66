package gfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Faces maps each Font to a loaded text face.
type Faces map[Font]text.Face

// Imager is implemented by surfaces backed by an ebiten image, for widgets
// that draw straight onto ebiten targets.
type Imager interface {
	Image() *ebiten.Image
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenFactory creates ebiten-backed surfaces.
type EbitenFactory struct {
	faces Faces
}

func NewEbitenFactory(faces Faces) *EbitenFactory {
	return &EbitenFactory{faces: faces}
}

func (f *EbitenFactory) NewSurface(w, h int) Surface {
	return &EbitenSurface{img: ebiten.NewImage(w, h), faces: f.faces, owned: true}
}

// Wrap adapts an image owned by someone else, such as the screen passed to
// Draw. Disposing the wrapper leaves the image alone.
func (f *EbitenFactory) Wrap(img *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{img: img, faces: f.faces}
}

func (f *EbitenFactory) MeasureText(s string, font Font) (float64, float64) {
	return measure(f.faces, s, font)
}

func measure(faces Faces, s string, font Font) (float64, float64) {
	face, ok := faces[font]
	if !ok || face == nil {
		return 0, 0
	}
	return text.Measure(s, face, face.Metrics().HAscent+face.Metrics().HDescent)
}

// EbitenSurface draws onto an *ebiten.Image.
type EbitenSurface struct {
	img   *ebiten.Image
	faces Faces
	owned bool
}

func (s *EbitenSurface) Image() *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.img
}

func (s *EbitenSurface) Size() (int, int) {
	if s == nil || s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear(c color.Color) {
	if s == nil || s.img == nil {
		return
	}
	s.img.Fill(c)
}

func (s *EbitenSurface) FillRect(r Rect, c color.Color) {
	if s == nil || s.img == nil {
		return
	}
	vector.DrawFilledRect(s.img, r.X, r.Y, r.W, r.H, c, false)
}

func (s *EbitenSurface) StrokeRect(r Rect, width float32, c color.Color) {
	if s == nil || s.img == nil {
		return
	}
	vector.StrokeRect(s.img, r.X, r.Y, r.W, r.H, width, c, false)
}

func (s *EbitenSurface) FillTriangle(x, y, size float32, dir Direction, c color.Color) {
	if s == nil || s.img == nil {
		return
	}
	pts := TrianglePoints(x, y, size, dir)
	cr, cg, cb, ca := c.RGBA()
	vs := make([]ebiten.Vertex, 0, 3)
	for _, p := range pts {
		vs = append(vs, ebiten.Vertex{
			DstX:   p[0],
			DstY:   p[1],
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		})
	}
	s.img.DrawTriangles(vs, []uint16{0, 1, 2}, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (s *EbitenSurface) DrawText(str string, f Font, x, y float64, c color.Color) {
	if s == nil || s.img == nil {
		return
	}
	face, ok := s.faces[f]
	if !ok || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, str, face, op)
}

func (s *EbitenSurface) MeasureText(str string, f Font) (float64, float64) {
	if s == nil {
		return 0, 0
	}
	return measure(s.faces, str, f)
}

func (s *EbitenSurface) DrawSurface(src Surface, x, y float64, flipX bool) {
	srcImg := imageOf(src)
	if s == nil || s.img == nil || srcImg == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if flipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(srcImg.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(x, y)
	s.img.DrawImage(srcImg, op)
}

func (s *EbitenSurface) DrawSprite(src Surface, dst Rect, flipX bool) {
	srcImg := imageOf(src)
	if s == nil || s.img == nil || srcImg == nil {
		return
	}
	b := srcImg.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(b.Dx()), float64(dst.H)/float64(b.Dy()))
	if flipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(dst.W), 0)
	}
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	s.img.DrawImage(srcImg, op)
}

func (s *EbitenSurface) Dispose() {
	if s == nil || s.img == nil || !s.owned {
		return
	}
	s.img.Deallocate()
	s.img = nil
}

func imageOf(src Surface) *ebiten.Image {
	im, ok := src.(Imager)
	if !ok || im == nil {
		return nil
	}
	return im.Image()
}
