package paint

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// fakeSurface is a plain RGBA buffer that records draw calls instead of
// rasterizing them.
type fakeSurface struct {
	img       *image.RGBA
	stroke    Color
	fill      Color
	lineWidth float64
	calls     []string
	puts      int
}

func newFakeSurface(w, h int, bg Color) *fakeSurface {
	s := &fakeSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	draw.Draw(s.img, s.img.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
	return s
}

func (s *fakeSurface) Bounds() image.Rectangle { return s.img.Rect }

func (s *fakeSurface) Pixels(r image.Rectangle) *image.RGBA {
	out := image.NewRGBA(r)
	draw.Draw(out, r, s.img, r.Min, draw.Src)
	return out
}

func (s *fakeSurface) PutPixels(buf *image.RGBA, at image.Point) {
	s.puts++
	draw.Draw(s.img, image.Rectangle{Min: at, Max: at.Add(buf.Rect.Size())}, buf, buf.Rect.Min, draw.Src)
}

func (s *fakeSurface) SetStrokeColor(c Color) { s.stroke = c }
func (s *fakeSurface) SetFillColor(c Color)   { s.fill = c }
func (s *fakeSurface) SetLineWidth(w float64) { s.lineWidth = w }

func (s *fakeSurface) StrokeLine(x0, y0, x1, y1 float64) {
	s.calls = append(s.calls, fmt.Sprintf("line %g,%g %g,%g", x0, y0, x1, y1))
}

func (s *fakeSurface) StrokeRect(x, y, w, h float64) {
	s.calls = append(s.calls, fmt.Sprintf("rect %g,%g %gx%g", x, y, w, h))
}

func (s *fakeSurface) StrokeEllipse(cx, cy, rx, ry float64) {
	s.calls = append(s.calls, fmt.Sprintf("ellipse %g,%g %g/%g", cx, cy, rx, ry))
}

func (s *fakeSurface) FillEllipse(cx, cy, rx, ry float64) {
	s.calls = append(s.calls, fmt.Sprintf("disc %g,%g %g/%g", cx, cy, rx, ry))
}

func (s *fakeSurface) FillRect(x, y, w, h float64) {
	s.calls = append(s.calls, fmt.Sprintf("fillrect %g,%g %gx%g", x, y, w, h))
}

// set paints one pixel directly.
func (s *fakeSurface) set(x, y int, c Color) {
	s.img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
}

func (s *fakeSurface) at(x, y int) Color {
	return FromColor(s.img.RGBAAt(x, y))
}

// fillRect paints the half-open rectangle [x0,x1) x [y0,y1).
func (s *fakeSurface) fillRect(x0, y0, x1, y1 int, c Color) {
	draw.Draw(s.img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Src)
}
