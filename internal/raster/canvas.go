// Package raster provides an in-memory drawing surface backed by an
// image.RGBA and the rasterx scanline rasterizer.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"LocalPaint/internal/paint"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Canvas is a fixed-size RGBA pixel buffer with stroke and fill state.
// It is not safe for concurrent use.
type Canvas struct {
	img       *image.RGBA
	stroke    paint.Color
	fill      paint.Color
	lineWidth float64
}

var _ paint.Surface = (*Canvas)(nil)

// New allocates a width x height canvas cleared to background.
func New(width, height int, background paint.Color) *Canvas {
	c := &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		stroke:    paint.Black,
		fill:      paint.Black,
		lineWidth: 1,
	}
	draw.Draw(c.img, c.img.Rect, image.NewUniform(toRGBA(background)), image.Point{}, draw.Src)
	return c
}

func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }

// Pixels returns a copy of the pixels inside r, clipped to the canvas.
func (c *Canvas) Pixels(r image.Rectangle) *image.RGBA {
	r = r.Intersect(c.img.Rect)
	out := image.NewRGBA(r)
	draw.Draw(out, r, c.img, r.Min, draw.Src)
	return out
}

// PutPixels replaces the pixels under buf, anchored at at.
func (c *Canvas) PutPixels(buf *image.RGBA, at image.Point) {
	dst := image.Rectangle{Min: at, Max: at.Add(buf.Rect.Size())}
	draw.Draw(c.img, dst, buf, buf.Rect.Min, draw.Src)
}

// Image returns a copy of the whole canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.Pixels(c.img.Rect)
}

// At returns the color of one pixel.
func (c *Canvas) At(x, y int) paint.Color {
	return paint.FromColor(c.img.RGBAAt(x, y))
}

func (c *Canvas) SetStrokeColor(col paint.Color) { c.stroke = col }
func (c *Canvas) SetFillColor(col paint.Color)   { c.fill = col }

func (c *Canvas) SetLineWidth(w float64) {
	if w <= 0 {
		w = 1
	}
	c.lineWidth = w
}

func (c *Canvas) scanner() *rasterx.ScannerGV {
	w, h := c.img.Rect.Dx(), c.img.Rect.Dy()
	return rasterx.NewScannerGV(w, h, c.img, c.img.Bounds())
}

func (c *Canvas) dasher() *rasterx.Dasher {
	w, h := c.img.Rect.Dx(), c.img.Rect.Dy()
	d := rasterx.NewDasher(w, h, c.scanner())
	d.SetStroke(fixed.Int26_6(c.lineWidth*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	d.SetColor(toRGBA(c.stroke))
	return d
}

func (c *Canvas) filler() *rasterx.Filler {
	w, h := c.img.Rect.Dx(), c.img.Rect.Dy()
	f := rasterx.NewFiller(w, h, c.scanner())
	f.SetColor(toRGBA(c.fill))
	return f
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64) {
	d := c.dasher()
	d.Start(rasterx.ToFixedP(x0, y0))
	d.Line(rasterx.ToFixedP(x1, y1))
	d.Stop(false)
	d.Draw()
}

// StrokeRect accepts negative w or h.
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	d := c.dasher()
	rasterx.AddRect(math.Min(x, x+w), math.Min(y, y+h), math.Max(x, x+w), math.Max(y, y+h), 0, d)
	d.Draw()
}

func (c *Canvas) StrokeEllipse(cx, cy, rx, ry float64) {
	if rx == 0 && ry == 0 {
		return
	}
	d := c.dasher()
	rasterx.AddEllipse(cx, cy, rx, ry, 0, d)
	d.Draw()
}

func (c *Canvas) FillEllipse(cx, cy, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	f := c.filler()
	rasterx.AddEllipse(cx, cy, rx, ry, 0, f)
	f.Draw()
}

// FillRect paints an opaque, pixel-aligned rectangle in the fill color.
func (c *Canvas) FillRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(math.Min(x, x+w))), int(math.Floor(math.Min(y, y+h))),
		int(math.Ceil(math.Max(x, x+w))), int(math.Ceil(math.Max(y, y+h))),
	)
	draw.Draw(c.img, r.Intersect(c.img.Rect), image.NewUniform(toRGBA(c.fill)), image.Point{}, draw.Src)
}

func toRGBA(c paint.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
