package paint

import "image"

// Surface is the host rendering surface the engines draw on. It owns the
// pixel buffer; engines only borrow it for the duration of a call.
//
// Rect extents passed to StrokeRect may be negative; implementations treat
// them as unnormalized corners.
type Surface interface {
	Bounds() image.Rectangle

	// Pixels returns a copy of the pixels inside r.
	Pixels(r image.Rectangle) *image.RGBA
	// PutPixels writes buf with its top-left corner at at.
	PutPixels(buf *image.RGBA, at image.Point)

	SetStrokeColor(c Color)
	SetFillColor(c Color)
	SetLineWidth(w float64)

	StrokeLine(x0, y0, x1, y1 float64)
	StrokeRect(x, y, w, h float64)
	StrokeEllipse(cx, cy, rx, ry float64)
	FillEllipse(cx, cy, rx, ry float64)
	FillRect(x, y, w, h float64)
}

// Point is a canvas-local pixel coordinate, origin top-left, y down.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// In reports whether p lies inside r.
func (p Point) In(r image.Rectangle) bool {
	return image.Pt(p.X, p.Y).In(r)
}

// Clamp moves p to the nearest pixel inside r. r must not be empty.
func (p Point) Clamp(r image.Rectangle) Point {
	return Point{X: clamp(p.X, r.Min.X, r.Max.X-1), Y: clamp(p.Y, r.Min.Y, r.Max.Y-1)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
