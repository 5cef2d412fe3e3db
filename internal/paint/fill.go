package paint

import "image"

// Filler performs flood fills against a Surface.
type Filler struct {
	surface Surface

	// Tolerance is the per-channel match distance. Zero means exact match.
	Tolerance int
}

// NewFiller returns a Filler using DefaultTolerance. s may be nil.
func NewFiller(s Surface) *Filler {
	return &Filler{surface: s, Tolerance: DefaultTolerance}
}

// Bind attaches (or with nil, detaches) the surface.
func (f *Filler) Bind(s Surface) { f.surface = s }

// Fill recolors the 4-connected region around seed whose pixels match the
// seed's original color. It reports whether any pixel changed.
//
// The whole buffer is read once and written back in a single PutPixels.
// A seed outside the surface is rejected without touching pixels.
func (f *Filler) Fill(seed Point, fillColor Color) bool {
	s := f.surface
	if s == nil {
		return false
	}
	bounds := s.Bounds()
	if !seed.In(bounds) {
		Logger().Warn("paint: fill seed out of bounds", "seed", seed, "bounds", bounds)
		return false
	}

	buf := s.Pixels(bounds)
	origin := pixelAt(buf, seed.X-bounds.Min.X, seed.Y-bounds.Min.Y)
	if origin.Within(fillColor, f.Tolerance) {
		Logger().Debug("paint: fill is a no-op", "seed", seed, "color", fillColor)
		return false
	}

	n := floodFill(buf, image.Pt(seed.X-bounds.Min.X, seed.Y-bounds.Min.Y), origin, fillColor, f.Tolerance)
	if n == 0 {
		return false
	}
	s.PutPixels(buf, bounds.Min)
	Logger().Debug("paint: fill", "seed", seed, "color", fillColor, "pixels", n)
	return true
}

// floodFill recolors buf in place starting at seed (buffer-relative) and
// returns the number of pixels changed.
func floodFill(buf *image.RGBA, seed image.Point, origin, fill Color, tol int) int {
	w, h := buf.Rect.Dx(), buf.Rect.Dy()
	stack := []image.Point{seed}
	changed := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cur := pixelAt(buf, p.X, p.Y)
		if !cur.Within(origin, tol) || cur.Within(fill, tol) {
			continue
		}
		setPixel(buf, p.X, p.Y, fill)
		changed++

		if p.X > 0 {
			stack = append(stack, image.Pt(p.X-1, p.Y))
		}
		if p.X < w-1 {
			stack = append(stack, image.Pt(p.X+1, p.Y))
		}
		if p.Y > 0 {
			stack = append(stack, image.Pt(p.X, p.Y-1))
		}
		if p.Y < h-1 {
			stack = append(stack, image.Pt(p.X, p.Y+1))
		}
	}
	return changed
}

func pixelAt(buf *image.RGBA, x, y int) Color {
	i := y*buf.Stride + x*4
	return Color{R: buf.Pix[i], G: buf.Pix[i+1], B: buf.Pix[i+2]}
}

// setPixel writes RGB only; alpha is left as found.
func setPixel(buf *image.RGBA, x, y int, c Color) {
	i := y*buf.Stride + x*4
	buf.Pix[i] = c.R
	buf.Pix[i+1] = c.G
	buf.Pix[i+2] = c.B
}
