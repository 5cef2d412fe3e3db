package paint

import "math"

// Vec is a point with sub-pixel precision, used for derived geometry.
type Vec struct {
	X, Y float64
}

// Vec converts p to a Vec.
func (p Point) Vec() Vec { return Vec{X: float64(p.X), Y: float64(p.Y)} }

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Midpoint is the exact (non-rounded) midpoint of a and b.
func Midpoint(a, b Point) Vec {
	return Vec{X: float64(a.X+b.X) / 2, Y: float64(a.Y+b.Y) / 2}
}

// Rect is an axis-aligned rectangle anchored at X, Y. W and H may be negative.
type Rect struct {
	X, Y, W, H float64
}

// Ellipse is an axis-aligned ellipse. A circle has RX == RY.
type Ellipse struct {
	Center Vec
	RX, RY float64
}

// RectBetween returns the rectangle with opposite corners start and end.
func RectBetween(start, end Point) Rect {
	return Rect{
		X: float64(start.X),
		Y: float64(start.Y),
		W: float64(end.X - start.X),
		H: float64(end.Y - start.Y),
	}
}

// CircleBetween returns the circle centered on the midpoint of start and end
// whose radius reaches back to start.
func CircleBetween(start, end Point) Ellipse {
	c := Midpoint(start, end)
	r := math.Hypot(float64(start.X)-c.X, float64(start.Y)-c.Y)
	return Ellipse{Center: c, RX: r, RY: r}
}

// EllipseBetween returns the ellipse inscribed in the box spanned by start
// and end.
func EllipseBetween(start, end Point) Ellipse {
	c := Midpoint(start, end)
	return Ellipse{
		Center: c,
		RX:     math.Abs(float64(start.X) - c.X),
		RY:     math.Abs(float64(start.Y) - c.Y),
	}
}

// Engine turns gesture points into surface draw calls. It never touches
// history. With no surface bound every method is a no-op.
type Engine struct {
	surface Surface
}

// NewEngine returns an Engine drawing on s, which may be nil until the
// surface becomes available.
func NewEngine(s Surface) *Engine {
	return &Engine{surface: s}
}

// Bind attaches (or with nil, detaches) the surface.
func (e *Engine) Bind(s Surface) { e.surface = s }

// Surface returns the bound surface, or nil.
func (e *Engine) Surface() Surface { return e.surface }

func (e *Engine) applyStroke(style DrawStyle) Surface {
	s := e.surface
	if s == nil {
		return nil
	}
	s.SetStrokeColor(style.StrokeColor)
	s.SetLineWidth(style.LineWidth)
	return s
}

// DrawDot fills a disc of the given radius in the pen color so that a tap
// with no movement still marks the canvas.
func (e *Engine) DrawDot(center Point, radius float64, style DrawStyle) {
	s := e.surface
	if s == nil {
		return
	}
	s.SetFillColor(style.StrokeColor)
	c := center.Vec()
	s.FillEllipse(c.X, c.Y, radius, radius)
	Logger().Debug("paint: dot", "x", center.X, "y", center.Y, "r", radius)
}

// DrawLine strokes the segment from start to end.
func (e *Engine) DrawLine(start, end Point, style DrawStyle) {
	s := e.applyStroke(style)
	if s == nil {
		return
	}
	s.StrokeLine(float64(start.X), float64(start.Y), float64(end.X), float64(end.Y))
	Logger().Debug("paint: line", "from", start, "to", end)
}

// StrokeTo extends a freehand stroke by one segment.
func (e *Engine) StrokeTo(from, to Point, style DrawStyle) {
	s := e.applyStroke(style)
	if s == nil {
		return
	}
	s.StrokeLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
}

// DrawRect strokes the rectangle with opposite corners start and end.
func (e *Engine) DrawRect(start, end Point, style DrawStyle) {
	s := e.applyStroke(style)
	if s == nil {
		return
	}
	r := RectBetween(start, end)
	s.StrokeRect(r.X, r.Y, r.W, r.H)
	Logger().Debug("paint: rect", "x", r.X, "y", r.Y, "w", r.W, "h", r.H)
}

// DrawCircle strokes the circle centered on the midpoint of start and end.
func (e *Engine) DrawCircle(start, end Point, style DrawStyle) {
	s := e.applyStroke(style)
	if s == nil {
		return
	}
	c := CircleBetween(start, end)
	s.StrokeEllipse(c.Center.X, c.Center.Y, c.RX, c.RY)
	Logger().Debug("paint: circle", "cx", c.Center.X, "cy", c.Center.Y, "r", c.RX)
}

// DrawEllipse strokes the axis-aligned ellipse spanned by start and end.
func (e *Engine) DrawEllipse(start, end Point, style DrawStyle) {
	s := e.applyStroke(style)
	if s == nil {
		return
	}
	el := EllipseBetween(start, end)
	s.StrokeEllipse(el.Center.X, el.Center.Y, el.RX, el.RY)
	Logger().Debug("paint: ellipse", "cx", el.Center.X, "cy", el.Center.Y, "rx", el.RX, "ry", el.RY)
}
