package paint

import "fmt"

// ShapeMode selects what a completed gesture produces.
type ShapeMode int

const (
	ModeFree ShapeMode = iota
	ModeLine
	ModeRect
	ModeCircle
	ModeEllipse
	ModeFill
)

var modeNames = [...]string{
	ModeFree:    "free",
	ModeLine:    "line",
	ModeRect:    "rect",
	ModeCircle:  "circle",
	ModeEllipse: "ellipse",
	ModeFill:    "fill",
}

// ShapeModes lists every mode in toolbar order.
func ShapeModes() []ShapeMode {
	return []ShapeMode{ModeFree, ModeLine, ModeRect, ModeCircle, ModeEllipse, ModeFill}
}

func (m ShapeMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("ShapeMode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseShapeMode maps a mode name back to its ShapeMode.
func ParseShapeMode(s string) (ShapeMode, error) {
	for i, name := range modeNames {
		if name == s {
			return ShapeMode(i), nil
		}
	}
	return ModeFree, fmt.Errorf("unknown shape mode %q", s)
}

// DrawStyle is the drawing state the shell threads through every engine call.
type DrawStyle struct {
	StrokeColor Color
	FillColor   Color
	LineWidth   float64
	Mode        ShapeMode
	Eraser      bool
}

// DefaultStyle matches a fresh canvas: thin black free-hand pen.
func DefaultStyle() DrawStyle {
	return DrawStyle{
		StrokeColor: Black,
		FillColor:   Black,
		LineWidth:   1,
		Mode:        ModeFree,
	}
}

// DotRadius is the radius used to mark a single tap.
func (s DrawStyle) DotRadius() float64 {
	return s.LineWidth / 2
}
