package paint

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultTolerance is the largest per-channel difference still treated as
// the same color. It absorbs anti-aliasing noise along shape edges.
const DefaultTolerance = 2

// ErrInvalidColor is returned when a color string is not #RRGGBB or #RGB.
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// ParseColor parses "#RRGGBB" or the "#RGB" shorthand.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// Intended for package-level constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// RGBA implements color.Color with alpha fixed at 255.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// Within reports whether every channel of c and o differs by at most tol.
func (c Color) Within(o Color, tol int) bool {
	return absDiff(c.R, o.R) <= tol && absDiff(c.G, o.G) <= tol && absDiff(c.B, o.B) <= tol
}

// ColorMatch compares two colors with DefaultTolerance.
func ColorMatch(c1, c2 Color) bool {
	return c1.Within(c2, DefaultTolerance)
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
