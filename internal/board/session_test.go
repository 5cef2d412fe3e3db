package board

import (
	"bytes"
	"testing"

	"LocalPaint/internal/paint"
	"LocalPaint/internal/raster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blue = paint.Color{B: 255}

func newSession(t *testing.T, w, h int) (*Session, *raster.Canvas) {
	t.Helper()
	c := raster.New(w, h, paint.White)
	opts := DefaultOptions()
	opts.Style.LineWidth = 4
	return NewSession(c, opts), c
}

func pix(c *raster.Canvas) []byte { return bytes.Clone(c.Image().Pix) }

func countNonWhite(c *raster.Canvas) int {
	n := 0
	b := c.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.At(x, y) != paint.White {
				n++
			}
		}
	}
	return n
}

func TestTapDrawsDot(t *testing.T) {
	s, c := newSession(t, 20, 20)

	s.Begin(paint.Pt(10, 10))
	s.End(paint.Pt(10, 10))

	assert.NotEqual(t, paint.White, c.At(10, 10))
	assert.Equal(t, paint.White, c.At(0, 0))
	assert.True(t, s.CanUndo())
	assert.False(t, s.Active())
}

func TestFreehandStroke(t *testing.T) {
	s, c := newSession(t, 40, 20)

	s.Begin(paint.Pt(2, 10))
	s.Move(paint.Pt(10, 10))
	s.Move(paint.Pt(20, 10))
	s.End(paint.Pt(30, 10))

	for _, x := range []int{5, 15, 25} {
		assert.NotEqualf(t, paint.White, c.At(x, 10), "x=%d", x)
	}
	assert.Equal(t, 1, s.History().UndoDepth(), "one gesture, one snapshot")
}

func TestGestureIsUndoable(t *testing.T) {
	s, c := newSession(t, 20, 20)
	blank := pix(c)

	s.SetMode(paint.ModeLine)
	s.Begin(paint.Pt(0, 0))
	s.End(paint.Pt(19, 19))
	drawn := pix(c)
	require.NotEqual(t, blank, drawn)

	s.Undo()
	assert.Equal(t, blank, pix(c))
	s.Redo()
	assert.Equal(t, drawn, pix(c))
}

func TestShapeModesDrawOnlyOnEnd(t *testing.T) {
	for _, m := range []paint.ShapeMode{paint.ModeLine, paint.ModeRect, paint.ModeCircle, paint.ModeEllipse} {
		t.Run(m.String(), func(t *testing.T) {
			s, c := newSession(t, 40, 40)
			s.SetMode(m)

			s.Begin(paint.Pt(5, 5))
			s.Move(paint.Pt(20, 20))
			assert.Zero(t, countNonWhite(c), "moves do not draw in shape modes")

			s.End(paint.Pt(35, 30))
			assert.NotZero(t, countNonWhite(c))
		})
	}
}

func TestFillMode(t *testing.T) {
	s, c := newSession(t, 10, 10)
	s.SetMode(paint.ModeFill)
	s.SetStrokeColor(blue)

	s.Begin(paint.Pt(3, 3))
	s.End(paint.Pt(3, 3))

	assert.Equal(t, blue, c.At(0, 0))
	assert.Equal(t, blue, c.At(9, 9))

	s.Undo()
	assert.Equal(t, paint.White, c.At(5, 5))
}

func TestFillSeedIsClamped(t *testing.T) {
	s, c := newSession(t, 10, 10)
	s.SetMode(paint.ModeFill)
	s.SetStrokeColor(blue)

	s.Begin(paint.Pt(50, -7))
	s.End(paint.Pt(50, -7))

	assert.Equal(t, blue, c.At(9, 0))
}

func TestEraserPaintsBackground(t *testing.T) {
	s, c := newSession(t, 20, 20)
	s.SetMode(paint.ModeFill)
	s.SetStrokeColor(blue)
	s.Begin(paint.Pt(0, 0))
	s.End(paint.Pt(0, 0))
	require.Equal(t, blue, c.At(10, 10))

	require.True(t, s.ToggleEraser())
	s.Begin(paint.Pt(10, 10))
	s.End(paint.Pt(10, 10))

	assert.Equal(t, paint.White, c.At(10, 10))
	assert.Equal(t, blue, s.Style().StrokeColor, "pen color survives the eraser")
}

func TestEraserIgnoresShapeMode(t *testing.T) {
	s, c := newSession(t, 40, 40)
	s.SetMode(paint.ModeRect)
	s.SetEraser(true)

	s.Begin(paint.Pt(5, 5))
	s.End(paint.Pt(30, 30))

	// The eraser draws a background-colored segment; nothing non-white appears.
	assert.Zero(t, countNonWhite(c))
}

func TestClearIsUndoable(t *testing.T) {
	s, c := newSession(t, 10, 10)
	s.Begin(paint.Pt(5, 5))
	s.End(paint.Pt(5, 5))
	drawn := pix(c)

	s.Clear()
	assert.Zero(t, countNonWhite(c))

	s.Undo()
	assert.Equal(t, drawn, pix(c))
}

func TestBeginWhileActiveIsIgnored(t *testing.T) {
	s, _ := newSession(t, 10, 10)
	s.Begin(paint.Pt(1, 1))
	s.Begin(paint.Pt(2, 2))
	assert.Equal(t, 1, s.History().UndoDepth())
}

func TestUnboundSessionIsNoop(t *testing.T) {
	s := NewSession(nil, DefaultOptions())
	assert.NotPanics(t, func() {
		s.Begin(paint.Pt(1, 1))
		s.Move(paint.Pt(2, 2))
		s.End(paint.Pt(3, 3))
		s.Clear()
		s.Undo()
		s.Redo()
	})
	assert.Nil(t, s.Image())
	assert.False(t, s.CanUndo())

	c := raster.New(4, 4, paint.White)
	s.Bind(c)
	s.Begin(paint.Pt(1, 1))
	s.End(paint.Pt(1, 1))
	assert.True(t, s.CanUndo())
}

func TestOnChangeFires(t *testing.T) {
	s, _ := newSession(t, 10, 10)
	calls := 0
	s.OnChange = func() { calls++ }

	s.Begin(paint.Pt(1, 1))
	s.End(paint.Pt(1, 1))
	assert.GreaterOrEqual(t, calls, 2)
}

func TestStyleSetters(t *testing.T) {
	s, _ := newSession(t, 4, 4)
	s.SetLineWidth(-3)
	assert.Equal(t, 1.0, s.Style().LineWidth)
	s.SetLineWidth(12)
	assert.Equal(t, 6.0, s.Style().DotRadius())
	s.SetStrokeColor(blue)
	assert.Equal(t, blue, s.Style().FillColor)
}
