// Package board ties the drawing engines and the history together at the
// level of user gestures: press, move, release.
package board

import (
	"image"

	"LocalPaint/internal/paint"
	"LocalPaint/internal/state"
)

// Options configures a Session.
type Options struct {
	Background    paint.Color
	Style         paint.DrawStyle
	HistoryLimit  int
	FillTolerance int
}

// DefaultOptions is a white canvas, a 1px black pen, unbounded history.
func DefaultOptions() Options {
	return Options{
		Background:    paint.White,
		Style:         paint.DefaultStyle(),
		FillTolerance: paint.DefaultTolerance,
	}
}

// Session owns the drawing style and the gesture-in-progress flag, and calls
// SaveState before every mutation it starts. It is meant to be driven from a
// single UI goroutine.
type Session struct {
	surface    paint.Surface
	engine     *paint.Engine
	filler     *paint.Filler
	history    *state.History
	background paint.Color
	style      paint.DrawStyle

	active bool
	moved  bool
	start  paint.Point
	last   paint.Point

	// OnChange, if set, runs after pixels or history change.
	OnChange func()
}

// NewSession builds a session for s, which may be nil until Bind is called.
func NewSession(s paint.Surface, opts Options) *Session {
	sess := &Session{
		surface:    s,
		engine:     paint.NewEngine(s),
		filler:     paint.NewFiller(s),
		background: opts.Background,
		style:      opts.Style,
	}
	sess.filler.Tolerance = opts.FillTolerance
	sess.history = state.NewHistory(s,
		state.WithLimit(opts.HistoryLimit),
		state.WithBackground(opts.Background),
	)
	sess.history.OnChange = sess.notify
	return sess
}

// Bind attaches a surface, dropping any history of the previous one.
func (s *Session) Bind(surface paint.Surface) {
	s.surface = surface
	s.engine.Bind(surface)
	s.filler.Bind(surface)
	s.history.Bind(surface)
	s.active = false
	s.notify()
}

func (s *Session) History() *state.History { return s.history }

func (s *Session) Style() paint.DrawStyle { return s.style }

func (s *Session) Background() paint.Color { return s.background }

// Active reports whether a gesture is in progress.
func (s *Session) Active() bool { return s.active }

func (s *Session) SetStrokeColor(c paint.Color) {
	s.style.StrokeColor = c
	s.style.FillColor = c
}

func (s *Session) SetLineWidth(w float64) {
	if w <= 0 {
		w = 1
	}
	s.style.LineWidth = w
}

func (s *Session) SetMode(m paint.ShapeMode) { s.style.Mode = m }

// SetEraser switches between the pen and the eraser. The pen color is kept.
func (s *Session) SetEraser(on bool) { s.style.Eraser = on }

// ToggleEraser flips the eraser and returns the new state.
func (s *Session) ToggleEraser() bool {
	s.style.Eraser = !s.style.Eraser
	return s.style.Eraser
}

// drawStyle is the style handed to the engines: the eraser paints with the
// background color.
func (s *Session) drawStyle() paint.DrawStyle {
	st := s.style
	if st.Eraser {
		st.StrokeColor = s.background
		st.FillColor = s.background
	}
	return st
}

func (s *Session) freehand() bool {
	return s.style.Eraser || s.style.Mode == paint.ModeFree
}

// Begin starts a gesture at p, saving the pre-mutation state.
func (s *Session) Begin(p paint.Point) {
	if s.surface == nil || s.active {
		return
	}
	s.history.SaveState()
	s.active = true
	s.moved = false
	s.start, s.last = p, p
}

// Move extends a freehand or eraser stroke. Shape modes only draw on End.
func (s *Session) Move(p paint.Point) {
	if !s.active || !s.freehand() || p == s.last {
		return
	}
	s.engine.StrokeTo(s.last, p, s.drawStyle())
	s.last = p
	s.moved = true
	s.notify()
}

// End completes the gesture at p.
func (s *Session) End(p paint.Point) {
	if !s.active {
		return
	}
	s.active = false
	st := s.drawStyle()

	if s.freehand() {
		switch {
		case !s.moved && p == s.start:
			s.engine.DrawDot(s.start, st.DotRadius(), st)
		case p != s.last:
			s.engine.StrokeTo(s.last, p, st)
		}
		s.notify()
		return
	}

	switch st.Mode {
	case paint.ModeLine:
		s.engine.DrawLine(s.start, p, st)
	case paint.ModeRect:
		s.engine.DrawRect(s.start, p, st)
	case paint.ModeCircle:
		s.engine.DrawCircle(s.start, p, st)
	case paint.ModeEllipse:
		s.engine.DrawEllipse(s.start, p, st)
	case paint.ModeFill:
		b := s.surface.Bounds()
		if b.Empty() {
			break
		}
		s.filler.Fill(p.Clamp(b), st.StrokeColor)
	default:
		paint.Logger().Warn("board: unexpected shape mode", "mode", st.Mode)
	}
	s.notify()
}

// Cancel abandons a gesture without drawing anything further. The snapshot
// saved by Begin stays on the undo stack.
func (s *Session) Cancel() {
	s.active = false
}

// Clear wipes the canvas to the background color as an undoable step.
func (s *Session) Clear() {
	if s.surface == nil {
		return
	}
	s.history.SaveState()
	s.history.ResetCanvas()
	s.notify()
}

func (s *Session) Undo() { s.history.Undo() }
func (s *Session) Redo() { s.history.Redo() }

func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Bounds returns the surface bounds, or an empty rectangle when unbound.
func (s *Session) Bounds() image.Rectangle {
	if s.surface == nil {
		return image.Rectangle{}
	}
	return s.surface.Bounds()
}

// Image returns a copy of the current pixels, or nil when unbound.
func (s *Session) Image() *image.RGBA {
	if s.surface == nil {
		return nil
	}
	return s.surface.Pixels(s.surface.Bounds())
}

func (s *Session) notify() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
