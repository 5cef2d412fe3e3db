// Package state keeps the undo/redo history of a drawing surface as full
// pixel snapshots.
package state

import (
	"LocalPaint/internal/paint"
)

// Option configures a History.
type Option func(*History)

// WithLimit caps the undo stack at n snapshots, evicting the oldest.
// n <= 0 means unbounded, which is the default.
func WithLimit(n int) Option {
	return func(h *History) {
		if n < 0 {
			n = 0
		}
		h.limit = n
	}
}

// WithBackground sets the color ResetCanvas clears to. Default is white.
func WithBackground(c paint.Color) Option {
	return func(h *History) { h.background = c }
}

// History holds two stacks of snapshots, oldest first. The current state is
// always the live surface itself.
//
// Because Redo only ever receives what Undo pops, undo+redo never exceeds
// the limit once SaveState has enforced it.
type History struct {
	surface    paint.Surface
	background paint.Color
	limit      int

	undo []*Snapshot
	redo []*Snapshot

	// OnChange, if set, runs after any change to either stack.
	OnChange func()
}

// NewHistory creates a history for s. s may be nil until the surface is
// ready; every operation is then a silent no-op.
func NewHistory(s paint.Surface, opts ...Option) *History {
	h := &History{
		surface:    s,
		background: paint.White,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Bind attaches a new surface. Snapshots of the previous surface are dropped.
func (h *History) Bind(s paint.Surface) {
	h.surface = s
	h.Clear()
}

// Background returns the color ResetCanvas clears to.
func (h *History) Background() paint.Color { return h.background }

// SaveState pushes the current pixels onto the undo stack and empties the
// redo stack. Call it before the mutation it should make reversible.
func (h *History) SaveState() {
	if h.surface == nil {
		return
	}
	sn := capture(h.surface)
	h.undo = append(h.undo, sn)
	if h.limit > 0 && len(h.undo) > h.limit {
		evicted := h.undo[0]
		copy(h.undo, h.undo[1:])
		h.undo[len(h.undo)-1] = nil
		h.undo = h.undo[:len(h.undo)-1]
		paint.Logger().Debug("history: evicted oldest snapshot", "id", evicted.ID, "seq", evicted.Seq)
	}
	h.redo = nil
	paint.Logger().Debug("history: saved", "id", sn.ID, "seq", sn.Seq, "undo", len(h.undo))
	h.changed()
}

// ResetCanvas clears the surface to the background color. It does not save
// state; call SaveState first for an undoable clear.
func (h *History) ResetCanvas() {
	s := h.surface
	if s == nil {
		return
	}
	b := s.Bounds()
	s.SetFillColor(h.background)
	s.FillRect(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()))
	paint.Logger().Debug("history: canvas reset", "background", h.background)
}

// Undo restores the most recent snapshot and moves the current pixels onto
// the redo stack. No-op when there is nothing to undo.
func (h *History) Undo() {
	if h.surface == nil || len(h.undo) == 0 {
		return
	}
	cur := capture(h.surface)
	prev := pop(&h.undo)
	prev.restore(h.surface)
	h.redo = append(h.redo, cur)
	paint.Logger().Debug("history: undo", "restored", prev.ID, "undo", len(h.undo), "redo", len(h.redo))
	h.changed()
}

// Redo is the mirror of Undo.
func (h *History) Redo() {
	if h.surface == nil || len(h.redo) == 0 {
		return
	}
	cur := capture(h.surface)
	next := pop(&h.redo)
	next.restore(h.surface)
	h.undo = append(h.undo, cur)
	paint.Logger().Debug("history: redo", "restored", next.ID, "undo", len(h.undo), "redo", len(h.redo))
	h.changed()
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

func (h *History) UndoDepth() int { return len(h.undo) }
func (h *History) RedoDepth() int { return len(h.redo) }

// Clear drops both stacks.
func (h *History) Clear() {
	if len(h.undo) == 0 && len(h.redo) == 0 {
		return
	}
	h.undo, h.redo = nil, nil
	h.changed()
}

func (h *History) changed() {
	if h.OnChange != nil {
		h.OnChange()
	}
}

func pop(stack *[]*Snapshot) *Snapshot {
	s := *stack
	top := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]
	return top
}
