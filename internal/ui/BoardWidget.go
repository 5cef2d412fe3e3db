package ui

import (
	"fmt"

	"LocalPaint/internal/board"
	"LocalPaint/internal/paint"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows the session's pixels and turns pointer and touch events
// into gestures.
type BoardWidget struct {
	widget.BaseWidget
	session   *board.Session
	image     *canvas.Image
	lastPos   fyne.Position
	statusBar *widget.Label

	// OnStateChange runs after every redraw so controls can follow history.
	OnStateChange func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

func NewBoardWidget(s *board.Session) *BoardWidget {
	b := &BoardWidget{
		session:   s,
		image:     &canvas.Image{},
		statusBar: widget.NewLabel("Ready"),
	}
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScalePixels
	if r := s.Bounds(); !r.Empty() {
		b.image.SetMinSize(fyne.NewSize(float32(r.Dx()), float32(r.Dy())))
	}
	b.ExtendBaseWidget(b)
	s.OnChange = b.changed
	b.changed()
	return b
}

func (b *BoardWidget) Session() *board.Session { return b.session }

func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

// changed pulls fresh pixels from the session and repaints.
func (b *BoardWidget) changed() {
	if img := b.session.Image(); img != nil {
		b.image.Image = img
		b.image.Refresh()
	}
	h := b.session.History()
	st := b.session.Style()
	tool := st.Mode.String()
	if st.Eraser {
		tool = "eraser"
	}
	b.statusBar.SetText(fmt.Sprintf("%s  %s  %.0fpx  undo %d / redo %d",
		tool, st.StrokeColor.Hex(), st.LineWidth, h.UndoDepth(), h.RedoDepth()))
	if b.OnStateChange != nil {
		b.OnStateChange()
	}
}

// toCanvas maps a widget-relative position onto canvas pixels.
func (b *BoardWidget) toCanvas(pos fyne.Position) paint.Point {
	r := b.session.Bounds()
	size := b.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return paint.Pt(int(pos.X)+r.Min.X, int(pos.Y)+r.Min.Y)
	}
	x := pos.X / size.Width * float32(r.Dx())
	y := pos.Y / size.Height * float32(r.Dy())
	return paint.Pt(int(x)+r.Min.X, int(y)+r.Min.Y)
}

func (b *BoardWidget) begin(pos fyne.Position) {
	b.lastPos = pos
	b.session.Begin(b.toCanvas(pos))
}

func (b *BoardWidget) finish(pos fyne.Position) {
	if !b.session.Active() {
		return
	}
	b.lastPos = pos
	b.session.End(b.toCanvas(pos))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.begin(e.Position)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.finish(e.Position)
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.lastPos = e.Position
	b.session.Move(b.toCanvas(e.Position))
}

func (b *BoardWidget) DragEnd() {
	b.finish(b.lastPos)
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.lastPos = e.Position
}

// MouseOut ends a gesture that leaves the board, as releasing would.
func (b *BoardWidget) MouseOut() {
	b.finish(b.lastPos)
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.begin(e.Position)
}

func (b *BoardWidget) TouchUp(e *mobile.TouchEvent) {
	b.finish(e.Position)
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.session.Cancel()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.image)
}
