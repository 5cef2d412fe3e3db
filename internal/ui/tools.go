package ui

import (
	"image/color"
	"strings"

	"LocalPaint/internal/paint"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// palette is the row of quick-pick swatches.
var palette = []paint.Color{
	paint.Black,
	{R: 255},
	{G: 255},
	{B: 255},
	{R: 255, G: 255},
	paint.White,
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    paint.Color
	OnTapped func(paint.Color)
}

func newColorSwatch(c paint.Color, tapped func(paint.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the drawing controls for one board.
type Toolbar struct {
	board *BoardWidget

	shape   *widget.Select
	width   *widget.Slider
	hex     *widget.Entry
	eraser  *widget.Button
	undo    *widget.Button
	redo    *widget.Button
	content fyne.CanvasObject
}

// NewToolbar builds the controls and subscribes them to board changes.
func NewToolbar(board *BoardWidget) *Toolbar {
	t := &Toolbar{board: board}
	s := board.Session()
	st := s.Style()

	// --- Shape selector ---
	names := make([]string, 0, len(paint.ShapeModes()))
	for _, m := range paint.ShapeModes() {
		names = append(names, m.String())
	}
	t.shape = widget.NewSelect(names, func(name string) {
		if m, err := paint.ParseShapeMode(name); err == nil {
			s.SetMode(m)
			board.changed()
		}
	})
	t.shape.SetSelected(st.Mode.String())

	// --- Color palette ---
	t.hex = widget.NewEntry()
	t.hex.SetText(st.StrokeColor.Hex())
	t.hex.OnSubmitted = func(text string) {
		c, err := paint.ParseColor(text)
		if err != nil {
			board.StatusBar().SetText(err.Error())
			return
		}
		t.pickColor(c)
	}
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, t.pickColor))
	}
	hexBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(90, 35)), t.hex)

	// --- Stroke width slider ---
	t.width = widget.NewSlider(1, 50)
	t.width.SetValue(st.LineWidth)
	t.width.OnChanged = func(v float64) {
		s.SetLineWidth(v)
		board.changed()
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.width)

	t.eraser = widget.NewButton("ERASER", func() {
		s.ToggleEraser()
		board.changed()
	})
	t.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), s.Undo)
	t.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), s.Redo)
	clearBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), s.Clear)

	t.content = container.NewHBox(
		widget.NewLabel("Tool:"),
		t.shape,
		t.eraser,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		hexBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		widget.NewSeparator(),
		t.undo,
		t.redo,
		clearBtn,
		layout.NewSpacer(),
	)

	board.OnStateChange = t.Refresh
	t.Refresh()
	return t
}

// Content is the toolbar's root object.
func (t *Toolbar) Content() fyne.CanvasObject { return t.content }

func (t *Toolbar) pickColor(c paint.Color) {
	s := t.board.Session()
	s.SetStrokeColor(c)
	s.SetEraser(false)
	if !strings.EqualFold(t.hex.Text, c.Hex()) {
		t.hex.SetText(c.Hex())
	}
	t.board.changed()
}

// Refresh syncs button state with the session.
func (t *Toolbar) Refresh() {
	s := t.board.Session()
	setEnabled(t.undo, s.CanUndo())
	setEnabled(t.redo, s.CanRedo())
	if s.Style().Eraser {
		t.eraser.SetText("PEN")
	} else {
		t.eraser.SetText("ERASER")
	}
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}
