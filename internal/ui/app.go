package ui

import (
	"LocalPaint/internal/board"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

// RunApp opens the main window around s and blocks until it closes.
func RunApp(s *board.Session) {
	myApp := app.New()
	myWindow := myApp.NewWindow("LocalPaint")
	r := s.Bounds()
	myWindow.Resize(fyne.NewSize(float32(r.Dx()), float32(r.Dy())+80))

	boardWidget := NewBoardWidget(s)
	toolbar := NewToolbar(boardWidget)
	bindShortcuts(myWindow.Canvas(), s)

	content := container.NewBorder(toolbar.Content(), boardWidget.StatusBar(), nil, nil, boardWidget)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

// bindShortcuts wires Ctrl/Cmd+Z to undo and Ctrl/Cmd+Y or Shift+Ctrl/Cmd+Z
// to redo.
func bindShortcuts(c fyne.Canvas, s *board.Session) {
	undo := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redo := &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}
	redoAlt := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}

	c.AddShortcut(undo, func(fyne.Shortcut) { s.Undo() })
	c.AddShortcut(redo, func(fyne.Shortcut) { s.Redo() })
	c.AddShortcut(redoAlt, func(fyne.Shortcut) { s.Redo() })
}
