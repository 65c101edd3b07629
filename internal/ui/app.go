package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"Drawsome/internal/config"
	"Drawsome/internal/control"
	"Drawsome/internal/export"
	"Drawsome/internal/render"
	"Drawsome/internal/state"
)

// Deps are the collaborators the window is built from.
type Deps struct {
	Config     *config.Config
	Controller *control.Controller
	Canvas     *render.Canvas
	Overlay    *render.Canvas
	Exporter   *export.Exporter
	Palette    state.Palette
	Logger     *slog.Logger
}

// RunApp opens the sketchpad window and blocks until it is closed.
func RunApp(d Deps) {
	myApp := app.New()
	myWindow := myApp.NewWindow(d.Config.Window.Title)

	Build(myWindow, d)

	myWindow.ShowAndRun()
}

// Build fills win with the toolbar, the board and a status line, binds the
// undo/redo shortcuts and paints the initial canvas.
func Build(win fyne.Window, d Deps) *BoardWidget {
	board := NewBoardWidget(d.Controller, d.Canvas, d.Overlay)
	status := widget.NewLabel("Ready")

	doc := d.Controller.Document()
	tb := newToolbar(d.Controller, d.Config.Tools, d.Palette, win, func() {
		showExportDialog(win, d.Exporter, doc, d.Config.Export.FileName, d.Logger, status.SetText)
	})

	win.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { d.Controller.Undo() })
	win.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { d.Controller.Redo() })

	content := container.NewBorder(tb.object(), status, nil, nil, container.NewCenter(board))
	win.SetContent(content)

	d.Controller.Redraw()
	return board
}
