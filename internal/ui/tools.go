package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"Drawsome/internal/config"
	"Drawsome/internal/control"
	"Drawsome/internal/state"
)

// colorSwatch is a tappable color square that reports its palette name.
type colorSwatch struct {
	widget.BaseWidget
	Name     string
	Color    color.Color
	OnTapped func(name string)
}

func newColorSwatch(name string, c color.Color, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Name: name, Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// toolbar holds the controls that change tool state or act on the document.
type toolbar struct {
	ctrl  *control.Controller
	tools config.ToolsConfig
	win   fyne.Window

	swatches []*colorSwatch
	stickers []*widget.Button
	rotation *widget.Slider

	onExport func()
}

func newToolbar(ctrl *control.Controller, tools config.ToolsConfig, palette state.Palette, win fyne.Window, onExport func()) *toolbar {
	t := &toolbar{ctrl: ctrl, tools: tools, win: win, onExport: onExport}

	for _, name := range tools.Colors {
		t.swatches = append(t.swatches, newColorSwatch(name, palette.Color(name), ctrl.SetColor))
	}

	for _, symbol := range tools.Stickers {
		t.stickers = append(t.stickers, widget.NewButton(symbol, func() {
			ctrl.SetSymbol(symbol)
		}))
	}

	t.rotation = widget.NewSlider(0, 360)
	t.rotation.Step = 1
	t.rotation.OnChanged = func(v float64) {
		ctrl.SetRotation(int(v))
	}

	return t
}

func (t *toolbar) thinMarker()  { t.ctrl.SelectMarker(t.tools.Thin) }
func (t *toolbar) thickMarker() { t.ctrl.SelectMarker(t.tools.Thick) }

func (t *toolbar) export() {
	if t.onExport != nil {
		t.onExport()
	}
}

// showCustomSticker asks for any text to use as the stamp glyph.
func (t *toolbar) showCustomSticker() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Emoji or text")
	dialog.ShowForm("Custom sticker", "Use", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Sticker", entry)},
		t.customStickerResult(entry), t.win)
}

func (t *toolbar) customStickerResult(entry *widget.Entry) func(bool) {
	return func(ok bool) {
		t.ctrl.ApplyCustomSymbol(entry.Text, ok)
	}
}

func (t *toolbar) object() fyne.CanvasObject {
	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), t.thinMarker),
		widget.NewToolbarAction(theme.ContentAddIcon(), t.thickMarker),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), t.ctrl.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), t.ctrl.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), t.ctrl.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), t.export),
	)

	colorBox := container.NewHBox()
	for _, s := range t.swatches {
		colorBox.Add(s)
	}

	stickerBox := container.NewHBox()
	for _, b := range t.stickers {
		stickerBox.Add(b)
	}
	stickerBox.Add(widget.NewButton("Custom", t.showCustomSticker))

	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.rotation)

	return container.NewVBox(
		container.NewHBox(
			widget.NewLabel("Tool:"),
			actions,
			widget.NewSeparator(),
			widget.NewLabel("Color:"),
			colorBox,
			layout.NewSpacer(),
		),
		container.NewHBox(
			widget.NewLabel("Sticker:"),
			stickerBox,
			widget.NewSeparator(),
			widget.NewLabel("Rotation:"),
			sliderContainer,
			layout.NewSpacer(),
		),
	)
}
