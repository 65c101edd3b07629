package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"Drawsome/internal/control"
	"Drawsome/internal/render"
	"Drawsome/internal/state"
)

// BoardWidget shows the controller's canvases, the overlay stacked on the
// document surface, and feeds them pointer input.
type BoardWidget struct {
	widget.BaseWidget
	ctrl    *control.Controller
	layers  *fyne.Container
	pressed bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget wraps surface and overlay, which must be the canvases ctrl
// paints on. The widget keeps the canvas size so pointer positions map 1:1.
func NewBoardWidget(ctrl *control.Controller, surface, overlay *render.Canvas) *BoardWidget {
	base, top := newLayer(surface), newLayer(overlay)
	b := &BoardWidget{ctrl: ctrl, layers: container.NewStack(base, top)}
	b.ExtendBaseWidget(b)
	ctrl.OnPaint = func() {
		base.Refresh()
		top.Refresh()
	}
	return b
}

func newLayer(c *render.Canvas) *canvas.Raster {
	r := canvas.NewRaster(func(int, int) image.Image {
		return c.Image()
	})
	r.ScaleMode = canvas.ImageScalePixels
	r.SetMinSize(fyne.NewSize(float32(c.Width()), float32(c.Height())))
	return r
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.layers)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	btn := buttons(e.Button)
	if btn&control.ButtonPrimary != 0 {
		b.pressed = true
	}
	b.ctrl.PointerDown(toPoint(e.Position), btn)
}

func (b *BoardWidget) MouseUp(*desktop.MouseEvent) {
	b.release()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.pressed {
		b.ctrl.PointerMove(toPoint(e.Position), 0)
		return
	}
	b.ctrl.PointerMove(toPoint(e.Position), control.ButtonPrimary)
}

// DragEnd fires when a drag is released outside the widget too.
func (b *BoardWidget) DragEnd() {
	b.release()
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	b.ctrl.PointerEnter(toPoint(e.Position))
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.pressed {
		return
	}
	b.ctrl.PointerMove(toPoint(e.Position), 0)
}

func (b *BoardWidget) MouseOut() {
	b.ctrl.PointerOut()
}

// release ends the gesture. MouseUp and DragEnd both arrive after a drag,
// the second call finds the controller idle.
func (b *BoardWidget) release() {
	b.pressed = false
	b.ctrl.PointerUp()
}

func toPoint(p fyne.Position) state.Point {
	return state.Pt(float64(p.X), float64(p.Y))
}

func buttons(b desktop.MouseButton) control.Buttons {
	var out control.Buttons
	if b&desktop.MouseButtonPrimary != 0 {
		out |= control.ButtonPrimary
	}
	if b&desktop.MouseButtonSecondary != 0 {
		out |= control.ButtonSecondary
	}
	if b&desktop.MouseButtonTertiary != 0 {
		out |= control.ButtonTertiary
	}
	return out
}
