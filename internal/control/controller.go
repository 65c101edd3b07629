// Package control turns pointer and toolbar input into document changes
// and redraws.
package control

import (
	"log/slog"
	"strings"

	"Drawsome/internal/render"
	"Drawsome/internal/state"
)

// Buttons is a pressed-button bitmask, as in pointer events.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonTertiary
)

// Mode is the gesture state.
type Mode int

const (
	Idle Mode = iota
	Composing
)

func (m Mode) String() string {
	if m == Composing {
		return "composing"
	}
	return "idle"
}

// Controller owns the tool state, the live gesture and the cursor preview.
// The document and the live stroke are painted on surface, the live stamp
// on overlay, which sits above it. Every state-changing call paints
// directly and then invokes OnPaint. It must only be used from the UI
// goroutine.
type Controller struct {
	doc      *state.Document
	renderer *render.Renderer
	surface  render.Surface
	overlay  render.Layer
	logger   *slog.Logger

	tools        state.Tools
	markerSymbol string

	mode   Mode
	stroke *state.Stroke
	stamp  *state.Stamp
	cursor *state.Cursor

	// OnPaint is called after the surface changed.
	OnPaint func()
}

// New returns an idle controller drawing doc onto surface. overlay must
// have the same size as surface.
func New(doc *state.Document, r *render.Renderer, surface render.Surface, overlay render.Layer, tools state.Tools, logger *slog.Logger) *Controller {
	return &Controller{
		doc:          doc,
		renderer:     r,
		surface:      surface,
		overlay:      overlay,
		logger:       logger,
		tools:        tools,
		markerSymbol: tools.Symbol,
	}
}

// Document returns the document being edited.
func (c *Controller) Document() *state.Document { return c.doc }

// Tools returns a copy of the active tool state.
func (c *Controller) Tools() state.Tools { return c.tools }

// Mode returns the gesture state.
func (c *Controller) Mode() Mode { return c.mode }

// Cursor returns the cursor preview, or nil when the pointer is outside.
func (c *Controller) Cursor() *state.Cursor { return c.cursor }

// PointerDown starts a gesture when the primary button goes down inside
// the canvas. The cursor preview is dropped for the length of the gesture.
func (c *Controller) PointerDown(p state.Point, b Buttons) {
	if b&ButtonPrimary == 0 || c.mode == Composing {
		return
	}
	if !c.renderer.Bounds().Contains(p) {
		return
	}
	c.stroke = state.NewStroke(p, c.tools)
	c.stamp = state.NewStamp(p, c.tools)
	c.mode = Composing
	c.cursor = nil
	c.Redraw()
}

// PointerMove extends the live stroke while the primary button is held.
// Only the new segment is drawn, and the overlay is rebuilt with the stamp
// at its new position. Otherwise it moves the cursor preview.
func (c *Controller) PointerMove(p state.Point, b Buttons) {
	if c.mode == Composing && b&ButtonPrimary != 0 {
		c.stroke.Drag(p)
		c.stamp.MoveTo(p)
		c.renderer.DrawSegment(c.surface, c.stroke)
		c.overlay.Erase()
		c.renderer.Display(c.overlay, c.stamp)
		c.paint()
		return
	}
	c.cursor = state.NewCursor(p, c.tools)
	c.Redraw()
}

// PointerUp commits the live gesture, wherever the pointer is.
func (c *Controller) PointerUp() {
	if c.mode != Composing {
		return
	}
	c.doc.CommitStroke(c.stroke)
	c.doc.CommitStamp(c.stamp)
	c.logger.Debug("gesture committed",
		slog.String("stroke_id", c.stroke.ID),
		slog.Int("points", len(c.stroke.Points)),
		slog.String("stamp_id", c.stamp.ID),
	)
	c.stroke, c.stamp = nil, nil
	c.mode = Idle
	c.Redraw()
}

// PointerEnter shows the cursor preview.
func (c *Controller) PointerEnter(p state.Point) {
	c.cursor = state.NewCursor(p, c.tools)
	c.Redraw()
}

// PointerOut hides the cursor preview.
func (c *Controller) PointerOut() {
	c.cursor = nil
	c.Redraw()
}

// Undo removes the newest stroke.
func (c *Controller) Undo() {
	if !c.doc.Undo() {
		return
	}
	c.logger.Debug("undo", slog.Int("redo_depth", len(c.doc.RedoStack())))
	c.Redraw()
}

// Redo restores the most recently undone stroke.
func (c *Controller) Redo() {
	if !c.doc.Redo() {
		return
	}
	c.logger.Debug("redo", slog.Int("strokes", len(c.doc.Strokes())))
	c.Redraw()
}

// Clear empties the document.
func (c *Controller) Clear() {
	c.doc.Clear()
	c.logger.Debug("document cleared")
	c.Redraw()
}

// SetThickness changes the marker width. Non-positive values are ignored.
func (c *Controller) SetThickness(t float64) {
	if t <= 0 {
		c.logger.Warn("ignoring non-positive thickness", slog.Float64("thickness", t))
		return
	}
	c.tools.Thickness = t
	c.refreshCursor()
}

// SelectMarker switches back to the marker glyph with thickness t.
func (c *Controller) SelectMarker(t float64) {
	if t <= 0 {
		c.logger.Warn("ignoring non-positive thickness", slog.Float64("thickness", t))
		return
	}
	c.tools.Thickness = t
	c.SetSymbol(c.markerSymbol)
}

// SetColor changes the color name used by new items.
func (c *Controller) SetColor(name string) {
	c.tools.Color = name
	c.refreshCursor()
}

// SetRotation sets the stamp rotation in degrees.
func (c *Controller) SetRotation(degrees int) {
	c.tools.Rotation = degrees
	c.refreshCursor()
}

// SetSymbol changes the stamp glyph and redraws so the preview shows it.
func (c *Controller) SetSymbol(symbol string) {
	c.tools.Symbol = symbol
	if c.cursor != nil {
		c.cursor = state.NewCursor(c.cursor.Pos, c.tools)
	}
	c.Redraw()
}

// ApplyCustomSymbol takes the result of the custom sticker prompt. A
// cancelled or blank answer changes nothing. It reports whether the symbol
// was applied.
func (c *Controller) ApplyCustomSymbol(text string, ok bool) bool {
	text = strings.TrimSpace(text)
	if !ok || text == "" {
		return false
	}
	c.SetSymbol(text)
	return true
}

// Redraw repaints the whole surface from the document and cursor, then
// puts a live gesture back on top.
func (c *Controller) Redraw() {
	c.renderer.Render(c.surface, c.doc, c.cursor)
	c.overlay.Erase()
	if c.mode == Composing {
		c.renderer.Display(c.surface, c.stroke)
		c.renderer.Display(c.overlay, c.stamp)
	}
	c.paint()
}

func (c *Controller) refreshCursor() {
	if c.cursor == nil {
		return
	}
	c.cursor = state.NewCursor(c.cursor.Pos, c.tools)
	c.Redraw()
}

func (c *Controller) paint() {
	if c.OnPaint != nil {
		c.OnPaint()
	}
}
