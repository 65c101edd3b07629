package render

import (
	"image/color"
	"math"

	"Drawsome/internal/state"
)

// Renderer paints documents in a fixed-size region.
type Renderer struct {
	Width, Height float64
	Background    color.Color
	Palette       state.Palette
}

// New returns a renderer for a width x height canvas filled with the
// palette color named background.
func New(width, height int, background string, palette state.Palette) *Renderer {
	return &Renderer{
		Width:      float64(width),
		Height:     float64(height),
		Background: palette.Color(background),
		Palette:    palette,
	}
}

// Bounds is the drawing region.
func (r *Renderer) Bounds() state.Rect {
	return state.Rect{Width: r.Width, Height: r.Height}
}

// Render repaints everything from scratch: background, strokes, stamps and
// finally the cursor preview when cur is non-nil. The output depends only
// on the arguments.
func (r *Renderer) Render(s Surface, doc *state.Document, cur *state.Cursor) {
	s.SetColor(r.Background)
	s.DrawRectangle(0, 0, r.Width, r.Height)
	s.Fill()

	for _, st := range doc.Strokes() {
		r.Display(s, st)
	}
	for _, st := range doc.Stamps() {
		r.Display(s, st)
	}
	if cur != nil {
		r.Display(s, cur)
	}
}

// Display draws a single item.
func (r *Renderer) Display(s Surface, d state.Displayable) {
	switch v := d.(type) {
	case *state.Stroke:
		r.drawStroke(s, v)
	case *state.Stamp:
		r.drawGlyph(s, v.Pos, v.Symbol, v.Size, v.Rotation, v.Color)
	case *state.Cursor:
		r.drawGlyph(s, v.Pos, v.Symbol, v.Size, v.Rotation, v.Color)
	}
}

// DrawSegment paints only the newest segment of a live stroke.
func (r *Renderer) DrawSegment(s Surface, st *state.Stroke) {
	n := len(st.Points)
	if n < 2 {
		r.drawStroke(s, st)
		return
	}
	a, b := st.Points[n-2], st.Points[n-1]
	s.SetColor(r.Palette.Color(st.Color))
	s.SetLineWidth(st.Thickness)
	s.MoveTo(a.X, a.Y)
	s.LineTo(b.X, b.Y)
	s.Stroke()
}

func (r *Renderer) drawStroke(s Surface, st *state.Stroke) {
	if len(st.Points) == 0 {
		return
	}
	s.SetColor(r.Palette.Color(st.Color))
	s.SetLineWidth(st.Thickness)
	first := st.Points[0]
	s.MoveTo(first.X, first.Y)
	if len(st.Points) == 1 {
		s.LineTo(first.X, first.Y)
	}
	for _, p := range st.Points[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()
}

// drawGlyph centers symbol on pos. The rotation is applied about pos inside
// its own Push/Pop so rotated glyphs never compound.
func (r *Renderer) drawGlyph(s Surface, pos state.Point, symbol string, size float64, degrees int, name string) {
	if symbol == "" || size <= 0 {
		return
	}
	s.Push()
	defer s.Pop()

	s.Translate(pos.X, pos.Y)
	s.Rotate(float64(degrees) * math.Pi / 180)
	s.SetColor(r.Palette.Color(name))
	s.SetFontSize(size)
	s.DrawStringAnchored(symbol, 0, 0, 0.5, 0.5)
}
