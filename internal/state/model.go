package state

// Point is a canvas coordinate. Values are never mutated after creation.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Displayable is implemented by exactly three types: *Stroke, *Stamp and
// *Cursor. The renderer switches over them.
type Displayable interface {
	displayable()
}

// Stroke is a freehand polyline. It is seeded with its first point and
// only grows while the gesture that created it is live.
type Stroke struct {
	ID        string
	Points    []Point
	Thickness float64
	Color     string
}

// NewStroke starts a stroke at p using the thickness and color in t.
func NewStroke(p Point, t Tools) *Stroke {
	return &Stroke{
		ID:        newID(),
		Points:    []Point{p},
		Thickness: t.Thickness,
		Color:     t.Color,
	}
}

// Drag appends p to the polyline.
func (s *Stroke) Drag(p Point) {
	s.Points = append(s.Points, p)
}

// Last returns the most recently added point.
func (s *Stroke) Last() Point {
	return s.Points[len(s.Points)-1]
}

// Stamp is a single glyph placed on the canvas. While its gesture is live
// the position follows the pointer.
type Stamp struct {
	ID       string
	Pos      Point
	Symbol   string
	Size     float64
	Rotation int
	Color    string
}

// NewStamp places the active symbol at p.
func NewStamp(p Point, t Tools) *Stamp {
	return &Stamp{
		ID:       newID(),
		Pos:      p,
		Symbol:   t.Symbol,
		Size:     t.GlyphSize(),
		Rotation: t.Rotation,
		Color:    t.Color,
	}
}

// MoveTo repositions the stamp.
func (s *Stamp) MoveTo(p Point) {
	s.Pos = p
}

// Cursor is the preview glyph under the pointer. It is rebuilt on every
// hover and never enters the Document.
type Cursor struct {
	Pos      Point
	Symbol   string
	Size     float64
	Rotation int
	Color    string
}

// NewCursor builds a preview of the active tool at p.
func NewCursor(p Point, t Tools) *Cursor {
	return &Cursor{
		Pos:      p,
		Symbol:   t.Symbol,
		Size:     t.GlyphSize(),
		Rotation: t.Rotation,
		Color:    t.Color,
	}
}

func (*Stroke) displayable() {}
func (*Stamp) displayable()  {}
func (*Cursor) displayable() {}
