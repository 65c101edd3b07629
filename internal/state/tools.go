package state

// DefaultGlyphScale is the factor between marker thickness and glyph size.
const DefaultGlyphScale = 5

// Tools is the active tool configuration. It is owned by the controller and
// copied by value into every Stroke, Stamp and Cursor at creation time.
type Tools struct {
	Thickness  float64
	Color      string
	Symbol     string
	Rotation   int // degrees
	GlyphScale float64
}

// DefaultTools matches the start-up state of the pad: a thin black marker.
func DefaultTools() Tools {
	return Tools{
		Thickness:  2,
		Color:      "black",
		Symbol:     "o",
		GlyphScale: DefaultGlyphScale,
	}
}

// GlyphSize is the font size used for stamps and the cursor preview.
func (t Tools) GlyphSize() float64 {
	scale := t.GlyphScale
	if scale <= 0 {
		scale = DefaultGlyphScale
	}
	return t.Thickness * scale
}
