package state

import (
	"image/color"
	"sort"
)

// Palette maps the symbolic color names stored on strokes to RGBA values.
type Palette map[string]color.RGBA

// DefaultPalette holds the swatches offered by the toolbar.
func DefaultPalette() Palette {
	return Palette{
		"black":  {A: 255},
		"red":    {R: 255, A: 255},
		"green":  {G: 255, A: 255},
		"blue":   {B: 255, A: 255},
		"yellow": {R: 255, G: 255, A: 255},
		"white":  {R: 255, G: 255, B: 255, A: 255},
	}
}

// Color resolves name. Unknown names draw in black.
func (p Palette) Color(name string) color.RGBA {
	if c, ok := p[name]; ok {
		return c
	}
	return color.RGBA{A: 255}
}

// Has reports whether name is a known color.
func (p Palette) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Names returns the color names in sorted order.
func (p Palette) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
