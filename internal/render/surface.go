// Package render draws the sketch document onto a drawing surface.
//
// Render is target-agnostic: anything implementing Surface can be drawn
// on. The live pad uses Canvas, a gg raster context; export also draws
// through a PDF surface.
package render

import "image/color"

// Surface is the subset of an HTML-canvas-like 2D API the renderer needs.
// Angles are in radians; positive rotation is clockwise on screen.
type Surface interface {
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)

	SetColor(c color.Color)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()

	DrawRectangle(x, y, w, h float64)
	Fill()

	SetFontSize(size float64)
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

// Layer is a Surface that can be wiped back to transparent. The live stamp
// is painted on a layer above the document so that moving it leaves no
// copies behind.
type Layer interface {
	Surface
	Erase()
}
