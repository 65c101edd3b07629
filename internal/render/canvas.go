package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Canvas is a raster Surface backed by a gg context.
type Canvas struct {
	*gg.Context
	faces *FaceCache
}

// NewCanvas allocates a width x height canvas. Round caps and joins keep
// incrementally drawn segments seamless.
func NewCanvas(width, height int, faces *FaceCache) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Canvas{Context: dc, faces: faces}
}

// SetFontSize selects the face used by DrawStringAnchored. If the face
// cannot be built the previous one stays active.
func (c *Canvas) SetFontSize(size float64) {
	if c.faces == nil {
		return
	}
	face, err := c.faces.Face(size)
	if err != nil {
		return
	}
	c.SetFontFace(face)
}

// Erase makes every pixel transparent.
func (c *Canvas) Erase() {
	c.Push()
	c.SetColor(color.Transparent)
	c.Clear()
	c.Pop()
}

// RGBA returns the backing pixel buffer. It is shared, not copied.
func (c *Canvas) RGBA() *image.RGBA {
	return c.Image().(*image.RGBA)
}

var _ Layer = (*Canvas)(nil)
