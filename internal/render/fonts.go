package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FaceCache hands out font faces of one typeface, one face per size.
type FaceCache struct {
	data  []byte
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFaceCache parses TrueType or OpenType data.
func NewFaceCache(data []byte) (*FaceCache, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &FaceCache{data: data, font: f, faces: make(map[float64]font.Face)}, nil
}

// LoadFaceCache reads the font at path. An empty path selects Go Regular,
// which has no emoji; point path at a color or emoji font for stickers.
func LoadFaceCache(path string) (*FaceCache, error) {
	if path == "" {
		return NewFaceCache(goregular.TTF)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", path, err)
	}
	return NewFaceCache(data)
}

// Face returns the face for size points at 72 DPI, so one point is one
// canvas pixel.
func (c *FaceCache) Face(size float64) (font.Face, error) {
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %.1fpt face: %w", size, err)
	}
	c.faces[size] = face
	return face, nil
}

// Data returns the raw font file the cache was built from.
func (c *FaceCache) Data() []byte {
	return c.data
}
