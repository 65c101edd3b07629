// Package export writes the document out as a PNG image or a PDF page.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"Drawsome/internal/render"
	"Drawsome/internal/state"
)

// Format selects the output encoding.
type Format int

const (
	FormatPNG Format = iota
	FormatPDF
)

func (f Format) String() string {
	if f == FormatPDF {
		return "pdf"
	}
	return "png"
}

// FormatFor picks the format from a file name. Anything that is not .pdf
// is exported as PNG.
func FormatFor(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return FormatPDF
	}
	return FormatPNG
}

// Exporter renders documents onto off-screen targets. The cursor preview
// is never exported.
type Exporter struct {
	renderer *render.Renderer
	faces    *render.FaceCache
	scale    int
	logger   *slog.Logger
}

// New returns an exporter that upscales PNG output by scale.
func New(r *render.Renderer, faces *render.FaceCache, scale int, logger *slog.Logger) *Exporter {
	return &Exporter{renderer: r, faces: faces, scale: scale, logger: logger}
}

// Write encodes doc to w in format f.
func (e *Exporter) Write(w io.Writer, f Format, doc *state.Document) error {
	var err error
	switch f {
	case FormatPDF:
		err = PDF(w, e.renderer, e.faces, doc)
	default:
		err = PNG(w, e.renderer, e.faces, doc, e.scale)
	}
	if err != nil {
		return fmt.Errorf("exporting %s: %w", f, err)
	}

	b := doc.Bounds()
	e.logger.Info("document exported",
		slog.String("format", f.String()),
		slog.Int("strokes", len(doc.Strokes())),
		slog.Int("stamps", len(doc.Stamps())),
		slog.String("ink_bounds", fmt.Sprintf("%.0fx%.0f@%.0f,%.0f", b.Width, b.Height, b.X, b.Y)),
	)
	return nil
}

// PNG renders doc onto a canvas scale times the size of the live one and
// encodes it.
func PNG(w io.Writer, r *render.Renderer, faces *render.FaceCache, doc *state.Document, scale int) error {
	if scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", scale)
	}
	c := render.NewCanvas(int(r.Width)*scale, int(r.Height)*scale, faces)
	c.Scale(float64(scale), float64(scale))
	r.Render(c, doc, nil)
	if err := c.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// PDF renders doc as vectors on a single page the size of the canvas.
// Sticker text is set in the faces font. A nil faces falls back to
// Helvetica, which cannot show emoji.
func PDF(w io.Writer, r *render.Renderer, faces *render.FaceCache, doc *state.Document) error {
	s := newPDFSurface(r.Width, r.Height, faces)
	r.Render(s, doc, nil)
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
