package export

import (
	"bytes"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Drawsome/internal/render"
	"Drawsome/internal/state"
)

func sample() *state.Document {
	tools := state.DefaultTools()
	doc := state.NewDocument()
	s := state.NewStroke(state.Pt(10, 10), tools)
	s.Drag(state.Pt(50, 40))
	doc.CommitStroke(s)
	tools.Rotation = 30
	doc.CommitStamp(state.NewStamp(state.Pt(50, 40), tools))
	return doc
}

func newExporter(t *testing.T, scale int) *Exporter {
	t.Helper()

	faces, err := render.LoadFaceCache("")
	require.NoError(t, err)
	r := render.New(64, 48, "white", state.DefaultPalette())
	return New(r, faces, scale, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Format
	}{
		{name: "sketch.pdf", want: FormatPDF},
		{name: "SKETCH.PDF", want: FormatPDF},
		{name: "sketch.png", want: FormatPNG},
		{name: "sketch", want: FormatPNG},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatFor(tt.name))
		})
	}
}

func TestWrite_PNGIsUpscaled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newExporter(t, 4).Write(&buf, FormatPNG, sample()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 192, img.Bounds().Dy())
}

func TestWrite_PNGIsDeterministic(t *testing.T) {
	t.Parallel()

	e := newExporter(t, 2)
	doc := sample()

	var a, b bytes.Buffer
	require.NoError(t, e.Write(&a, FormatPNG, doc))
	require.NoError(t, e.Write(&b, FormatPNG, doc))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWrite_PNGRejectsBadScale(t *testing.T) {
	t.Parallel()

	err := newExporter(t, 0).Write(io.Discard, FormatPNG, sample())
	assert.ErrorContains(t, err, "scale must be at least 1")
}

func TestWrite_PDF(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newExporter(t, 4).Write(&buf, FormatPDF, sample()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFSurface_StickerText(t *testing.T) {
	t.Parallel()

	faces, err := render.LoadFaceCache("")
	require.NoError(t, err)

	embedded := newPDFSurface(64, 48, faces)
	assert.Equal(t, "🗿★", embedded.tr("🗿★"), "UTF-8 font keeps sticker text")

	core := newPDFSurface(64, 48, nil)
	assert.NotEqual(t, "🗿★", core.tr("🗿★"), "Helvetica is cp1252 only")
}

func TestPDF_EmbedsGlyphFont(t *testing.T) {
	t.Parallel()

	faces, err := render.LoadFaceCache("")
	require.NoError(t, err)
	r := render.New(64, 48, "white", state.DefaultPalette())

	tools := state.DefaultTools()
	tools.Symbol = "🥴★"
	doc := state.NewDocument()
	doc.CommitStamp(state.NewStamp(state.Pt(30, 20), tools))

	var withFont, core bytes.Buffer
	require.NoError(t, PDF(&withFont, r, faces, doc))
	require.NoError(t, PDF(&core, r, nil, doc))

	assert.True(t, bytes.HasPrefix(withFont.Bytes(), []byte("%PDF-")))
	assert.Greater(t, withFont.Len(), core.Len(), "the canvas font is embedded")
}

func TestWrite_EmptyDocument(t *testing.T) {
	t.Parallel()

	e := newExporter(t, 1)
	for _, f := range []Format{FormatPNG, FormatPDF} {
		var buf bytes.Buffer
		require.NoError(t, e.Write(&buf, f, state.NewDocument()), f.String())
		assert.NotZero(t, buf.Len())
	}
}
