package export

import (
	"image/color"
	"math"

	"github.com/jung-kurt/gofpdf"

	"Drawsome/internal/render"
)

// glyphFont is the family name the canvas font is registered under.
const glyphFont = "glyph"

// pdfSurface draws onto a single PDF page sized in points, so one canvas
// pixel is one point. Translate and Rotate map onto PDF transformation
// matrices scoped by Push/Pop.
//
// Text uses the canvas font embedded as UTF-8, so stickers keep every
// glyph that font has. Without faces it falls back to core Helvetica,
// which is limited to cp1252 and drops emoji.
type pdfSurface struct {
	pdf  *gofpdf.Fpdf
	tr   func(string) string
	rect *[4]float64
}

func newPDFSurface(width, height float64, faces *render.FaceCache) *pdfSurface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	s := &pdfSurface{pdf: pdf}
	if faces != nil {
		pdf.AddUTF8FontFromBytes(glyphFont, "", faces.Data())
		pdf.SetFont(glyphFont, "", 12)
		s.tr = func(text string) string { return text }
	} else {
		pdf.SetFont("Helvetica", "", 12)
		s.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	return s
}

func (s *pdfSurface) Push() { s.pdf.TransformBegin() }
func (s *pdfSurface) Pop()  { s.pdf.TransformEnd() }

func (s *pdfSurface) Translate(x, y float64) { s.pdf.TransformTranslate(x, y) }

// Rotate turns about the current origin. PDF angles run counter-clockwise
// in degrees.
func (s *pdfSurface) Rotate(angle float64) {
	s.pdf.TransformRotate(-angle*180/math.Pi, 0, 0)
}

func (s *pdfSurface) SetColor(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	r, g, b := int(rgba.R), int(rgba.G), int(rgba.B)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetFillColor(r, g, b)
	s.pdf.SetTextColor(r, g, b)
}

func (s *pdfSurface) SetLineWidth(w float64) { s.pdf.SetLineWidth(w) }
func (s *pdfSurface) MoveTo(x, y float64)    { s.pdf.MoveTo(x, y) }
func (s *pdfSurface) LineTo(x, y float64)    { s.pdf.LineTo(x, y) }
func (s *pdfSurface) Stroke()                { s.pdf.DrawPath("D") }

func (s *pdfSurface) DrawRectangle(x, y, w, h float64) {
	s.rect = &[4]float64{x, y, w, h}
}

func (s *pdfSurface) Fill() {
	if s.rect == nil {
		return
	}
	r := s.rect
	s.pdf.Rect(r[0], r[1], r[2], r[3], "F")
	s.rect = nil
}

func (s *pdfSurface) SetFontSize(size float64) { s.pdf.SetFontSize(size) }

// DrawStringAnchored places text the way gg does: y is the baseline and
// (ax, ay) shift by fractions of the text's width and height.
func (s *pdfSurface) DrawStringAnchored(text string, x, y, ax, ay float64) {
	text = s.tr(text)
	_, h := s.pdf.GetFontSize()
	x -= s.pdf.GetStringWidth(text) * ax
	y += h * ay
	s.pdf.Text(x, y, text)
}
