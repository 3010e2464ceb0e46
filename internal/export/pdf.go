package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/example/stickersketch/internal/mark"
	"github.com/example/stickersketch/internal/render"
	"github.com/example/stickersketch/internal/session"
)

const stickerFamily = "sticker"

var _ = mark.Surface((*pdfSurface)(nil))

// PDF writes committed as a single page vector document. One canvas unit is
// one point; Scale does not apply.
func PDF(w io.Writer, committed []mark.Mark, opts Options) error {
	opts = opts.normalized()
	fonts := opts.Fonts
	if fonts == nil {
		var err error
		if fonts, err = render.DefaultFonts(); err != nil {
			return err
		}
	}
	width, height := float64(opts.Size.X), float64(opts.Size.Y)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes(stickerFamily, "", fonts.Data())
	pdf.AddPage()

	session.Replay(&pdfSurface{pdf: pdf, width: width, height: height, bg: opts.Background}, committed, nil)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write PDF: %w", err)
	}
	return nil
}

// pdfSurface draws marks as PDF path and text operators.
type pdfSurface struct {
	pdf           *gofpdf.Fpdf
	width, height float64
	bg            color.RGBA
}

func (s *pdfSurface) Clear() {
	if s.bg.A == 0 {
		return
	}
	s.fill(s.bg)
	s.pdf.Rect(0, 0, s.width, s.height, "F")
}

func (s *pdfSurface) DrawPolyline(pts []mark.Point, width float64, col color.Color) {
	if len(pts) < 2 {
		return
	}
	c := straight(col)
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetAlpha(float64(c.A)/0xff, "Normal")
	s.pdf.SetLineWidth(width)
	s.pdf.SetLineCapStyle("round")
	s.pdf.SetLineJoinStyle("round")
	s.pdf.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.pdf.LineTo(p.X, p.Y)
	}
	s.pdf.DrawPath("D")
}

func (s *pdfSurface) FillDisc(center mark.Point, radius float64, col color.Color) {
	s.fill(col)
	s.pdf.Circle(center.X, center.Y, radius, "F")
}

func (s *pdfSurface) DrawGlyphRotated(glyph string, at mark.Point, angle, size float64, col color.Color) {
	c := straight(col)
	s.pdf.SetFont(stickerFamily, "", size)
	s.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetAlpha(float64(c.A)/0xff, "Normal")
	w := s.pdf.GetStringWidth(glyph)
	s.pdf.TransformBegin()
	// PDF rotates counter-clockwise; canvas angles turn clockwise.
	s.pdf.TransformRotate(-angle, at.X, at.Y)
	s.pdf.Text(at.X-w/2, at.Y+size*0.35, glyph)
	s.pdf.TransformEnd()
}

func (s *pdfSurface) fill(col color.Color) {
	c := straight(col)
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetAlpha(float64(c.A)/0xff, "Normal")
}

func straight(col color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(col).(color.NRGBA)
}
