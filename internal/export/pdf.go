package export

import (
	"image/color"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"BezierBoard/internal/state"
)

// PDF writes the board as a single-page PDF of width×height points,
// unaffected by the view's zoom.
func PDF(w io.Writer, e *state.Editor, width, height float64) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetTitle("Bezier Board", false)
	p.SetCreator("BezierBoard", false)
	p.SetKeywords(strings.Join(curveIDs(e), " "), false)
	p.AddPage()

	s := newPDFSurface(p)
	e.DrawScaled(s, 1)
	if err := p.Error(); err != nil {
		return err
	}
	return p.Output(w)
}

type pdfState struct {
	col   color.NRGBA
	alpha float64
	width float64
}

// pdfSurface draws onto the current page of a gofpdf document. gofpdf keeps
// its own first error, so drawing calls need no error handling here.
type pdfSurface struct {
	pdf *gofpdf.Fpdf
	cur pdfState

	stack  []pdfState
	scaled bool
}

func newPDFSurface(p *gofpdf.Fpdf) *pdfSurface {
	s := &pdfSurface{pdf: p, cur: pdfState{col: color.NRGBA{A: 0xff}, alpha: 1, width: 1}}
	s.apply()
	return s
}

func (s *pdfSurface) apply() {
	r, g, b := int(s.cur.col.R), int(s.cur.col.G), int(s.cur.col.B)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetFillColor(r, g, b)
	s.pdf.SetLineWidth(s.cur.width)
	s.pdf.SetAlpha(s.cur.alpha*float64(s.cur.col.A)/0xff, "Normal")
}

// Clear is a no-op: the page starts blank and is drawn once.
func (s *pdfSurface) Clear() {}

func (s *pdfSurface) FillRect(x, y, w, h float64) {
	s.pdf.Rect(x, y, w, h, "F")
}

func (s *pdfSurface) StrokeLine(x0, y0, x1, y1 float64) {
	s.pdf.Line(x0, y0, x1, y1)
}

func (s *pdfSurface) StrokePath(p *state.Path) {
	c := p.Cubic
	s.pdf.CurveBezierCubic(c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y, "D")
}

func (s *pdfSurface) IsPointInStroke(p *state.Path, x, y float64) bool {
	return state.StrokeContains(p, x, y, s.cur.width)
}

func (s *pdfSurface) SetStrokeColor(c color.Color) {
	s.cur.col = color.NRGBAModel.Convert(c).(color.NRGBA)
	s.apply()
}

func (s *pdfSurface) SetLineWidth(w float64) {
	s.cur.width = w
	s.pdf.SetLineWidth(w)
}


func (s *pdfSurface) SetAlpha(a float64) {
	s.cur.alpha = a
	s.apply()
}

func (s *pdfSurface) Save() {
	s.stack = append(s.stack, s.cur)
}

func (s *pdfSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.apply()
}

// SetScale scales about the page origin. gofpdf takes percentages.
func (s *pdfSurface) SetScale(f float64) {
	if s.scaled {
		s.pdf.TransformEnd()
	}
	s.pdf.TransformBegin()
	s.pdf.TransformScale(f*100, f*100, 0, 0)
	s.scaled = true
}

func (s *pdfSurface) ResetTransform() {
	if s.scaled {
		s.pdf.TransformEnd()
		s.scaled = false
	}
}

func curveIDs(e *state.Editor) []string {
	curves := e.Curves()
	ids := make([]string, len(curves))
	for i, c := range curves {
		ids[i] = c.ID
	}
	return ids
}
