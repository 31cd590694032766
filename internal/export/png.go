// Package export renders a board to image and document formats. The
// renderings are one-way: nothing here reads a board back.
package export

import (
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"BezierBoard/internal/state"
)

// PNG rasterizes the board onto a white width×height image. The view's
// zoom does not apply.
func PNG(w io.Writer, e *state.Editor, width, height int) error {
	dc := gg.NewContext(width, height)
	defer dc.Close()

	s := newRasterSurface(dc)
	e.DrawScaled(s, 1)
	if s.err != nil {
		return s.err
	}
	return dc.EncodePNG(w)
}

type rasterState struct {
	col   color.NRGBA
	alpha float64
	width float64
}

// rasterSurface draws with gg's software rasterizer. The first fill or
// stroke error is kept and reported by PNG.
type rasterSurface struct {
	dc    *gg.Context
	cur   rasterState
	stack []rasterState
	err   error
}

func newRasterSurface(dc *gg.Context) *rasterSurface {
	return &rasterSurface{
		dc:  dc,
		cur: rasterState{col: color.NRGBA{A: 0xff}, alpha: 1, width: 1},
	}
}

func (s *rasterSurface) keep(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *rasterSurface) paint() {
	c := s.cur.col
	s.dc.SetRGBA(float64(c.R)/0xff, float64(c.G)/0xff, float64(c.B)/0xff, s.cur.alpha*float64(c.A)/0xff)
	s.dc.SetLineWidth(s.cur.width)
}

func (s *rasterSurface) Clear() {
	s.dc.ClearWithColor(gg.White)
}

func (s *rasterSurface) FillRect(x, y, w, h float64) {
	s.paint()
	s.dc.DrawRectangle(x, y, w, h)
	s.keep(s.dc.Fill())
}

func (s *rasterSurface) StrokeLine(x0, y0, x1, y1 float64) {
	s.paint()
	s.dc.DrawLine(x0, y0, x1, y1)
	s.keep(s.dc.Stroke())
}

func (s *rasterSurface) StrokePath(p *state.Path) {
	c := p.Cubic
	s.paint()
	s.dc.MoveTo(c.P0.X, c.P0.Y)
	s.dc.CubicTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
	s.keep(s.dc.Stroke())
}

func (s *rasterSurface) IsPointInStroke(p *state.Path, x, y float64) bool {
	return state.StrokeContains(p, x, y, s.cur.width)
}

func (s *rasterSurface) SetStrokeColor(c color.Color) {
	s.cur.col = color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (s *rasterSurface) SetLineWidth(w float64) { s.cur.width = w }
func (s *rasterSurface) SetAlpha(a float64)     { s.cur.alpha = a }

func (s *rasterSurface) Save() {
	s.stack = append(s.stack, s.cur)
	s.dc.Push()
}

func (s *rasterSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.dc.Pop()
}

func (s *rasterSurface) SetScale(f float64) {
	s.dc.Identity()
	s.dc.Scale(f, f)
}

func (s *rasterSurface) ResetTransform() {
	s.dc.Identity()
}
