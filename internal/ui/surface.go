package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"BezierBoard/internal/state"
)

// curveSegments is how many line segments a cubic is flattened into.
const curveSegments = 48

type canvasState struct {
	col   color.NRGBA
	alpha float64
	width float64
}

// canvasSurface renders by building fyne canvas objects. Each Clear starts
// a fresh object list which the board's renderer hands to fyne.
type canvasSurface struct {
	objects []fyne.CanvasObject
	cur     canvasState
	stack   []canvasState
	scale   float64
}

func newCanvasSurface() *canvasSurface {
	return &canvasSurface{
		cur:   canvasState{col: color.NRGBA{A: 0xff}, alpha: 1, width: 1},
		scale: 1,
	}
}

// Objects returns the objects drawn since the last Clear.
func (s *canvasSurface) Objects() []fyne.CanvasObject {
	return s.objects
}

func (s *canvasSurface) color() color.NRGBA {
	c := s.cur.col
	c.A = uint8(float64(c.A)*s.cur.alpha + 0.5)
	return c
}

func (s *canvasSurface) pos(x, y float64) fyne.Position {
	return fyne.NewPos(float32(x*s.scale), float32(y*s.scale))
}

func (s *canvasSurface) Clear() {
	s.objects = make([]fyne.CanvasObject, 0, len(s.objects))
}

func (s *canvasSurface) FillRect(x, y, w, h float64) {
	rect := canvas.NewRectangle(s.color())
	rect.Move(s.pos(x, y))
	rect.Resize(fyne.NewSize(float32(w*s.scale), float32(h*s.scale)))
	s.objects = append(s.objects, rect)
}

func (s *canvasSurface) StrokeLine(x0, y0, x1, y1 float64) {
	line := canvas.NewLine(s.color())
	line.StrokeWidth = float32(s.cur.width * s.scale)
	line.Position1 = s.pos(x0, y0)
	line.Position2 = s.pos(x1, y1)
	s.objects = append(s.objects, line)
}

func (s *canvasSurface) StrokePath(p *state.Path) {
	pts := p.Flatten(curveSegments)
	for i := 1; i < len(pts); i++ {
		s.StrokeLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
	}
}

func (s *canvasSurface) IsPointInStroke(p *state.Path, x, y float64) bool {
	return state.StrokeContains(p, x, y, s.cur.width)
}

func (s *canvasSurface) SetStrokeColor(c color.Color) {
	s.cur.col = color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (s *canvasSurface) SetLineWidth(w float64) { s.cur.width = w }
func (s *canvasSurface) SetAlpha(a float64)     { s.cur.alpha = a }

func (s *canvasSurface) Save() {
	s.stack = append(s.stack, s.cur)
}

func (s *canvasSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *canvasSurface) SetScale(f float64) { s.scale = f }
func (s *canvasSurface) ResetTransform()    { s.scale = 1 }
