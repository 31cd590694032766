package state

import (
	"image/color"

	"honnef.co/go/curve"
)

// Surface is the drawing capability the editor renders onto. The fyne
// widget, the PNG exporter and the PDF exporter each provide one.
//
// Save and Restore bracket temporary style changes: colour, opacity and
// line width set after Save are undone by the matching Restore. Opacity
// set with SetAlpha multiplies every subsequent fill and stroke.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64)
	StrokeLine(x0, y0, x1, y1 float64)
	StrokePath(p *Path)
	IsPointInStroke(p *Path, x, y float64) bool

	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetAlpha(a float64)

	Save()
	Restore()

	SetScale(f float64)
	ResetTransform()
}

// Path is the renderable form of a complete curve: a move-to the start
// followed by a single cubic-to the end.
type Path struct {
	Cubic curve.CubicBez
}

// NewPath builds the path start → (ctrl1, ctrl2) → end.
func NewPath(start, ctrl1, ctrl2, end Point) *Path {
	return &Path{Cubic: curve.CubicBez{
		P0: curve.Pt(start.X, start.Y),
		P1: curve.Pt(ctrl1.X, ctrl1.Y),
		P2: curve.Pt(ctrl2.X, ctrl2.Y),
		P3: curve.Pt(end.X, end.Y),
	}}
}

// nearestAccuracy bounds the error of the nearest-point search, in surface units.
const nearestAccuracy = 1e-3

// StrokeContains reports whether (x, y) lies within half the line width of
// the path. Surfaces without a native stroke hit test delegate to it.
func StrokeContains(p *Path, x, y, lineWidth float64) bool {
	if p == nil {
		return false
	}
	half := lineWidth / 2
	if half <= 0 {
		half = 0.5
	}
	distSq, _ := p.Cubic.Nearest(curve.Pt(x, y), nearestAccuracy)
	return distSq <= half*half
}

// Flatten samples the path into n+1 points along its parameter range.
func (p *Path) Flatten(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		c := p.Cubic.Eval(float64(i) / float64(n))
		pts = append(pts, Point{X: c.X, Y: c.Y})
	}
	return pts
}
