package state

import (
	"fmt"

	"github.com/google/uuid"
	"honnef.co/go/curve"
)

// Curve is a cubic Bézier curve under construction or edit.
//
// A curve with only a start is incomplete. Setting the end together with
// both control points completes it. Once saved a curve is frozen: no point
// moves, no hit test matches and its handles are never drawn.
type Curve struct {
	ID string

	start, end   *Point
	ctrl1, ctrl2 *Point

	// selected is one of the four points above, or nil.
	selected *Point

	saved  bool
	active bool

	path *Path
}

// NewCurve returns an empty curve with a fresh identifier.
func NewCurve() *Curve {
	return &Curve{ID: uuid.NewString()}
}

func (c *Curve) SetStart(p *Point) {
	if c.saved {
		return
	}
	c.start = p
	c.RebuildPath()
}

func (c *Curve) SetEnd(p *Point) {
	if c.saved {
		return
	}
	c.end = p
	c.RebuildPath()
}

func (c *Curve) SetCtrl1(p *Point) {
	if c.saved {
		return
	}
	c.ctrl1 = p
	c.RebuildPath()
}

func (c *Curve) SetCtrl2(p *Point) {
	if c.saved {
		return
	}
	c.ctrl2 = p
	c.RebuildPath()
}

// Complete sets the end point and synthesizes both control points so the
// curve starts out as a straight segment: ctrl1 sits offset units before
// the start and ctrl2 offset units past the end, along start → end.
func (c *Curve) Complete(end Point, offset float64) error {
	if c.saved {
		return ErrCurveSaved
	}
	if c.start == nil {
		return ErrNoStart
	}
	start, last := curve.Pt(c.start.X, c.start.Y), curve.Pt(end.X, end.Y)
	d := last.Sub(start)
	// Subnormal lengths overflow 1/|d| and huge spans overflow |d|; both
	// leave no usable direction.
	u := d.Normalize()
	if d.Hypot() == 0 || u.IsNaN() || u.IsInf() {
		return fmt.Errorf("complete at (%g, %g): %w", end.X, end.Y, ErrDegenerateCurve)
	}
	u = u.Mul(offset)
	c1, c2 := start.Translate(u.Negate()), last.Translate(u)
	if c1.IsNaN() || c1.IsInf() || c2.IsNaN() || c2.IsInf() {
		return fmt.Errorf("complete at (%g, %g): %w", end.X, end.Y, ErrDegenerateCurve)
	}

	c.end = NewPoint(end.X, end.Y)
	c.ctrl1 = NewPoint(c1.X, c1.Y)
	c.ctrl2 = NewPoint(c2.X, c2.Y)
	c.RebuildPath()
	return nil
}

// ClearEnd drops the end and both control points, leaving the curve incomplete.
func (c *Curve) ClearEnd() {
	if c.saved {
		return
	}
	if c.selected != nil && c.selected != c.start {
		c.selected = nil
	}
	c.end, c.ctrl1, c.ctrl2 = nil, nil, nil
	c.RebuildPath()
}

// RebuildPath refreshes the cached path from the current points. It must
// run after any point moves so stroke hit tests match what is drawn.
func (c *Curve) RebuildPath() {
	if !c.IsComplete() {
		c.path = nil
		return
	}
	c.path = NewPath(*c.start, *c.ctrl1, *c.ctrl2, *c.end)
}

// Path returns the cached path, or nil while the curve is incomplete.
func (c *Curve) Path() *Path { return c.path }

func (c *Curve) Start() (Point, bool) { return pointValue(c.start) }
func (c *Curve) End() (Point, bool)   { return pointValue(c.end) }
func (c *Curve) Ctrl1() (Point, bool) { return pointValue(c.ctrl1) }
func (c *Curve) Ctrl2() (Point, bool) { return pointValue(c.ctrl2) }

func pointValue(p *Point) (Point, bool) {
	if p == nil {
		return Point{}, false
	}
	return *p, true
}

func (c *Curve) HasStart() bool { return c.start != nil }
func (c *Curve) HasEnd() bool   { return c.end != nil }
func (c *Curve) IsSaved() bool  { return c.saved }
func (c *Curve) IsActive() bool { return c.active }

// IsComplete reports whether all four points are set.
func (c *Curve) IsComplete() bool {
	return c.start != nil && c.end != nil && c.ctrl1 != nil && c.ctrl2 != nil
}

// Save freezes the curve. There is no way back.
func (c *Curve) Save() {
	c.saved = true
	c.active = false
	c.selected = nil
}

func (c *Curve) Activate() {
	if !c.saved {
		c.active = true
	}
}

func (c *Curve) Deactivate() { c.active = false }

// FindPoint returns the point under q, checking start, ctrl1, end and ctrl2
// in that order. Control points only match while the curve is active.
// Saved curves never match.
func (c *Curve) FindPoint(q Point) *Point {
	if c.saved {
		return nil
	}
	for _, p := range c.candidates() {
		if p.HitTest(q) {
			return p
		}
	}
	return nil
}

func (c *Curve) candidates() []*Point {
	pts := make([]*Point, 0, 4)
	if c.start != nil {
		pts = append(pts, c.start)
	}
	if c.active && c.ctrl1 != nil {
		pts = append(pts, c.ctrl1)
	}
	if c.end != nil {
		pts = append(pts, c.end)
	}
	if c.active && c.ctrl2 != nil {
		pts = append(pts, c.ctrl2)
	}
	return pts
}

// Select marks p as the point MoveSelectedPoint will move. p must be one of
// the curve's own points; anything else clears the selection.
func (c *Curve) Select(p *Point) {
	c.selected = nil
	if p == nil || c.saved {
		return
	}
	switch p {
	case c.start, c.end, c.ctrl1, c.ctrl2:
		c.selected = p
	}
}

// ClearSelection forgets the selected point.
func (c *Curve) ClearSelection() { c.selected = nil }

// SelectedPoint returns the selected point, or nil.
func (c *Curve) SelectedPoint() *Point { return c.selected }

// HitTestPoints finds the point under q and, on a match, selects it.
func (c *Curve) HitTestPoints(q Point) *Point {
	p := c.FindPoint(q)
	if p != nil {
		c.selected = p
	}
	return p
}

// HitTestEndpoints is FindPoint restricted to start and end. It does not
// change the selection.
func (c *Curve) HitTestEndpoints(q Point) *Point {
	if c.saved {
		return nil
	}
	if c.start != nil && c.start.HitTest(q) {
		return c.start
	}
	if c.end != nil && c.end.HitTest(q) {
		return c.end
	}
	return nil
}

// HitTestStroke reports whether q lies on the drawn curve, using the
// surface's current line width as tolerance. A hit toggles the curve
// between active and inactive.
func (c *Curve) HitTestStroke(q Point, s Surface) bool {
	if c.saved || c.path == nil {
		return false
	}
	if !s.IsPointInStroke(c.path, q.X, q.Y) {
		return false
	}
	c.active = !c.active
	return true
}

// MoveSelectedPoint moves the selected point to pos and rebuilds the path.
// Without a selection, or on a saved curve, it does nothing.
func (c *Curve) MoveSelectedPoint(pos Point) {
	if c.saved || c.selected == nil {
		return
	}
	c.selected.Set(pos.X, pos.Y)
	c.RebuildPath()
}

// Render draws the curve. Anchors are always drawn; handles only while the
// curve is active and unsaved; the stroke once the curve is complete.
// Saved curves are drawn at st.SavedOpacity.
func (c *Curve) Render(s Surface, st Style) {
	if c.saved {
		s.Save()
		s.SetAlpha(st.SavedOpacity)
		defer s.Restore()
	}
	handles := c.active && !c.saved

	if c.start != nil {
		c.start.DrawMarker(s)
		if handles && c.ctrl1 != nil {
			drawHandle(s, st, c.start, c.ctrl1)
		}
	}
	if c.end != nil {
		c.end.DrawMarker(s)
		if handles && c.ctrl2 != nil {
			drawHandle(s, st, c.end, c.ctrl2)
		}
	}
	if c.path != nil {
		s.StrokePath(c.path)
	}
}

func drawHandle(s Surface, st Style, anchor, ctrl *Point) {
	s.Save()
	s.SetAlpha(st.ControlOpacity)
	s.StrokeLine(anchor.X, anchor.Y, ctrl.X, ctrl.Y)
	ctrl.DrawMarker(s)
	s.Restore()
}
