package state

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"BezierBoard/internal/logging"
)

// Button identifies which pointer button an event came from.
type Button int

const (
	// ButtonPrimary selects and drags points.
	ButtonPrimary Button = iota
	// ButtonSecondary places points, starting or finishing curves.
	ButtonSecondary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// Editor turns pointer events into curve geometry and redraws its surface
// after every change. It is not safe for concurrent use; the host delivers
// events one at a time on its UI thread.
type Editor struct {
	surface Surface
	style   Style
	log     *slog.Logger

	curves []*Curve

	pendingSecondPoint bool
	dragging           bool
	selected           []*Curve // curves whose selected point follows the cursor

	scale float64
}

// NewEditor returns an editor bound to s and draws the empty board.
func NewEditor(s Surface, st Style) *Editor {
	e := &Editor{
		surface: s,
		style:   st,
		log:     logging.WithComponent("editor"),
		curves:  make([]*Curve, 0),
		scale:   1,
	}
	e.Render()
	return e
}

// Curves returns the curves in insertion order. The slice is a copy; the
// curves are not.
func (e *Editor) Curves() []*Curve {
	out := make([]*Curve, len(e.curves))
	copy(out, e.curves)
	return out
}

// Len returns the number of curves.
func (e *Editor) Len() int { return len(e.curves) }

// PendingSecondPoint reports whether the next placement completes the last curve.
func (e *Editor) PendingSecondPoint() bool { return e.pendingSecondPoint }

// Dragging reports whether a primary press grabbed at least one point.
func (e *Editor) Dragging() bool { return e.dragging }

// Scale returns the current scale factor.
func (e *Editor) Scale() float64 { return e.scale }

// Style returns the editor's style.
func (e *Editor) Style() Style { return e.style }

// surfacePoint converts a raw pointer position into surface coordinates.
func (e *Editor) surfacePoint(x, y float64) Point {
	return Point{X: x / e.scale, Y: y / e.scale}
}

// PointerDown handles a button press at raw pointer position (x, y).
func (e *Editor) PointerDown(b Button, x, y float64) {
	q := e.surfacePoint(x, y)
	switch b {
	case ButtonPrimary:
		e.pressPrimary(q)
	case ButtonSecondary:
		e.pressSecondary(q)
	}
}

// PointerMove handles a pointer move. Outside a drag it does nothing.
func (e *Editor) PointerMove(x, y float64) {
	if !e.dragging {
		return
	}
	q := e.surfacePoint(x, y)
	for _, c := range e.selected {
		c.MoveSelectedPoint(q)
	}
	e.Render()
}

// PointerUp ends any drag and clears the selection, whether or not
// anything moved.
func (e *Editor) PointerUp(b Button) {
	if b != ButtonPrimary {
		return
	}
	for _, c := range e.selected {
		c.ClearSelection()
	}
	e.selected = nil
	e.dragging = false
}

// pressPrimary selects every curve with a point under q. Later curves are
// drawn on top, so they are tested first. A press that hits no point
// toggles the topmost curve whose stroke is under q.
func (e *Editor) pressPrimary(q Point) {
	e.selected = e.selected[:0]
	for i := len(e.curves) - 1; i >= 0; i-- {
		c := e.curves[i]
		if c.HitTestPoints(q) != nil {
			e.selected = append(e.selected, c)
		}
	}
	if len(e.selected) > 0 {
		e.dragging = true
		e.log.Debug("points selected", slog.Int("count", len(e.selected)))
		return
	}

	e.surface.SetLineWidth(e.style.StrokeWidth)
	for i := len(e.curves) - 1; i >= 0; i-- {
		c := e.curves[i]
		if c.HitTestStroke(q, e.surface) {
			e.log.Debug("curve toggled", slog.String("curve", c.ID), slog.Bool("active", c.IsActive()))
			e.Render()
			return
		}
	}
}

// pressSecondary places a point. Every curve is deactivated first; a press
// on an existing anchor snaps exactly onto it, the first-added curve
// winning. The point then starts a new curve or completes the pending one.
func (e *Editor) pressSecondary(q Point) {
	for _, c := range e.curves {
		c.Deactivate()
	}
	for _, c := range e.curves {
		if p := c.HitTestEndpoints(q); p != nil {
			q = *p
			break
		}
	}

	if err := e.place(q); err != nil {
		e.log.Warn("placement rejected", slog.Float64("x", q.X), slog.Float64("y", q.Y), slog.Any("err", err))
	}
	e.Render()
}

func (e *Editor) place(q Point) error {
	if !e.pendingSecondPoint {
		c := NewCurve()
		c.SetStart(NewPoint(q.X, q.Y))
		e.curves = append(e.curves, c)
		e.pendingSecondPoint = true
		e.log.Debug("curve started", slog.String("curve", c.ID), slog.Float64("x", q.X), slog.Float64("y", q.Y))
		return nil
	}

	c := e.curves[len(e.curves)-1]
	if err := c.Complete(q, e.style.ControlOffset); err != nil {
		return fmt.Errorf("curve %s: %w", c.ID, err)
	}
	e.pendingSecondPoint = false
	e.log.Debug("curve completed", slog.String("curve", c.ID), slog.Float64("x", q.X), slog.Float64("y", q.Y))
	return nil
}

// DeleteLatestCurve undoes the last placement on the newest curve, unless
// it is saved. A complete curve loses its end and control points and waits
// for a new end; an incomplete curve is removed. It reports whether
// anything changed.
func (e *Editor) DeleteLatestCurve() bool {
	if len(e.curves) == 0 {
		return false
	}
	last := e.curves[len(e.curves)-1]
	if last.IsSaved() {
		return false
	}

	e.dropSelection(last)
	if last.HasEnd() {
		last.ClearEnd()
		e.pendingSecondPoint = true
		e.log.Debug("curve end deleted", slog.String("curve", last.ID))
	} else {
		e.curves[len(e.curves)-1] = nil
		e.curves = e.curves[:len(e.curves)-1]
		e.pendingSecondPoint = false
		e.log.Debug("curve deleted", slog.String("curve", last.ID))
	}
	e.Render()
	return true
}

func (e *Editor) dropSelection(c *Curve) {
	kept := e.selected[:0]
	for _, sc := range e.selected {
		if sc != c {
			kept = append(kept, sc)
		}
	}
	e.selected = kept
	if len(e.selected) == 0 {
		e.dragging = false
	}
	c.ClearSelection()
}

// SaveAllCurves freezes every complete curve that is not saved yet. A
// trailing curve still waiting for its end is left alone. It returns the
// number of curves saved.
func (e *Editor) SaveAllCurves() int {
	n := 0
	for _, c := range e.curves {
		if c.IsSaved() || !c.IsComplete() {
			continue
		}
		e.dropSelection(c)
		c.Save()
		n++
	}
	e.log.Debug("curves saved", slog.Int("count", n))
	e.Render()
	return n
}

// Rescale sets the factor applied to the surface while rendering and used
// to map pointer positions back into surface coordinates.
func (e *Editor) Rescale(factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("rescale to %g: %w", factor, ErrInvalidScale)
	}
	e.scale = factor
	e.log.Debug("rescaled", slog.Float64("scale", factor))
	e.Render()
	return nil
}

// SetStrokeColor changes the colour every curve is drawn in.
func (e *Editor) SetStrokeColor(c color.Color) {
	e.style.StrokeColor = c
	e.Render()
}

// SetStrokeWidth changes the stroke width, which is also the tolerance of
// stroke hit tests. Non-positive widths are ignored.
func (e *Editor) SetStrokeWidth(w float64) {
	if w <= 0 {
		return
	}
	e.style.StrokeWidth = w
	e.Render()
}

// Render redraws the whole board onto the bound surface.
func (e *Editor) Render() {
	e.Draw(e.surface)
}

// Draw renders every curve onto s in insertion order, inside the scaled
// coordinate space. The transform is reset afterwards so scale factors
// never compound across frames.
func (e *Editor) Draw(s Surface) {
	e.DrawScaled(s, e.scale)
}

// DrawScaled is Draw with an explicit scale instead of the editor's zoom.
// Exports use it to render at surface size whatever the view is zoomed to.
func (e *Editor) DrawScaled(s Surface, scale float64) {
	s.Clear()
	s.SetStrokeColor(e.style.StrokeColor)
	s.SetLineWidth(e.style.StrokeWidth)
	s.SetScale(scale)
	for _, c := range e.curves {
		c.Render(s, e.style)
	}
	s.ResetTransform()
}

