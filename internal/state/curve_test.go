package state

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func completeCurve(t *testing.T, sx, sy, ex, ey float64) *Curve {
	t.Helper()
	c := NewCurve()
	c.SetStart(NewPoint(sx, sy))
	if err := c.Complete(Point{ex, ey}, 10); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	return c
}

func TestCurveCompleteSynthesizesControls(t *testing.T) {
	c := completeCurve(t, 10, 10, 110, 10)

	diff(t, Point{10, 10}, mustPoint(t)(c.Start()))
	diff(t, Point{110, 10}, mustPoint(t)(c.End()))
	diff(t, Point{0, 10}, mustPoint(t)(c.Ctrl1()))
	diff(t, Point{120, 10}, mustPoint(t)(c.Ctrl2()))
	if !c.IsComplete() || c.Path() == nil {
		t.Fatal("curve should be complete with a path")
	}
	if c.IsActive() {
		t.Error("a freshly completed curve starts inactive")
	}
}

func TestCurveCompleteDiagonal(t *testing.T) {
	tests := []struct {
		name   string
		sx, sy float64
		ex, ey float64
	}{
		{"diagonal", 0, 0, 30, 40},
		{"leftwards", 100, 50, 20, 50},
		{"upwards", 5, 90, 5, -10},
		{"short", 1, 1, 1.5, 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := completeCurve(t, tt.sx, tt.sy, tt.ex, tt.ey)
			dx, dy := tt.ex-tt.sx, tt.ey-tt.sy
			l := math.Hypot(dx, dy)
			ux, uy := dx/l, dy/l

			diff(t, Point{tt.sx - 10*ux, tt.sy - 10*uy}, mustPoint(t)(c.Ctrl1()), approx)
			diff(t, Point{tt.ex + 10*ux, tt.ey + 10*uy}, mustPoint(t)(c.Ctrl2()), approx)

			// ctrl1 and ctrl2 sit exactly 10 units beyond their anchors on the line.
			c1 := mustPoint(t)(c.Ctrl1())
			c2 := mustPoint(t)(c.Ctrl2())
			if d := math.Hypot(c1.X-tt.sx, c1.Y-tt.sy); math.Abs(d-10) > 1e-9 {
				t.Errorf("ctrl1 is %g from start, want 10", d)
			}
			if d := math.Hypot(c2.X-tt.ex, c2.Y-tt.ey); math.Abs(d-10) > 1e-9 {
				t.Errorf("ctrl2 is %g from end, want 10", d)
			}
		})
	}
}

func TestCurveCompleteDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
	}{
		{"same point", Point{5, 5}, Point{5, 5}},
		{"subnormal length", Point{0, 0}, Point{1e-310, 0}},
		{"overflowing span", Point{-math.MaxFloat64, 0}, Point{math.MaxFloat64, 0}},
		{"NaN end", Point{0, 0}, Point{math.NaN(), 1}},
		{"infinite end", Point{0, 0}, Point{math.Inf(1), 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCurve()
			c.SetStart(NewPoint(tt.start.X, tt.start.Y))
			err := c.Complete(tt.end, 10)
			if !errors.Is(err, ErrDegenerateCurve) {
				t.Fatalf("got %v, want ErrDegenerateCurve", err)
			}
			if c.HasEnd() || c.IsComplete() {
				t.Error("a rejected completion must leave the curve incomplete")
			}
			if _, ok := c.Ctrl1(); ok {
				t.Error("a rejected completion must not set control points")
			}
		})
	}
}

func TestCurveSetControlPoints(t *testing.T) {
	c := completeCurve(t, 10, 10, 110, 10)
	c.SetCtrl1(NewPoint(10, 60))
	c.SetCtrl2(NewPoint(110, 60))

	diff(t, Point{10, 60}, mustPoint(t)(c.Ctrl1()))
	diff(t, Point{110, 60}, mustPoint(t)(c.Ctrl2()))
	cb := c.Path().Cubic
	diff(t, []Point{{10, 60}, {110, 60}}, []Point{{cb.P1.X, cb.P1.Y}, {cb.P2.X, cb.P2.Y}})

	c.Save()
	c.SetCtrl1(NewPoint(0, 0))
	c.SetCtrl2(NewPoint(0, 0))
	diff(t, Point{10, 60}, mustPoint(t)(c.Ctrl1()))
	diff(t, Point{110, 60}, mustPoint(t)(c.Ctrl2()))
	cb = c.Path().Cubic
	diff(t, Point{110, 60}, Point{cb.P2.X, cb.P2.Y})
}

func TestCurveCompleteWithoutStart(t *testing.T) {
	if err := NewCurve().Complete(Point{1, 1}, 10); !errors.Is(err, ErrNoStart) {
		t.Fatalf("got %v, want ErrNoStart", err)
	}
}

func TestIncompleteCurveRender(t *testing.T) {
	c := NewCurve()
	c.SetStart(NewPoint(10, 10))
	c.Activate()

	r := newRecorder()
	c.Render(r, DefaultStyle())
	diff(t, []string{"rect 7,7 6x6 a=1"}, r.calls)

	if c.HitTestStroke(Point{10, 10}, r) {
		t.Error("an incomplete curve has no stroke to hit")
	}
}

func TestCurveRenderOrder(t *testing.T) {
	c := completeCurve(t, 10, 10, 110, 10)
	st := DefaultStyle()

	r := newRecorder()
	c.Render(r, st)
	diff(t, []string{
		"rect 7,7 6x6 a=1",
		"rect 107,7 6x6 a=1",
		"cubic 10,10 0,10 120,10 110,10 a=1",
	}, r.calls)

	c.Activate()
	r = newRecorder()
	c.Render(r, st)
	diff(t, []string{
		"rect 7,7 6x6 a=1",
		"line 10,10-0,10 a=0.5",
		"rect -3,7 6x6 a=0.5",
		"rect 107,7 6x6 a=1",
		"line 110,10-120,10 a=0.5",
		"rect 117,7 6x6 a=0.5",
		"cubic 10,10 0,10 120,10 110,10 a=1",
	}, r.calls)
}

func TestSavedCurveRender(t *testing.T) {
	c := completeCurve(t, 10, 10, 110, 10)
	c.Activate()
	c.Save()

	r := newRecorder()
	c.Render(r, DefaultStyle())
	diff(t, []string{
		"rect 7,7 6x6 a=0.3",
		"rect 107,7 6x6 a=0.3",
		"cubic 10,10 0,10 120,10 110,10 a=0.3",
	}, r.calls)
	if r.alpha != 1 {
		t.Errorf("saved opacity leaked: alpha is %g after render", r.alpha)
	}
}

func TestActivationOnlyAffectsHandles(t *testing.T) {
	c := completeCurve(t, 10, 10, 110, 10)
	count := func() (anchors, handles int) {
		r := newRecorder()
		c.Render(r, DefaultStyle())
		for _, call := range r.calls {
			switch {
			case strings.HasPrefix(call, "rect") && strings.HasSuffix(call, "a=1"):
				anchors++
			case strings.HasSuffix(call, "a=0.5"):
				handles++
			}
		}
		return anchors, handles
	}

	r := newRecorder()
	if !c.HitTestStroke(Point{60, 10}, r) {
		t.Fatal("click on the stroke should hit")
	}
	if a, h := count(); a != 2 || h != 4 {
		t.Errorf("active: %d anchors, %d handle calls; want 2 and 4", a, h)
	}
	if !c.HitTestStroke(Point{60, 10}, r) {
		t.Fatal("second click on the stroke should hit")
	}
	if a, h := count(); a != 2 || h != 0 {
		t.Errorf("inactive: %d anchors, %d handle calls; want 2 and 0", a, h)
	}
	if c.HitTestStroke(Point{60, 30}, r) {
		t.Error("click away from the stroke should miss")
	}
	if c.IsActive() {
		t.Error("a miss must not toggle the curve")
	}
}

func TestCurveHitTestPoints(t *testing.T) {
	c := completeCurve(t, 10, 10, 110, 10)

	if p := c.HitTestPoints(Point{0, 10}); p != nil {
		t.Error("control points of an inactive curve must not match")
	}
	if p := c.HitTestPoints(Point{111, 9}); p == nil || *p != (Point{110, 10}) {
		t.Errorf("got %v, want the end point", p)
	}
	if c.SelectedPoint() == nil || *c.SelectedPoint() != (Point{110, 10}) {
		t.Error("a match must select the point")
	}

	c.Activate()
	if p := c.HitTestPoints(Point{1, 11}); p == nil || *p != (Point{0, 10}) {
		t.Errorf("got %v, want ctrl1", p)
	}
	if p := c.HitTestPoints(Point{119, 10}); p == nil || *p != (Point{120, 10}) {
		t.Errorf("got %v, want ctrl2", p)
	}
	if p := c.HitTestPoints(Point{60, 60}); p != nil {
		t.Errorf("got %v, want no match", p)
	}
	if *c.SelectedPoint() != (Point{120, 10}) {
		t.Error("a miss must not change the selection")
	}
}

func TestCurveFindPointIsPure(t *testing.T) {
	c := completeCurve(t, 10, 10, 110, 10)
	if p := c.FindPoint(Point{10, 10}); p == nil {
		t.Fatal("expected a match on the start")
	}
	if c.SelectedPoint() != nil {
		t.Error("FindPoint must not select")
	}
	p := c.FindPoint(Point{10, 10})
	c.Select(p)
	if c.SelectedPoint() != p {
		t.Error("Select should select the given point")
	}
	c.Select(NewPoint(10, 10))
	if c.SelectedPoint() != nil {
		t.Error("Select must reject points the curve does not own")
	}
}

func TestCurveHitTestEndpoints(t *testing.T) {
	c := completeCurve(t, 10, 10, 110, 10)
	c.Activate()

	if p := c.HitTestEndpoints(Point{0, 10}); p != nil {
		t.Error("control points never match an endpoint test")
	}
	if p := c.HitTestEndpoints(Point{12, 12}); p == nil || *p != (Point{10, 10}) {
		t.Errorf("got %v, want the start", p)
	}
	if p := c.HitTestEndpoints(Point{108, 8}); p == nil || *p != (Point{110, 10}) {
		t.Errorf("got %v, want the end", p)
	}
	if c.SelectedPoint() != nil {
		t.Error("endpoint tests must not select")
	}
}

func TestCurveMoveSelectedPoint(t *testing.T) {
	c := completeCurve(t, 10, 10, 110, 10)

	c.MoveSelectedPoint(Point{500, 500})
	diff(t, Point{10, 10}, mustPoint(t)(c.Start()))

	c.HitTestPoints(Point{10, 10})
	c.MoveSelectedPoint(Point{10, 60})
	diff(t, Point{10, 60}, mustPoint(t)(c.Start()))
	diff(t, Point{10, 60}, Point{c.Path().Cubic.P0.X, c.Path().Cubic.P0.Y})

	r := newRecorder()
	if c.HitTestStroke(Point{60, 10}, r) {
		t.Error("stroke test must follow the moved geometry")
	}
}

func TestCurveSaveIsOneWay(t *testing.T) {
	c := completeCurve(t, 10, 10, 110, 10)
	c.HitTestPoints(Point{10, 10})
	c.Save()
	c.Save()

	if !c.IsSaved() {
		t.Fatal("curve should be saved")
	}
	c.MoveSelectedPoint(Point{99, 99})
	c.SetStart(NewPoint(1, 1))
	c.SetEnd(NewPoint(2, 2))
	c.ClearEnd()
	c.Activate()
	if err := c.Complete(Point{3, 3}, 10); !errors.Is(err, ErrCurveSaved) {
		t.Errorf("Complete on a saved curve: got %v, want ErrCurveSaved", err)
	}

	diff(t, Point{10, 10}, mustPoint(t)(c.Start()))
	diff(t, Point{110, 10}, mustPoint(t)(c.End()))
	diff(t, Point{0, 10}, mustPoint(t)(c.Ctrl1()))
	diff(t, Point{120, 10}, mustPoint(t)(c.Ctrl2()))
	if c.IsActive() {
		t.Error("a saved curve cannot be activated")
	}
	if c.HitTestPoints(Point{10, 10}) != nil || c.HitTestEndpoints(Point{10, 10}) != nil {
		t.Error("a saved curve must not match hit tests")
	}
	if c.HitTestStroke(Point{60, 10}, newRecorder()) {
		t.Error("a saved curve must not match stroke tests")
	}
}

func TestCurveClearEnd(t *testing.T) {
	c := completeCurve(t, 10, 10, 110, 10)
	c.HitTestPoints(Point{110, 10})
	c.ClearEnd()

	if c.HasEnd() || c.IsComplete() || c.Path() != nil {
		t.Error("ClearEnd should revert the curve to incomplete")
	}
	if _, ok := c.Ctrl1(); ok {
		t.Error("ctrl1 should be cleared with the end")
	}
	if _, ok := c.Ctrl2(); ok {
		t.Error("ctrl2 should be cleared with the end")
	}
	if c.SelectedPoint() != nil {
		t.Error("a cleared end cannot stay selected")
	}
	diff(t, Point{10, 10}, mustPoint(t)(c.Start()))
}

func TestCurveIDsAreUnique(t *testing.T) {
	a, b := NewCurve(), NewCurve()
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("ids %q and %q should be distinct and non-empty", a.ID, b.ID)
	}
}
