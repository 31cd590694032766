package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// mustPoint unwraps an optional point accessor:
//
//	start := mustPoint(t)(c.Start())
func mustPoint(t *testing.T) func(Point, bool) Point {
	return func(p Point, ok bool) Point {
		t.Helper()
		if !ok {
			t.Fatal("point is not set")
		}
		return p
	}
}
