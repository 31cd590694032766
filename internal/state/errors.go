package state

import "errors"

var (
	// ErrDegenerateCurve is returned when a curve's end coincides with its
	// start, which leaves no direction for the control points.
	ErrDegenerateCurve = errors.New("curve start and end coincide")
	// ErrCurveSaved is returned when geometry of a saved curve would change.
	ErrCurveSaved = errors.New("curve is saved")
	// ErrNoStart is returned when a curve is completed before it has a start.
	ErrNoStart = errors.New("curve has no start point")
	// ErrInvalidScale is returned for non-positive or non-finite scale factors.
	ErrInvalidScale = errors.New("invalid scale factor")
)
