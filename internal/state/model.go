package state

const (
	// MarkerRadius is the half-size of the square drawn for every point.
	MarkerRadius = 3.0
	// SelectRadius is the half-size of the box a click must land in to pick a point.
	SelectRadius = MarkerRadius
)

// Point is a position on the drawing surface, in surface coordinates
// after scale correction. Curves hold points by pointer and move them in place.
type Point struct {
	X, Y float64
}

// NewPoint returns a point at (x, y).
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Set overwrites the coordinates.
func (p *Point) Set(x, y float64) {
	p.X = x
	p.Y = y
}

// DrawMarker fills the square marker centred on the point.
func (p *Point) DrawMarker(s Surface) {
	s.FillRect(p.X-MarkerRadius, p.Y-MarkerRadius, MarkerRadius*2, MarkerRadius*2)
}

// HitTest reports whether q lies inside the point's select box, boundaries included.
func (p *Point) HitTest(q Point) bool {
	return q.X >= p.X-SelectRadius && q.X <= p.X+SelectRadius &&
		q.Y >= p.Y-SelectRadius && q.Y <= p.Y+SelectRadius
}
