package geom

import "math"

// Direction is the three-way classification of a point triple's turn.
type Direction int

const (
	// Collinear means the triple spans no signed area beyond tolerance.
	Collinear Direction = iota

	// Clockwise means the triple turns right.
	Clockwise

	// CounterClockwise means the triple turns left.
	CounterClockwise
)

// String returns the Direction name for diagnostics.
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return "Collinear"
	}
}

// Opposite returns the mirrored classification: Clockwise and
// CounterClockwise swap, Collinear is its own opposite. For any
// non-collinear triple, Orientation(r, q, p) == Orientation(p, q, r).Opposite().
func (d Direction) Opposite() Direction {
	switch d {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	default:
		return Collinear
	}
}

// Cross returns the z-component of (p2-p1) × (q2-q1), evaluated in float64.
// It is the raw determinant that Orientation classifies; the
// rotating-calipers sweep in the hull package consumes it directly, so that
// every sign decision in the kernel derives from this one expression.
func Cross[T Coord](p1, p2, q1, q2 Point[T]) float64 {
	ux := float64(p2.X) - float64(p1.X)
	uy := float64(p2.Y) - float64(p1.Y)
	vx := float64(q2.X) - float64(q1.X)
	vy := float64(q2.Y) - float64(q1.Y)

	return ux*vy - uy*vx
}

// Orientation classifies the turn p→q→r with DefaultEpsilon.
func Orientation[T Coord](p, q, r Point[T]) Direction {
	return OrientationEps(p, q, r, DefaultEpsilon)
}

// OrientationEps classifies the turn p→q→r: the sign of the cross product
// (q-p) × (r-q) decides between Clockwise and CounterClockwise, and any
// magnitude below eps is Collinear. The determinant is evaluated in float64
// regardless of T to resist cancellation on large or high-precision inputs.
func OrientationEps[T Coord](p, q, r Point[T], eps float64) Direction {
	val := Cross(p, q, q, r)
	if math.Abs(val) < eps {
		return Collinear
	}
	if val > 0 {
		return CounterClockwise
	}

	return Clockwise
}
