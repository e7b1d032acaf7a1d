package polygon

import "github.com/katalvlaran/planar/geom"

// Winding reports the traversal direction of a simple polygon: the sign of
// the raw shoelace sum, classified with the package tolerance. Degenerate
// polygons (all vertices collinear) report geom.Collinear. Fewer than three
// vertices yield (geom.Collinear, ErrTooFewVertices).
//
// Complexity: O(n) time, O(1) memory.
func Winding[T geom.Coord](poly []geom.Point[T], opts ...Option) (geom.Direction, error) {
	sum, err := shoelace(poly)
	if err != nil {
		return geom.Collinear, err
	}
	cfg := buildOptions(opts)

	switch {
	case sum > cfg.Epsilon:
		return geom.CounterClockwise, nil
	case sum < -cfg.Epsilon:
		return geom.Clockwise, nil
	default:
		return geom.Collinear, nil
	}
}

// IsConvex reports whether a simple polygon is convex: every non-collinear
// turn over consecutive vertex triples must agree in direction. Collinear
// triples (straight boundary runs) do not break convexity; a polygon with
// no turns at all is degenerate and reports false.
// Fewer than three vertices yield (false, ErrTooFewVertices).
//
// Complexity: O(n) time, O(1) memory.
func IsConvex[T geom.Coord](poly []geom.Point[T], opts ...Option) (bool, error) {
	n := len(poly)
	if n < 3 {
		return false, ErrTooFewVertices
	}
	cfg := buildOptions(opts)

	var ccw, cw int
	for i := 0; i < n; i++ {
		p := poly[i]
		q := poly[(i+1)%n]
		r := poly[(i+2)%n]

		switch geom.OrientationEps(p, q, r, cfg.Epsilon) {
		case geom.CounterClockwise:
			ccw++
		case geom.Clockwise:
			cw++
		}
	}
	if ccw == 0 && cw == 0 {
		return false, nil
	}

	return ccw == 0 || cw == 0, nil
}
