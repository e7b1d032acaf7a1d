package polygon

import "github.com/katalvlaran/planar/geom"

// Contains reports whether p lies inside or on the boundary of a simple
// polygon, by casting a ray from p to a far-right extreme at the same y
// and counting edge crossings. Points exactly on an edge report true.
// Fewer than three vertices yield (false, ErrTooFewVertices).
//
// Complexity: O(n) time, O(1) memory.
func Contains[T geom.Coord](poly []geom.Point[T], p geom.Point[T], opts ...Option) (bool, error) {
	n := len(poly)
	if n < 3 {
		return false, ErrTooFewVertices
	}
	cfg := buildOptions(opts)

	extreme := geom.Point[T]{X: geom.MaxValue[T](), Y: p.Y}

	count := 0
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		if geom.SegmentsIntersectEps(poly[i], poly[next], p, extreme, cfg.Epsilon) {
			// The ray is collinear with this edge: parity breaks down, but
			// the answer is exactly "does p sit on the edge itself".
			if geom.OrientationEps(poly[i], p, poly[next], cfg.Epsilon) == geom.Collinear {
				return geom.OnSegment(poly[i], p, poly[next]), nil
			}
			count++
		}
	}

	return count%2 == 1, nil
}
