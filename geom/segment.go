package geom

// OnSegment reports whether q lies within the axis-aligned bounding box
// spanned by p and r. Contract: the caller must ensure p, q, r are
// collinear (typically via Orientation); under that precondition the
// bounding-box test is exactly "q lies on the closed segment pr". The
// function checks containment only, never alignment.
func OnSegment[T Coord](p, q, r Point[T]) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

// SegmentsIntersect reports whether the closed segments p1q1 and p2q2
// intersect, using DefaultEpsilon for the orientation tolerance.
func SegmentsIntersect[T Coord](p1, q1, p2, q2 Point[T]) bool {
	return SegmentsIntersectEps(p1, q1, p2, q2, DefaultEpsilon)
}

// SegmentsIntersectEps tests closed segments p1q1 and p2q2 for
// intersection, including touching endpoints and overlapping collinear
// segments. A proper crossing is signaled when the endpoints of each
// segment fall on opposite sides of the other (all four orientations
// non-collinear, each pair internally different). Degenerate cases — any
// orientation collinear — fall back to an OnSegment containment check on
// the relevant triple. Symmetric in its two segments.
func SegmentsIntersectEps[T Coord](p1, q1, p2, q2 Point[T], eps float64) bool {
	o1 := OrientationEps(p1, q1, p2, eps)
	o2 := OrientationEps(p1, q1, q2, eps)
	o3 := OrientationEps(p2, q2, p1, eps)
	o4 := OrientationEps(p2, q2, q1, eps)

	// General position: a strict crossing.
	if o1 != Collinear && o2 != Collinear && o3 != Collinear && o4 != Collinear &&
		o1 != o2 && o3 != o4 {
		return true
	}

	// Degenerate cases: an endpoint lies on the other segment's line.
	if o1 == Collinear && OnSegment(p1, p2, q1) {
		return true
	}
	if o2 == Collinear && OnSegment(p1, q2, q1) {
		return true
	}
	if o3 == Collinear && OnSegment(p2, p1, q2) {
		return true
	}
	if o4 == Collinear && OnSegment(p2, q1, q2) {
		return true
	}

	return false
}
