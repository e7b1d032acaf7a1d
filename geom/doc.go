// Package geom provides the core primitives of the planar kernel: the
// generic Point type, its ordering and tolerance-based equality, the
// distance metric, and the orientation and segment predicates every other
// planar subpackage is built on.
//
// Overview:
//
//   - Point[T] is an immutable (x, y) value over any signed integer or
//     floating-point coordinate type T. Ordering is lexicographic (x, then y)
//     and exists only to drive sorting; it carries no geometric meaning.
//   - Orientation classifies the turn direction of an ordered point triple
//     as Collinear, Clockwise or CounterClockwise. It is the single source
//     of truth for sign logic: convex-hull construction, segment
//     intersection and the rotating-calipers sweep all route through it (or
//     through the raw Cross product it is defined by), so tie-breaking is
//     consistent across the kernel.
//   - OnSegment and SegmentsIntersect build the closed-segment intersection
//     test from Orientation plus a bounding-box containment check.
//
// Precision model:
//
//   - All determinants, distances and comparisons accumulate in float64
//     regardless of T, so narrow coordinate types never overflow midway
//     through a computation. For int64 coordinates beyond ±2^26 the float64
//     mantissa can no longer hold cross products exactly; callers needing
//     exact predicates at that magnitude should scale their inputs down.
//   - Equality and the Collinear classification are tolerance-based:
//     |Δ| < eps with eps = DefaultEpsilon (1e-9) unless a caller supplies
//     its own via the ...Eps variants. For integer coordinates the
//     tolerance collapses to exact equality, since any nonzero integer
//     difference is ≥ 1.
//
// Error handling:
//
//   - The predicates in this package are total: every input produces a
//     defined result and no function returns an error. OnSegment documents
//     a collinearity precondition that is deliberately unchecked.
//
// Thread safety:
//
//   - Everything here is a pure function over value arguments; calls may be
//     made concurrently without synchronization.
package geom
