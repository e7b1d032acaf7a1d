// Package hull builds convex hulls of planar point sets and measures their
// diameter with the rotating-calipers sweep.
//
// Algorithm Outline (ConvexHull, Andrew's monotone chain):
//  1. Copy the input and sort the copy lexicographically (x, then y).
//  2. Build the lower chain left-to-right: pop trailing vertices while the
//     last three do not make a strict counter-clockwise turn, then push.
//  3. Build the upper chain right-to-left the same way, never popping into
//     the finished lower chain.
//  4. Drop the final vertex, which closed the loop back onto the start.
//
// The strict turn test excludes collinear boundary points, so the result
// contains only vertices that are strict corners, in counter-clockwise
// order with no repeated start/end vertex. Inputs of two or fewer points
// are returned as an unchanged copy — no hull shape reduction is possible.
//
// Algorithm Outline (Diameter, rotating calipers):
//  1. Compute the convex hull: the diameter of a point set equals the
//     diameter of its hull.
//  2. For each hull edge i→i+1, advance a second pointer j forward while
//     the cross product of edge i and edge j→j+1 is strictly positive,
//     i.e. while advancing still increases the supporting-line distance.
//     The farthest-point function is unimodal around a convex polygon, and
//     j is never reset between edges, so total advancement is O(n).
//  3. After each advancement phase, record the squared distances from both
//     endpoints of edge i to hull[j] as diameter candidates.
//  4. The square root of the running maximum is the diameter.
//
// Complexity:
//
//	ConvexHull: O(n log n) — dominated by the sort; the pop loop is O(n) amortized.
//	Diameter:   O(n log n) — hull construction; the caliper sweep itself is O(n).
//
// Errors:
//   - ErrTooFewPoints — Diameter of fewer than two points; the returned
//     distance is still the defined degenerate value 0, so relaxed callers
//     may ignore the error.
//
// Purity:
//
//	Neither operation mutates its input; sorting happens on a private copy.
package hull
