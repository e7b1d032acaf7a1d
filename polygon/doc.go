// Package polygon answers queries over simple polygons given as vertex
// lists: shoelace area, ray-cast point containment, winding direction and
// convexity.
//
// A polygon is an ordered []geom.Point[T] in either winding order,
// implicitly closed — the last vertex connects back to the first. The
// package does not verify simplicity (non-self-intersection); callers own
// that contract. Malformed input yields deterministic numeric output,
// never a crash.
//
// Algorithm Outline (Area, shoelace):
//  1. Accumulate Σ(xᵢ·yᵢ₊₁ − xᵢ₊₁·yᵢ) over the closed vertex cycle in float64.
//  2. Return half the absolute value. The raw sign encodes winding order
//     and is discarded; use Winding to recover it.
//
// Algorithm Outline (Contains, ray casting):
//  1. Cast a ray from the query point to a far-right extreme at the same y
//     (x = the coordinate type's maximum representable value).
//  2. Count edge crossings via the segment-intersection predicate.
//  3. If the query point is collinear with an edge, answer immediately with
//     the on-segment containment test — the point lies exactly on that edge
//     or beside it, and parity would be meaningless.
//  4. Odd crossing count means inside, even means outside.
//
// Winding reports the traversal direction via the sign of the raw shoelace
// sum; IsConvex walks consecutive vertex triples through the orientation
// predicate and requires every non-collinear turn to agree.
//
// Complexity: all four operations are O(n) time, O(1) extra memory.
//
// Errors:
//   - ErrTooFewVertices — the polygon has fewer than three vertices, for
//     which area, containment, winding and convexity are meaningless. The
//     accompanying results are the defined degenerate values (0, false,
//     geom.Collinear), so relaxed callers may ignore the error.
package polygon
