// Package closest finds the closest pair of points in a planar set with
// the classic divide-and-conquer algorithm.
//
// Algorithm Outline:
//  1. Copy the input twice; sort one copy lexicographically by x (then y)
//     and the other by y.
//  2. Recurse on a contiguous x-sorted range with its matching y-sorted
//     subset. Ranges of at most Cutoff points (default 3) resolve by
//     brute-force pairwise comparison.
//  3. Otherwise split at the median x index, partition the y-sorted subset
//     into the two halves (preserving y order, keyed on the median's
//     (x, y) so ties land deterministically), recurse for dL and dR, and
//     let d = min(dL, dR).
//  4. Strip merge: collect, in y order, every point whose squared
//     x-distance to the dividing line is below d; compare each strip point
//     only against subsequent points whose squared y-distance is below the
//     running minimum. The packing bound keeps that window a small
//     constant, so the merge is linear.
//  5. The recursion carries squared distances throughout; the final result
//     is the square root of the overall minimum.
//
// Any pair closer than d must have both points within √d of the dividing
// line, so the strip merge cannot miss a cross-half pair.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n) for the two sorted copies and the per-level strips;
//	         recursion depth is O(log n).
//
// Errors:
//   - ErrTooFewPoints — fewer than two input points; the returned distance
//     is still the defined degenerate value 0.
//   - ErrBadCutoff   — WithCutoff below 2 (panic at option construction).
//
// Purity:
//
//	The input slice is never mutated; both sorts run on private copies.
package closest
