// Package planar is a self-contained, numerically consistent kernel of
// 2D computational-geometry primitives and algorithms over planar point
// sets and simple polygons.
//
// 🚀 What is planar?
//
//	A small, pure-Go library, generic over the coordinate numeric type
//	(signed integer or floating-point), that brings together:
//		• Core primitives: points, lexicographic ordering, squared/true distance
//		• Predicates: orientation (turn direction), point-on-segment,
//		  segment–segment intersection
//		• Convex hull: Andrew's monotone chain, O(n log n)
//		• Polygon queries: shoelace area, ray-cast containment, winding/convexity
//		• Closest pair: divide & conquer with strip merge, O(n log n)
//		• Diameter: convex hull + rotating calipers, O(n log n)
//
// ✨ Why choose planar?
//
//   - One orientation predicate – every hull, intersection and caliper sweep
//     routes through the same sign logic, so tie-breaking stays consistent
//     across the whole kernel
//   - Pure functions – inputs are never mutated; every call sorts on its own
//     private copy and terminates in bounded time
//   - Tunable precision – epsilon-tolerant comparison with a configurable
//     tolerance; distances and areas accumulate in float64 regardless of the
//     coordinate type
//   - Generic – one code path for int, int64, float32, float64 and their
//     derived types
//
// Everything is organized under five subpackages:
//
//	geom/    — Point[T], metric, orientation & segment predicates
//	hull/    — convex hull construction and rotating-calipers diameter
//	closest/ — divide-and-conquer closest pair
//	polygon/ — area, containment, winding & convexity analysis
//	viz/     — PNG scene rendering for debugging and demos
//
// Quick ASCII example:
//
//	    ·   ·
//	  ·   ┌───┐
//	      │ · │    the hull of a cloud is the tight convex fence
//	  ·   └───┘    around it; its diameter is the longest pin you
//	    ·          can push through two fence posts.
//
// Dive into the per-package docs for algorithm outlines, complexity notes,
// and sentinel-error contracts, or run the programs under examples/ for
// end-to-end scenarios.
//
//	go get github.com/katalvlaran/planar
package planar
