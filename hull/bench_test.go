package hull_test

import (
	"testing"

	"github.com/katalvlaran/planar/hull"
)

// benchmarkConvexHull runs ConvexHull on a fixed random cloud of n points.
func benchmarkConvexHull(b *testing.B, n int) {
	pts := randomCloud(n, 1000, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hull.ConvexHull(pts)
	}
}

// benchmarkDiameter runs Diameter on a fixed random cloud of n points.
func benchmarkDiameter(b *testing.B, n int) {
	pts := randomCloud(n, 1000, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hull.Diameter(pts); err != nil {
			b.Fatalf("Diameter failed: %v", err)
		}
	}
}

// BenchmarkConvexHull_Small benchmarks hull construction on 100 points.
func BenchmarkConvexHull_Small(b *testing.B) { benchmarkConvexHull(b, 100) }

// BenchmarkConvexHull_Medium benchmarks hull construction on 10_000 points.
func BenchmarkConvexHull_Medium(b *testing.B) { benchmarkConvexHull(b, 10_000) }

// BenchmarkDiameter_Small benchmarks the caliper sweep on 100 points.
func BenchmarkDiameter_Small(b *testing.B) { benchmarkDiameter(b, 100) }

// BenchmarkDiameter_Medium benchmarks the caliper sweep on 10_000 points.
func BenchmarkDiameter_Medium(b *testing.B) { benchmarkDiameter(b, 10_000) }
