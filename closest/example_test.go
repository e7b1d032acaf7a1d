package closest_test

import (
	"fmt"

	"github.com/katalvlaran/planar/closest"
	"github.com/katalvlaran/planar/geom"
)

// ExamplePair finds the closest pair of a small sensor layout: the two
// readings at (2,3) and (3,4), √2 apart.
func ExamplePair() {
	pts := []geom.Point[float64]{
		geom.Pt(2.0, 3.0), geom.Pt(12.0, 30.0), geom.Pt(40.0, 50.0),
		geom.Pt(5.0, 1.0), geom.Pt(12.0, 10.0), geom.Pt(3.0, 4.0),
	}

	d, err := closest.Pair(pts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("closest=%.5f\n", d)
	// Output:
	// closest=1.41421
}
