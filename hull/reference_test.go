package hull_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/planar/geom"
	"github.com/pmezard/go-difflib/difflib"
)

// assertMatchesReference formats one vertex per line and, on mismatch,
// fails with a unified diff against the expected reference dump.
func assertMatchesReference[T geom.Coord](t *testing.T, expected string, h []geom.Point[T]) {
	t.Helper()

	var b strings.Builder
	for _, v := range h {
		fmt.Fprintln(&b, v)
	}
	got := b.String()
	if got == expected {
		return
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(got),
		FromFile: "Expected",
		ToFile:   "Current",
		Context:  0,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	t.Fatalf("hull does not match reference. Failure: \n%s", text)
}
