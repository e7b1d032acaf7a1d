// Command planar runs the kernel's operations over a point stream.
//
// Input is newline-separated points in the form "x y"; a blank line starts
// a new group. The first group is the working point set (or polygon); for
// the "inside" command the probe point is given by flags. Coordinates are
// read as float64.
//
// Example:
//
//	planar hull --png hull.png --preview < cloud.txt
//	planar inside --x 5 --y 5 < square.txt
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/planar/closest"
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/hull"
	"github.com/katalvlaran/planar/polygon"
	"github.com/katalvlaran/planar/viz"
)

var (
	app     = kingpin.New("planar", "2D computational-geometry kernel demo.")
	inFile  = app.Flag("in", "Read points from a file instead of stdin.").Short('f').String()
	pngOut  = app.Flag("png", "Render the result to a PNG file.").String()
	preview = app.Flag("preview", "Write the rendered PNG to the terminal.").Bool()

	hullCmd     = app.Command("hull", "Convex hull of the point set.")
	areaCmd     = app.Command("area", "Shoelace area of the polygon.")
	closestCmd  = app.Command("closest", "Distance of the closest pair.")
	diameterCmd = app.Command("diameter", "Diameter of the point set.")

	insideCmd = app.Command("inside", "Test a point against the polygon.")
	insideX   = insideCmd.Flag("x", "Probe x coordinate.").Required().Float64()
	insideY   = insideCmd.Flag("y", "Probe y coordinate.").Required().Float64()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	pts, err := readPoints()
	if err != nil {
		app.Fatalf("reading points: %v", err)
	}

	switch cmd {
	case hullCmd.FullCommand():
		runHull(pts)
	case areaCmd.FullCommand():
		runArea(pts)
	case closestCmd.FullCommand():
		runClosest(pts)
	case diameterCmd.FullCommand():
		runDiameter(pts)
	case insideCmd.FullCommand():
		runInside(pts, geom.Pt(*insideX, *insideY))
	}
}

func runHull(pts []geom.Point[float64]) {
	h := hull.ConvexHull(pts)
	fmt.Printf("%s %d of %d points:\n", aurora.Cyan("hull"), len(h), len(pts))
	for _, v := range h {
		fmt.Println(v)
	}
	renderScene(pts, h, nil)
}

func runArea(pts []geom.Point[float64]) {
	a, err := polygon.Area(pts)
	if err != nil {
		app.Fatalf("%v", err)
	}
	fmt.Printf("%s %.6f\n", aurora.Cyan("area"), a)
	renderScene(nil, pts, nil)
}

func runClosest(pts []geom.Point[float64]) {
	d, err := closest.Pair(pts)
	if err != nil {
		app.Fatalf("%v", err)
	}
	fmt.Printf("%s %.6f\n", aurora.Cyan("closest"), d)
	renderScene(pts, nil, nil)
}

func runDiameter(pts []geom.Point[float64]) {
	d, err := hull.Diameter(pts)
	if err != nil {
		app.Fatalf("%v", err)
	}
	fmt.Printf("%s %.6f\n", aurora.Cyan("diameter"), d)
	renderScene(pts, hull.ConvexHull(pts), nil)
}

func runInside(poly []geom.Point[float64], p geom.Point[float64]) {
	inside, err := polygon.Contains(poly, p)
	if err != nil {
		app.Fatalf("%v", err)
	}
	verdict := aurora.Red("outside")
	if inside {
		verdict = aurora.Green("inside")
	}
	fmt.Printf("%v is %s\n", p, verdict)
	renderScene([]geom.Point[float64]{p}, poly, nil)
}

// renderScene writes the optional PNG when --png is set, previewing it
// when --preview is also set.
func renderScene(points, poly []geom.Point[float64], segments [][2]geom.Point[float64]) {
	if *pngOut == "" {
		return
	}

	var s viz.Scene[float64]
	if len(poly) > 0 {
		s.AddPolygon(poly)
	}
	s.AddPoints(points...)
	for _, seg := range segments {
		s.AddSegment(seg[0], seg[1])
	}

	if err := s.Render(*pngOut); err != nil {
		app.Fatalf("rendering %s: %v", *pngOut, err)
	}
	if *preview {
		viz.Preview(*pngOut)
	}
}

// readPoints parses the first blank-line-delimited group of "x y" lines.
func readPoints() ([]geom.Point[float64], error) {
	var in io.Reader = os.Stdin
	if *inFile != "" {
		f, err := os.Open(*inFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var pts []geom.Point[float64]
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(pts) > 0 {
				break
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad point line %q", line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad x in %q: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad y in %q: %w", line, err)
		}
		pts = append(pts, geom.Pt(x, y))
	}

	return pts, scanner.Err()
}
