package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/quadbit/exactgeo/dbg"
	"github.com/quadbit/exactgeo/geo"
)

// Demo of the segment predicates. Input on stdin should be newline separated
// segments in the form "x1 y1 x2 y2"; alternatively --svg reads the <line>
// elements of an SVG file. Every pair of segments is classified, and the
// exact intersection point is printed where one exists.

var (
	svgPath = kingpin.Flag("svg", "Read segments from the <line> elements of this SVG file instead of stdin.").String()
	draw    = kingpin.Flag("draw", "Render the segments and intersection points to the terminal (iTerm only).").Bool()
	scale   = kingpin.Flag("scale", "Pixels per coordinate unit when drawing.").Default("32").Float64()
)

func main() {
	kingpin.Parse()

	var segments []geo.Segment[int64]
	var err error
	if *svgPath != "" {
		segments, err = readSVGSegments(*svgPath)
	} else {
		segments, err = readSegments(os.Stdin)
	}
	if err != nil {
		kingpin.Fatalf("%v", err)
	}
	fmt.Printf("Read %d segments\n", len(segments))

	var marks []geo.Point[geo.Fraction[int64]]
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			seg1, seg2 := segments[i], segments[j]
			pair := fmt.Sprintf("%s %v x %s %v", dbg.Name(seg1), seg1, dbg.Name(seg2), seg2)

			if !geo.Intersects(seg1, seg2) {
				fmt.Printf("%s: %s\n", pair, aurora.Red("disjoint"))
				continue
			}
			if point, ok := geo.Intersection(seg1, seg2); ok {
				marks = append(marks, point)
				fmt.Printf("%s: %s at %v\n", pair, aurora.Green("intersect"), point)
			} else {
				fmt.Printf("%s: %s\n", pair, aurora.Yellow("collinear overlap"))
			}
		}
	}

	if *draw {
		if err := geo.DrawToTerminal(segments, marks, *scale); err != nil {
			kingpin.Fatalf("draw: %v", err)
		}
	}
}

func readSegments(in *os.File) ([]geo.Segment[int64], error) {
	segments := []geo.Segment[int64]{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		segment, err := parseSegment(line)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segment)
	}
	return segments, scanner.Err()
}

func parseSegment(line string) (geo.Segment[int64], error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return geo.Segment[int64]{}, fmt.Errorf("expected \"x1 y1 x2 y2\", got %q", line)
	}
	ords := make([]int64, 4)
	for i, part := range parts {
		ord, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return geo.Segment[int64]{}, fmt.Errorf("bad coordinate %q in %q", part, line)
		}
		ords[i] = ord
	}
	return geo.Segment[int64]{
		Start: geo.Point[int64]{X: ords[0], Y: ords[1]},
		End:   geo.Point[int64]{X: ords[2], Y: ords[3]},
	}, nil
}

func readSVGSegments(path string) ([]geo.Segment[int64], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		return nil, err
	}

	lines := rootEl.FindAll("line")
	if len(lines) == 0 {
		return nil, fmt.Errorf("no <line> elements in %s", path)
	}

	segments := make([]geo.Segment[int64], 0, len(lines))
	for _, lineEl := range lines {
		var ords [4]int64
		for i, attr := range []string{"x1", "y1", "x2", "y2"} {
			ord, err := strconv.ParseInt(lineEl.Attributes[attr], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad %s value %q in %s", attr, lineEl.Attributes[attr], path)
			}
			ords[i] = ord
		}
		segments = append(segments, geo.Segment[int64]{
			Start: geo.Point[int64]{X: ords[0], Y: ords[1]},
			End:   geo.Point[int64]{X: ords[2], Y: ords[3]},
		})
	}
	return segments, nil
}
