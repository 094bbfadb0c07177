package geo

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs segments. This is not a full
// (or even correct) svg parser. It parses the SVG and takes every <line>
// element as one segment, in document order. If anything goes wrong, it
// panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Segment[int64] {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	lines := rootEl.FindAll("line")
	if len(lines) == 0 {
		log.Fatalf("No lines found in fixture %q", name)
	}

	segments := make([]Segment[int64], 0, len(lines))
	for _, lineEl := range lines {
		segments = append(segments, Segment[int64]{
			Start: Point[int64]{
				X: fixtureOrd(name, lineEl, "x1"),
				Y: fixtureOrd(name, lineEl, "y1"),
			},
			End: Point[int64]{
				X: fixtureOrd(name, lineEl, "x2"),
				Y: fixtureOrd(name, lineEl, "y2"),
			},
		})
	}
	return segments
}

func fixtureOrd(name string, el *svgparser.Element, attr string) int64 {
	value, err := strconv.ParseInt(el.Attributes[attr], 10, 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q in fixture %q: %v", attr, el.Attributes[attr], name, err)
	}
	return value
}
