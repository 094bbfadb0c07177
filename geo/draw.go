package geo

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/quadbit/exactgeo/dbg"
)

// This is for debugging purposes only. Coordinates are converted to floats
// for rendering; nothing here feeds back into a predicate.

// Padding around the drawing so marks near the bounds stay visible
const dbgDrawPadding = 20

// Draw renders the segments to a PNG at path, labeling any marked points
// (typically intersection points) with readable names.
func Draw[T Scalar](segments []Segment[T], marks []Point[Fraction[T]], scale float64, path string) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, seg := range segments {
		for _, p := range []Point[T]{seg.Start, seg.End} {
			minX = math.Min(minX, float64(p.X))
			minY = math.Min(minY, float64(p.Y))
			maxX = math.Max(maxX, float64(p.X))
			maxY = math.Max(maxY, float64(p.Y))
		}
	}
	for _, mark := range marks {
		minX = math.Min(minX, mark.X.Float64())
		minY = math.Min(minY, mark.Y.Float64())
		maxX = math.Max(maxX, mark.X.Float64())
		maxY = math.Max(maxY, mark.Y.Float64())
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, seg := range segments {
		c.MoveTo(float64(seg.Start.X), float64(seg.Start.Y))
		c.LineTo(float64(seg.End.X), float64(seg.End.Y))
		c.Stroke()
	}

	for _, mark := range marks {
		x := mark.X.Float64()
		y := mark.Y.Float64()
		c.SetRGB(1, 0.5, 0)
		c.DrawCircle(x, y, 4/scale)
		c.Fill()
		// Text would come out mirrored in the flipped context, so place it in
		// screen space instead.
		tx, ty := c.TransformPoint(x, y)
		c.Push()
		c.Identity()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(dbg.Name(mark), tx, ty-8, 0.5, 0.5)
		c.Pop()
	}

	return c.SavePNG(path)
}

// DrawToTerminal renders to a temp file and prints it inline (iTerm only).
func DrawToTerminal[T Scalar](segments []Segment[T], marks []Point[Fraction[T]], scale float64) error {
	const path = "/tmp/exactgeo_segments.png"
	if err := Draw(segments, marks, scale, path); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
