// Package curve smooths the raw points of a stroke by fitting a piecewise
// cubic (uniform Catmull-Rom, held as Bézier spans) through them and
// resampling it at an even spacing, so that tangent directions can be read
// off reliably.
package curve

import (
	"math"

	bez "honnef.co/go/curve"

	"github.com/submersibletoaster/hanzilookup/stroke"
)

const (
	// MinSpacing - control points closer than this to the previous kept
	// point are dropped before fitting
	MinSpacing = 3.0
	// SampleSpacing - approximate distance between samples on the curve
	SampleSpacing = 4.0
)

// Point - position on the drawing surface with sub-unit precision
type Point struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dist - euclidean distance between p and q
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// FromStroke converts stroke points without smoothing.
func FromStroke(s stroke.Stroke) []Point {
	out := make([]Point, len(s.Points))
	for i, p := range s.Points {
		out[i] = Point{float64(p.X), float64(p.Y)}
	}
	return out
}

// Smooth fits a Catmull-Rom spline through the stroke and returns evenly
// spaced samples along it, including both end points. Strokes with fewer than
// two distinct control points come back unchanged.
func Smooth(s stroke.Stroke) []Point {
	ctrl := thin(FromStroke(s))
	if len(ctrl) < 2 {
		return FromStroke(s)
	}

	out := make([]Point, 0, len(ctrl)*2)
	last := len(ctrl) - 1
	for i := 0; i < last; i++ {
		p0 := ctrl[max(i-1, 0)]
		p1 := ctrl[i]
		p2 := ctrl[i+1]
		p3 := ctrl[min(i+2, last)]

		span := Span(p0, p1, p2, p3)
		steps := int(math.Ceil(p1.Dist(p2) / SampleSpacing))
		if steps < 1 {
			steps = 1
		}
		for k := 0; k < steps; k++ {
			q := span.Eval(float64(k) / float64(steps))
			out = append(out, Point{q.X, q.Y})
		}
	}
	return append(out, ctrl[last])
}

// Span returns the Catmull-Rom segment between p1 and p2 as a cubic Bézier.
func Span(p0, p1, p2, p3 Point) bez.CubicBez {
	return bez.CubicBez{
		P0: bez.Pt(p1.X, p1.Y),
		P1: bez.Pt(p1.X+(p2.X-p0.X)/6, p1.Y+(p2.Y-p0.Y)/6),
		P2: bez.Pt(p2.X-(p3.X-p1.X)/6, p2.Y-(p3.Y-p1.Y)/6),
		P3: bez.Pt(p2.X, p2.Y),
	}
}

// thin drops points that sit within MinSpacing of the previously kept point.
// The final point always survives, replacing the last kept point if the two
// are too close.
func thin(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := []Point{pts[0]}
	for _, p := range pts[1:] {
		if p.Dist(out[len(out)-1]) >= MinSpacing {
			out = append(out, p)
		}
	}
	end := pts[len(pts)-1]
	if tail := out[len(out)-1]; tail != end {
		if len(out) > 1 {
			out[len(out)-1] = end
		} else if tail.Dist(end) > 0 {
			out = append(out, end)
		}
	}
	return out
}
