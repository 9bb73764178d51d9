// Package examine turns drawn strokes into the sub-stroke features used for
// matching. The constants here are shared with the reference database: a
// database built with different values will not load.
package examine

import (
	"math"

	"github.com/submersibletoaster/hanzilookup/curve"
	"github.com/submersibletoaster/hanzilookup/glyph"
	"github.com/submersibletoaster/hanzilookup/stroke"
)

const (
	// SplitThreshold - a sub-stroke ends where the tangent turns further
	// than this (radians) away from the sub-stroke's mean direction
	SplitThreshold = math.Pi / 4
	// MinSegmentLength - sub-strokes shorter than this are never split
	MinSegmentLength = 6.0
)

// diagonal of the drawing surface, mapped to glyph.Scale
var diagonal = math.Sqrt2 * glyph.Scale

// Params - the constants features produced by this package depend on
func Params() glyph.Params {
	return glyph.Params{
		DirectionBuckets: glyph.DirectionBuckets,
		SplitThreshold:   SplitThreshold,
		MinSegment:       MinSegmentLength,
		SampleSpacing:    curve.SampleSpacing,
	}
}

// Character smooths and splits every stroke of c, in order, and concatenates
// the sub-strokes.
func Character(c stroke.Character) glyph.Features {
	var out glyph.Features
	for _, s := range c {
		out = append(out, Stroke(curve.Smooth(s))...)
	}
	return out
}

// segment - running state of the sub-stroke being walked
type segment struct {
	start  curve.Point
	sx, sy float64 // sum of unit tangents
	length float64
}

func (s *segment) mean() float64 {
	return math.Atan2(s.sy, s.sx)
}

// Stroke splits smoothed points into sub-strokes at direction changes. It
// always returns at least one sub-stroke; a stroke with no extent gives a
// single zero length one.
func Stroke(pts []curve.Point) glyph.Features {
	if len(pts) == 0 {
		return nil
	}

	var out glyph.Features
	seg := segment{start: pts[0]}
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1])
		step := math.Hypot(d.X, d.Y)
		if step == 0 {
			continue
		}
		ux, uy := d.X/step, d.Y/step

		if seg.length >= MinSegmentLength && turn(math.Atan2(uy, ux), seg.mean()) > SplitThreshold {
			out = append(out, closeSegment(seg, pts[i-1]))
			seg = segment{start: pts[i-1]}
		}
		seg.sx += ux
		seg.sy += uy
		seg.length += step
	}

	return append(out, closeSegment(seg, pts[len(pts)-1]))
}

func closeSegment(seg segment, end curve.Point) glyph.SubStroke {
	dir := 0.0
	if seg.sx != 0 || seg.sy != 0 {
		dir = seg.mean()
	}
	return glyph.SubStroke{
		Direction: Quantize(dir),
		Length:    toScale(seg.start.Dist(end) / diagonal * glyph.Scale),
		CenterX:   toScale((seg.start.X + end.X) / 2),
		CenterY:   toScale((seg.start.Y + end.Y) / 2),
	}
}

// Quantize maps an angle in radians onto glyph.DirectionBuckets steps of a
// full turn.
func Quantize(angle float64) uint8 {
	turns := angle / (2 * math.Pi)
	turns -= math.Floor(turns)
	b := int(math.Round(turns*glyph.DirectionBuckets)) % glyph.DirectionBuckets
	return uint8(b)
}

// turn - absolute angle between a and b, 0..π
func turn(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 2*math.Pi))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

func toScale(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= glyph.Scale {
		return glyph.Scale
	}
	return uint8(math.Round(v))
}
