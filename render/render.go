// Package render draws what the recogniser saw, for debugging: the raw
// points, the smoothed curve and the sub-strokes it was cut into, with the
// best matches written underneath.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/submersibletoaster/pixfont"
	"golang.org/x/image/vector"

	"github.com/submersibletoaster/hanzilookup/curve"
	"github.com/submersibletoaster/hanzilookup/examine"
	"github.com/submersibletoaster/hanzilookup/glyph"
	"github.com/submersibletoaster/hanzilookup/match"
	"github.com/submersibletoaster/hanzilookup/stroke"
)

const (
	canvas = 256
	// lineHeight - vertical space for one label line, before scaling
	lineHeight = 10
)

var (
	background = color.RGBA{0x10, 0x10, 0x18, 0xff}
	rawPoint   = color.RGBA{0x60, 0x60, 0x60, 0xff}
	smoothed   = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
)

// ScoreColor - red for 0 through yellow to green for 1
func ScoreColor(score float64) colorful.Color {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return colorful.Hsv(120*score, 0.75, 0.95)
}

// SubStrokeColor - distinct hue for the i'th sub-stroke
func SubStrokeColor(i int) colorful.Color {
	return colorful.Hsv(math.Mod(float64(i)*137.508, 360), 0.8, 1)
}

// Character draws c at scale times the canvas size, followed by one label
// line per result.
func Character(c stroke.Character, res match.Results, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, canvas, canvas))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	var features glyph.Features
	for _, s := range c {
		for _, p := range s.Points {
			img.Set(int(p.X), int(p.Y), rawPoint)
		}
		pts := curve.Smooth(s)
		for i := 1; i < len(pts); i++ {
			line(img, pts[i-1], pts[i], smoothed)
		}
		features = append(features, examine.Stroke(pts)...)
	}
	for i, f := range features {
		a, b := Ends(f)
		line(img, a, b, SubStrokeColor(i))
	}

	out := transform.Resize(img, canvas*scale, canvas*scale, transform.NearestNeighbor)
	if len(res) == 0 {
		return out
	}

	labelled := image.NewRGBA(image.Rect(0, 0, canvas*scale, canvas*scale+len(res)*lineHeight+2))
	draw.Draw(labelled, labelled.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(labelled, out.Bounds(), out, image.Point{}, draw.Src)
	for i, m := range res {
		label := fmt.Sprintf("%d %U %.3f", i+1, m.Char, m.Score)
		pixfont.DrawString(labelled, 2, canvas*scale+2+i*lineHeight, label, ScoreColor(m.Score))
	}
	return labelled
}

// Ends reconstructs the end points of a sub-stroke from its direction, length
// and centre.
func Ends(f glyph.SubStroke) (curve.Point, curve.Point) {
	half := float64(f.Length) * math.Sqrt2 / 2
	a := glyph.Angle(f.Direction)
	dx, dy := math.Cos(a)*half, math.Sin(a)*half
	cx, cy := float64(f.CenterX), float64(f.CenterY)
	return curve.Point{X: cx - dx, Y: cy - dy}, curve.Point{X: cx + dx, Y: cy + dy}
}

// Save writes img as a PNG.
func Save(path string, img image.Image) error {
	return imgio.Save(path, img, imgio.PNGEncoder())
}

// lineWidth - pen width for curves and sub-strokes, before scaling
const lineWidth = 1.5

// line fills the thin quad around a-b. Zero length lines come out as a dot.
func line(img *image.RGBA, a, b curve.Point, c color.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		dx, dy, d = 1, 0, 1
		a.X -= lineWidth / 2
		b.X += lineWidth / 2
	}
	nx, ny := -dy/d*lineWidth/2, dx/d*lineWidth/2

	bounds := img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	z.ClosePath()
	z.Draw(img, bounds, image.NewUniform(c), image.Point{})
}
