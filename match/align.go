package match

import (
	"math"

	"github.com/submersibletoaster/hanzilookup/glyph"
)

var maxCenterDist = math.Sqrt2 * glyph.Scale

// PairCost - cost of matching two sub-strokes, 0 (identical) to 1.
func (o Options) PairCost(a, b glyph.SubStroke) float64 {
	dir := int(a.Direction) - int(b.Direction)
	if dir < 0 {
		dir = -dir
	}
	if dir > glyph.DirectionBuckets/2 {
		dir = glyph.DirectionBuckets - dir
	}
	length := math.Abs(float64(a.Length) - float64(b.Length))
	center := math.Hypot(float64(a.CenterX)-float64(b.CenterX), float64(a.CenterY)-float64(b.CenterY))

	return o.DirectionWeight*float64(dir)/(glyph.DirectionBuckets/2) +
		o.LengthWeight*length/glyph.Scale +
		o.CenterWeight*center/maxCenterDist
}

// Cost - minimal total cost of an order preserving alignment of a and b,
// where every sub-stroke is either paired with one on the other side or
// skipped at SkipPenalty.
//
// Algorithm (two rolling rows of the (n+1)x(m+1) table):
//
//	D[0][j] = j·skip, D[i][0] = i·skip
//	D[i][j] = min(D[i-1][j-1] + pair(a[i-1], b[j-1]),
//	              D[i-1][j] + skip,
//	              D[i][j-1] + skip)
func (o Options) Cost(a, b glyph.Features) float64 {
	n, m := len(a), len(b)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := range prev {
		prev[j] = float64(j) * o.SkipPenalty
	}
	for i := 1; i <= n; i++ {
		curr[0] = float64(i) * o.SkipPenalty
		for j := 1; j <= m; j++ {
			best := prev[j-1] + o.PairCost(a[i-1], b[j-1])
			if c := prev[j] + o.SkipPenalty; c < best {
				best = c
			}
			if c := curr[j-1] + o.SkipPenalty; c < best {
				best = c
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// Score - similarity of a and b in [0,1]: the alignment cost relative to
// skipping everything, inverted. Identical sequences score exactly 1.
func (o Options) Score(a, b glyph.Features) float64 {
	worst := o.SkipPenalty * float64(len(a)+len(b))
	if worst == 0 {
		return 0
	}
	s := 1 - o.Cost(a, b)/worst
	if s < 0 {
		return 0
	}
	return s
}
