package glyph

import (
	"math"
	"sort"

	"github.com/steakknife/hamming"
)

const (
	// DirectionBuckets - number of direction steps in a full rotation
	DirectionBuckets = 256
	// Scale - upper bound of lengths and positions on the drawing surface
	Scale = 255
)

// SubStroke - one straight-ish piece of a stroke, the unit of comparison
type SubStroke struct {
	Direction uint8 // Direction - angle in 1/256ths of a full turn
	Length    uint8 // Length - end to end distance, canvas diagonal is 255
	CenterX   uint8 // CenterX - midpoint of the end points
	CenterY   uint8 // CenterY - midpoint of the end points
}

// Features - sub-strokes of a character in drawing order
type Features []SubStroke

// Reference - a known character and how it is drawn
type Reference struct {
	Char        rune
	StrokeCount int
	Features    Features
}

// Params - analysis constants a feature sequence was produced with. Query
// and reference features are only comparable when these agree.
type Params struct {
	DirectionBuckets int
	SplitThreshold   float64
	MinSegment       float64
	SampleSpacing    float64
}

// Database - immutable collection of references, ordered by stroke count
// (ties keep their load order). Safe for concurrent use.
type Database struct {
	refs []Reference
	// first[n] is the index of the first reference with at least n strokes
	first []int
}

// NewDatabase copies refs into a new Database.
func NewDatabase(refs []Reference) *Database {
	db := &Database{refs: make([]Reference, len(refs))}
	copy(db.refs, refs)
	sort.SliceStable(db.refs, func(i, j int) bool {
		return db.refs[i].StrokeCount < db.refs[j].StrokeCount
	})

	maxStrokes := 0
	if n := len(db.refs); n > 0 && db.refs[n-1].StrokeCount > 0 {
		maxStrokes = db.refs[n-1].StrokeCount
	}
	db.first = make([]int, maxStrokes+2)
	for n := range db.first {
		db.first[n] = sort.Search(len(db.refs), func(i int) bool {
			return db.refs[i].StrokeCount >= n
		})
	}
	return db
}

// Len - number of references
func (db *Database) Len() int {
	return len(db.refs)
}

// At returns the i'th reference in database order.
func (db *Database) At(i int) Reference {
	return db.refs[i]
}

// Candidates returns the references whose stroke count lies in [lo, hi].
// The slice is shared and must not be modified.
func (db *Database) Candidates(lo, hi int) []Reference {
	if lo < 0 {
		lo = 0
	}
	if hi < lo || len(db.refs) == 0 {
		return nil
	}
	return db.refs[db.index(lo):db.index(hi+1)]
}

func (db *Database) index(n int) int {
	if n >= len(db.first) {
		return len(db.refs)
	}
	return db.first[n]
}

// Signature - coarse 64 bit summary of a feature sequence: one bit per
// (direction octant, canvas quadrant, long/short) combination present.
// Similar drawings have a small Hamming distance.
type Signature uint64

// MakeSignature summarises f.
func MakeSignature(f Features) (s Signature) {
	for _, sub := range f {
		octant := uint(sub.Direction) >> 5
		quadrant := uint(sub.CenterX>>7) | uint(sub.CenterY>>7)<<1
		long := uint(0)
		if sub.Length >= Scale/4 {
			long = 1
		}
		s |= 1 << (octant<<3 | quadrant<<1 | long)
	}
	return
}

// Distance - Hamming distance of two signatures and the same normalized to 0..1
func (s Signature) Distance(in Signature) (int, float64) {
	v := hamming.Uint64(uint64(s), uint64(in))
	return v, float64(v) / 64
}

// Angle converts a direction bucket back to radians in [0, 2π).
func Angle(direction uint8) float64 {
	return float64(direction) * 2 * math.Pi / DirectionBuckets
}
