package glyph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/submersibletoaster/hanzilookup/glyph"
)

var params = glyph.Params{DirectionBuckets: 256, SplitThreshold: 0.78, MinSegment: 6, SampleSpacing: 4}

func refs() []glyph.Reference {
	return []glyph.Reference{
		{Char: '三', StrokeCount: 3, Features: glyph.Features{{0, 80, 128, 60}, {0, 60, 128, 128}, {0, 100, 128, 190}}},
		{Char: '一', StrokeCount: 1, Features: glyph.Features{{0, 120, 128, 128}}},
		{Char: '十', StrokeCount: 2, Features: glyph.Features{{0, 120, 128, 128}, {64, 120, 128, 128}}},
		{Char: '二', StrokeCount: 2, Features: glyph.Features{{0, 80, 128, 90}, {0, 100, 128, 170}}},
	}
}

func TestDatabase_OrderAndCandidates(t *testing.T) {
	db := glyph.NewDatabase(refs())
	require.Equal(t, 4, db.Len())

	var order []rune
	for i := 0; i < db.Len(); i++ {
		order = append(order, db.At(i).Char)
	}
	assert.Equal(t, []rune{'一', '十', '二', '三'}, order, "stroke count order, load order for ties")

	chars := func(rs []glyph.Reference) (out []rune) {
		for _, r := range rs {
			out = append(out, r.Char)
		}
		return
	}
	assert.Equal(t, []rune{'十', '二'}, chars(db.Candidates(2, 2)))
	assert.Equal(t, []rune{'一', '十', '二'}, chars(db.Candidates(-3, 2)))
	assert.Equal(t, []rune{'三'}, chars(db.Candidates(3, 40)))
	assert.Empty(t, db.Candidates(4, 9))
	assert.Empty(t, db.Candidates(3, 2))
}

func TestDatabase_Empty(t *testing.T) {
	db := glyph.NewDatabase(nil)
	assert.Equal(t, 0, db.Len())
	assert.Empty(t, db.Candidates(0, 100))
}

func TestDatabase_NegativeStrokeCounts(t *testing.T) {
	db := glyph.NewDatabase([]glyph.Reference{{Char: 'x', StrokeCount: -5}, {Char: 'y', StrokeCount: -3}})
	assert.Equal(t, 2, db.Len())
	assert.Empty(t, db.Candidates(0, 10))
	assert.Empty(t, db.Candidates(-10, -1))
}

func TestDatabase_CopiesInput(t *testing.T) {
	in := refs()
	db := glyph.NewDatabase(in)
	in[0].Char = 'x'
	for i := 0; i < db.Len(); i++ {
		assert.NotEqual(t, 'x', db.At(i).Char)
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, glyph.Write(&buf, params, refs()))

	db, err := glyph.Read(&buf, params)
	require.NoError(t, err)
	assert.Equal(t, glyph.NewDatabase(refs()), db)
}

func TestCodec_ParamsMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, glyph.Write(&buf, params, refs()))

	other := params
	other.SplitThreshold = 1
	_, err := glyph.Read(&buf, other)
	assert.ErrorIs(t, err, glyph.ErrParamsMismatch)
}

func TestCodec_Garbage(t *testing.T) {
	_, err := glyph.Read(bytes.NewBufferString("definitely not gob"), params)
	assert.ErrorIs(t, err, glyph.ErrBadFormat)
}

func TestCodec_TooManyStrokes(t *testing.T) {
	var buf bytes.Buffer
	err := glyph.Write(&buf, params, []glyph.Reference{{Char: 'x', StrokeCount: 300}})
	assert.Error(t, err)
}

func TestSignature(t *testing.T) {
	a := glyph.MakeSignature(refs()[0].Features)
	assert.Equal(t, a, glyph.MakeSignature(refs()[0].Features))

	n, norm := a.Distance(a)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0.0, norm)

	b := glyph.MakeSignature(glyph.Features{{128, 10, 10, 10}})
	n, norm = a.Distance(b)
	assert.Greater(t, n, 0)
	assert.InDelta(t, float64(n)/64, norm, 1e-12)
}
