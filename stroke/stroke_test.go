package stroke_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/submersibletoaster/hanzilookup/stroke"
)

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, stroke.Character{}.Validate(), stroke.ErrMalformed, "no strokes")
	assert.ErrorIs(t, stroke.Character{{Points: []stroke.Point{{1, 1}}}, {}}.Validate(), stroke.ErrMalformed, "empty stroke")

	tap := stroke.Character{{Points: []stroke.Point{{10, 10}}}}
	assert.NoError(t, tap.Validate(), "single point stroke is allowed")
}

func TestParseJSON(t *testing.T) {
	c, err := stroke.ParseJSON([]byte(`[[[10.4,20.6],[300,-5]],[[1,2,0.5]]]`))
	require.NoError(t, err)
	require.Len(t, c, 2)
	assert.Equal(t, []stroke.Point{{10, 21}, {255, 0}}, c[0].Points)
	assert.Equal(t, []stroke.Point{{1, 2}}, c[1].Points)
	assert.Equal(t, 3, c.Points())
}

func TestParseJSON_Bad(t *testing.T) {
	_, err := stroke.ParseJSON([]byte(`{"not":"strokes"}`))
	assert.ErrorIs(t, err, stroke.ErrMalformed)

	_, err = stroke.ParseJSON([]byte(`[[[1]]]`))
	assert.ErrorIs(t, err, stroke.ErrMalformed, "point needs two coordinates")
}

func TestPrefix(t *testing.T) {
	c := stroke.Character{
		{Points: []stroke.Point{{1, 1}}},
		{Points: []stroke.Point{{2, 2}}},
		{Points: []stroke.Point{{3, 3}}},
	}
	assert.Len(t, c.Prefix(2), 2)
	assert.Len(t, c.Prefix(9), 3)
	assert.Len(t, c.Prefix(-1), 0)

	p := c.Prefix(1)
	p = append(p, stroke.Stroke{})
	assert.Equal(t, stroke.Point{2, 2}, c[1].Points[0], "appending to a prefix must not clobber the source")
}
