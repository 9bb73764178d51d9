package main

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/submersibletoaster/hanzilookup"
	"github.com/submersibletoaster/hanzilookup/examine"
	"github.com/submersibletoaster/hanzilookup/glyph"
	"github.com/submersibletoaster/hanzilookup/stroke"
)

const input = `[[[30,120],[220,120]],[[125,20],[125,230]]]

[[[30,128],[220,128]]]
`

func TestReadSamples(t *testing.T) {
	s, err := readSamples(strings.NewReader(input), false)
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, 1, s[0].Line)
	assert.Equal(t, 3, s[1].Line)
	assert.Len(t, s[0].Char, 2)

	s, err = readSamples(strings.NewReader(input), true)
	require.NoError(t, err)
	require.Len(t, s, 3)
	for i, sample := range s {
		assert.Equal(t, uint(i), sample.Nth)
	}
	assert.Len(t, s[0].Char, 1)
	assert.Len(t, s[1].Char, 2)

	_, err = readSamples(strings.NewReader("[[[1,2]]]\nnope\n"), false)
	assert.ErrorIs(t, err, stroke.ErrMalformed)
}

func TestWorkers_KeepOrder(t *testing.T) {
	s, err := readSamples(strings.NewReader(strings.Repeat(input, 20)), true)
	require.NoError(t, err)

	var refs []glyph.Reference
	for i, c := range s[:3] {
		refs = append(refs, glyph.Reference{Char: rune('a' + i), StrokeCount: len(c.Char), Features: examine.Character(c.Char)})
	}
	rec, err := hanzilookup.New(glyph.NewDatabase(refs), nil)
	require.NoError(t, err)

	in := make(chan Sample)
	go func() {
		for _, x := range s {
			in <- x
		}
		close(in)
	}()

	var mu sync.Mutex
	var got []uint
	Workers(4, rec, in, func(o Outcome) {
		mu.Lock()
		defer mu.Unlock()
		assert.NoError(t, o.Err)
		got = append(got, o.Nth)
	})

	require.Len(t, got, len(s))
	for i, n := range got {
		assert.Equal(t, uint(i), n)
	}
}
