// Package stroke holds the raw input of a lookup: points on the normalised
// 256x256 drawing surface, grouped into strokes and characters.
package stroke

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrMalformed - the character can not be analysed (no strokes, or a stroke
// without points)
var ErrMalformed = errors.New("stroke: malformed input")

// Point - position on the drawing surface, 0..255 on both axes
type Point struct {
	X, Y uint8
}

// Stroke - points of one pen-down to pen-up gesture
type Stroke struct {
	Points []Point
}

// Character - strokes in the order they were drawn
type Character []Stroke

// Validate rejects characters that have no strokes or contain an empty stroke.
// Single point strokes are fine.
func (c Character) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: character has no strokes", ErrMalformed)
	}
	for i, s := range c {
		if len(s.Points) == 0 {
			return fmt.Errorf("%w: stroke %d has no points", ErrMalformed, i)
		}
	}
	return nil
}

// Points - total number of points over all strokes
func (c Character) Points() (n int) {
	for _, s := range c {
		n += len(s.Points)
	}
	return
}

// Prefix returns the first n strokes, as seen while the character is still
// being drawn.
func (c Character) Prefix(n int) Character {
	if n > len(c) {
		n = len(c)
	}
	if n < 0 {
		n = 0
	}
	return c[:n:n]
}

// FromFloats converts the [stroke][point][x,y] form produced by browser
// canvases. Coordinates are rounded and clamped to the 0..255 surface; extra
// values per point (pressure, time) are ignored.
func FromFloats(in [][][]float64) (Character, error) {
	c := make(Character, 0, len(in))
	for i, raw := range in {
		s := Stroke{Points: make([]Point, 0, len(raw))}
		for j, p := range raw {
			if len(p) < 2 {
				return nil, fmt.Errorf("%w: stroke %d point %d has %d coordinates", ErrMalformed, i, j, len(p))
			}
			s.Points = append(s.Points, Point{X: clamp(p[0]), Y: clamp(p[1])})
		}
		c = append(c, s)
	}
	return c, nil
}

// ParseJSON decodes a character from JSON in the FromFloats layout.
func ParseJSON(data []byte) (Character, error) {
	var raw [][][]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return FromFloats(raw)
}

func clamp(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
