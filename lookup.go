// Package hanzilookup recognises hand-drawn Chinese characters. Strokes are
// smoothed and cut into sub-strokes, then scored against a fixed database of
// reference characters; the best scoring references are returned.
//
//	src := hanzilookup.FileSource("mmah.db")
//	rec, err := src.Recognizer(nil)
//	...
//	res, err := rec.Lookup(strokes, 8)
package hanzilookup

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/hanzilookup/examine"
	"github.com/submersibletoaster/hanzilookup/glyph"
	"github.com/submersibletoaster/hanzilookup/match"
	"github.com/submersibletoaster/hanzilookup/stroke"
)

var (
	// ErrMalformedInput - no strokes, or a stroke without points
	ErrMalformedInput = stroke.ErrMalformed
	// ErrUninitializedDatabase - the recognizer has no database to search
	ErrUninitializedDatabase = errors.New("hanzilookup: database not initialized")
	// ErrBadLimit - negative result limit
	ErrBadLimit = errors.New("hanzilookup: negative limit")
)

// Match - a candidate character and its similarity, 0..1
type Match = match.Match

// Results - matches, best first
type Results = match.Results

// Recognizer looks characters up in one database. The database is only read,
// so a Recognizer can serve any number of goroutines.
type Recognizer struct {
	db      *glyph.Database
	matcher *match.Matcher
}

// New binds a database. opts may be nil for match.DefaultOptions.
func New(db *glyph.Database, opts *match.Options) (*Recognizer, error) {
	if db == nil {
		return nil, ErrUninitializedDatabase
	}
	m, err := match.New(opts)
	if err != nil {
		return nil, err
	}
	return &Recognizer{db: db, matcher: m}, nil
}

// Database returns the database being searched.
func (r *Recognizer) Database() *glyph.Database {
	return r.db
}

// Lookup returns up to limit references most similar to c, best first. An
// empty result is not an error.
func (r *Recognizer) Lookup(c stroke.Character, limit int) (Results, error) {
	if r == nil || r.db == nil || r.matcher == nil {
		return nil, ErrUninitializedDatabase
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLimit, limit)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	query := examine.Character(c)
	collector := match.NewCollector(limit)
	scored := r.matcher.Run(query, len(c), r.db, collector)
	res := collector.Results()
	log.Debugf("lookup: %d strokes, %d points, %d scored, %d kept", len(c), c.Points(), scored, len(res))
	return res, nil
}

// LookupJSON decodes strokes in the browser form, [stroke][point][x,y] with
// float coordinates on the 0..255 canvas, and looks them up.
func (r *Recognizer) LookupJSON(data []byte, limit int) (Results, error) {
	c, err := stroke.ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return r.Lookup(c, limit)
}
