// Package match scores a query's features against reference characters and
// keeps the best of them.
package match

import (
	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/hanzilookup/glyph"
)

// Matcher scores queries against a database. It holds no per-query state and
// may be shared between goroutines.
type Matcher struct {
	opts Options
}

// New returns a Matcher using opts, or DefaultOptions when opts is nil.
func New(opts *Options) (*Matcher, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{opts: o}, nil
}

// Options returns the matcher's tuning.
func (m *Matcher) Options() Options {
	return m.opts
}

// Run scores query, drawn with strokes strokes, against every reference in db
// within the stroke tolerance and offers those clearing MinScore to c.
// Returns the number of references scored.
func (m *Matcher) Run(query glyph.Features, strokes int, db *glyph.Database, c *Collector) int {
	cands := db.Candidates(strokes-m.opts.StrokeTolerance, strokes+m.opts.StrokeTolerance)
	log.Debugf("match: %d sub-strokes, %d strokes, %d of %d candidates", len(query), strokes, len(cands), db.Len())

	for _, ref := range cands {
		score := m.opts.Score(query, ref.Features)
		if score <= m.opts.MinScore {
			continue
		}
		c.Offer(Match{Char: ref.Char, Score: score})
	}
	return len(cands)
}
