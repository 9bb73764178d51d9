package hanzilookup

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/hanzilookup/examine"
	"github.com/submersibletoaster/hanzilookup/glyph"
	"github.com/submersibletoaster/hanzilookup/match"
)

// Source builds a database at most once. Every caller of Database blocks
// until the single load has finished and then sees its outcome; nobody
// observes a partly built database.
type Source struct {
	once sync.Once
	load func() (*glyph.Database, error)
	db   *glyph.Database
	err  error
}

// NewSource wraps load, which will be called at most once.
func NewSource(load func() (*glyph.Database, error)) *Source {
	return &Source{load: load}
}

// FileSource loads the database file at path, checked against the constants
// of the examine package.
func FileSource(path string) *Source {
	return NewSource(func() (*glyph.Database, error) {
		log.Debugf("loading reference database %s", path)
		return glyph.Load(path, examine.Params())
	})
}

// Database returns the loaded database, loading it on first use. A failed
// load is not retried.
func (s *Source) Database() (*glyph.Database, error) {
	s.once.Do(func() {
		s.db, s.err = s.load()
		if s.err == nil && s.db == nil {
			s.err = ErrUninitializedDatabase
		}
		if s.err != nil {
			log.Warnf("reference database: %v", s.err)
			return
		}
		log.Debugf("reference database ready, %d characters", s.db.Len())
	})
	return s.db, s.err
}

// Recognizer loads the database if needed and binds it.
func (s *Source) Recognizer(opts *match.Options) (*Recognizer, error) {
	db, err := s.Database()
	if err != nil {
		return nil, err
	}
	return New(db, opts)
}
