package glyph

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

const (
	magic   = "hanzilookup"
	version = 1
)

var (
	// ErrBadFormat - the stream is not a reference database
	ErrBadFormat = errors.New("glyph: not a reference database")
	// ErrParamsMismatch - the database was analysed with other constants
	ErrParamsMismatch = errors.New("glyph: database analysis parameters differ")
)

type header struct {
	Magic   string
	Version int
	Params  Params
	Count   int
}

type record struct {
	Char        rune
	StrokeCount uint8
	Features    []byte
}

// Write encodes references, and the params their features were built with.
func Write(w io.Writer, p Params, refs []Reference) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(header{magic, version, p, len(refs)}); err != nil {
		return err
	}
	for _, r := range refs {
		if r.StrokeCount < 0 || r.StrokeCount > 255 {
			return fmt.Errorf("glyph: %q has %d strokes", r.Char, r.StrokeCount)
		}
		if err := enc.Encode(record{r.Char, uint8(r.StrokeCount), packFeatures(r.Features)}); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes a database written by Write. The stored params must equal want.
func Read(r io.Reader, want Params) (*Database, error) {
	dec := gob.NewDecoder(r)
	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if h.Magic != magic || h.Version != version {
		return nil, fmt.Errorf("%w: magic %q version %d", ErrBadFormat, h.Magic, h.Version)
	}
	if h.Params != want {
		return nil, fmt.Errorf("%w: have %+v, want %+v", ErrParamsMismatch, h.Params, want)
	}

	if h.Count < 0 {
		return nil, fmt.Errorf("%w: %d records", ErrBadFormat, h.Count)
	}
	capacity := h.Count
	if capacity > 1<<16 {
		capacity = 1 << 16
	}
	refs := make([]Reference, 0, capacity)
	for i := 0; i < h.Count; i++ {
		var rec record
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrBadFormat, i, err)
		}
		f, err := unpackFeatures(rec.Features)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%q): %v", ErrBadFormat, i, rec.Char, err)
		}
		refs = append(refs, Reference{Char: rec.Char, StrokeCount: int(rec.StrokeCount), Features: f})
	}
	log.Debugf("glyph: read %d references", len(refs))
	return NewDatabase(refs), nil
}

// Load reads a database file.
func Load(path string, want Params) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, want)
}

// packFeatures lays sub-strokes out as 4 bytes each: direction, length, x, y.
func packFeatures(f Features) []byte {
	out := make([]byte, 0, len(f)*4)
	for _, s := range f {
		out = append(out, s.Direction, s.Length, s.CenterX, s.CenterY)
	}
	return out
}

func unpackFeatures(b []byte) (Features, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("feature block of %d bytes", len(b))
	}
	f := make(Features, len(b)/4)
	for i := range f {
		f[i] = SubStroke{b[i*4], b[i*4+1], b[i*4+2], b[i*4+3]}
	}
	return f, nil
}
