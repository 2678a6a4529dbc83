// Copyright (c) 2025 @AmarnathCJD

package session

import (
	"github.com/amarnathcjd/tgloop/internal/encoding/bin"
	"github.com/spf13/afero"
)

const stateFileVersion = 0

// ReadCursor loads the update cursor. Anything short of a well-formed file
// yields the zero cursor. The value read also becomes the baseline for
// WriteCursor.
func (s *Store) ReadCursor() Cursor {
	path := s.paths.State
	data, ok := s.readFile(path)
	if !ok {
		return Cursor{}
	}

	d := bin.NewDecoderBytes(data)
	if magic := d.PopUint(); d.Err() != nil || magic != StateFileMagic {
		s.log.Info("%s has no update state, starting from scratch", path)
		return Cursor{}
	}
	d.PopUint() // version, nothing depends on it yet

	c := Cursor{
		Pts:  d.PopInt(),
		Qts:  d.PopInt(),
		Seq:  d.PopInt(),
		Date: d.PopInt(),
	}
	if d.Err() != nil {
		s.log.Warn("%s is truncated, starting from scratch", path)
		return Cursor{}
	}

	s.written = c
	return c
}

// WriteCursor persists c unless no field of it is ahead of the last cursor
// read or written by this Store. It reports whether the file was written.
// Callers may invoke it on every update tick.
func (s *Store) WriteCursor(c Cursor) (bool, error) {
	if c.NotAfter(s.written) {
		return false, nil
	}

	err := s.write(s.paths.State, func(_ afero.File, e *bin.Encoder) error {
		e.PutUint(StateFileMagic)
		e.PutUint(stateFileVersion)
		e.PutInt(c.Pts)
		e.PutInt(c.Qts)
		e.PutInt(c.Seq)
		e.PutInt(c.Date)
		return nil
	})
	if err != nil {
		return false, err
	}

	s.written = c
	return true, nil
}
