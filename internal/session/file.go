// Copyright (c) 2025 @AmarnathCJD

package session

import (
	"io"
	"os"
	"path/filepath"

	"github.com/amarnathcjd/tgloop/internal/encoding/bin"
	"github.com/amarnathcjd/tgloop/internal/utils"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Store reads and writes the auth table, update cursor and secret chat files.
// Every call opens, uses and closes its file; nothing is held between calls.
type Store struct {
	fs    afero.Fs
	paths Paths
	log   *utils.Logger

	// last cursor read from or written to disk, see WriteCursor
	written Cursor
}

func NewStore(fs afero.Fs, paths Paths, log *utils.Logger) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if log == nil {
		log = utils.Nop()
	}
	return &Store{fs: fs, paths: paths, log: log.WithPrefix("session")}
}

func (s *Store) Paths() Paths {
	return s.paths
}

// readFile returns the file content, or false when there is nothing usable
// on disk. A file that can't be read is treated the same as a missing one.
func (s *Store) readFile(path string) ([]byte, bool) {
	data, err := afero.ReadFile(s.fs, path)
	switch {
	case err == nil:
		return data, true
	case os.IsNotExist(err):
		s.log.Debug("%s does not exist", path)
	default:
		s.log.WithError(err).Warn("can not read %s, ignoring it", path)
	}
	return nil, false
}

// write creates (or truncates) path and hands it to fn. The file is closed
// on every return path; a failed close fails the write.
func (s *Store) write(path string, fn func(f afero.File, e *bin.Encoder) error) (err error) {
	dir, _ := filepath.Split(path)
	if dir != "" {
		if stat, statErr := s.fs.Stat(dir); statErr != nil {
			return errors.Errorf("%v: directory not found", dir)
		} else if !stat.IsDir() {
			return errors.Errorf("%v: not a directory", dir)
		}
	}

	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrapf(err, "can not write %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()

	e := bin.NewEncoder(f)
	if err := fn(f, e); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := e.CheckErr(); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// decodeErr classifies a sticky decoder error. Truncated input is recoverable
// (the caller falls back to defaults and gets nil); a length prefix out of
// range is not.
func (s *Store) decodeErr(path string, d *bin.Decoder) error {
	err := d.Err()
	var lerr *bin.ErrLengthOutOfRange
	switch {
	case err == nil:
		return nil
	case errors.As(err, &lerr):
		return errors.Wrapf(ErrCorruptStore, "%s at offset %d: %v", path, d.Offset(), lerr)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.log.Warn("%s is truncated at offset %d, ignoring it", path, d.Offset())
		return nil
	default:
		return errors.Wrapf(err, "decoding %s", path)
	}
}

func corrupt(path, format string, args ...any) error {
	return errors.Wrapf(ErrCorruptStore, "%s: "+format, append([]any{path}, args...)...)
}
