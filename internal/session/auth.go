// Copyright (c) 2025 @AmarnathCJD

package session

import (
	"github.com/amarnathcjd/tgloop/internal/encoding/bin"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ReadAuthTable decodes the auth key file. It returns (nil, nil) when the
// file is missing, empty, truncated or carries a foreign magic: the caller is
// expected to seed a default table. ErrCorruptStore is returned when a length
// or index field is out of bounds.
//
// Every DC present in the file is authorized and signed: only those are ever
// written.
func (s *Store) ReadAuthTable() (*AuthTable, error) {
	path := s.paths.AuthKey
	data, ok := s.readFile(path)
	if !ok {
		return nil, nil
	}

	d := bin.NewDecoderBytes(data)
	if magic := d.PopUint(); d.Err() != nil || magic != AuthFileMagic {
		s.log.Info("%s has no auth table, using defaults", path)
		return nil, nil
	}

	maxDC := d.PopUint()
	working := d.PopUint()
	if d.Err() != nil {
		return nil, s.decodeErr(path, d)
	}
	if maxDC == 0 || maxDC > MaxDCIndex {
		return nil, corrupt(path, "max dc index %d out of range", int32(maxDC))
	}
	if working > maxDC {
		return nil, corrupt(path, "working dc %d beyond max dc %d", working, maxDC)
	}

	table := &AuthTable{
		MaxDC:     int(maxDC),
		WorkingDC: int(working),
		DCs:       make([]*DataCenter, maxDC+1),
	}

	for i := 0; i <= int(maxDC) && d.Err() == nil; i++ {
		if d.PopUint() == 0 {
			continue
		}

		dc := &DataCenter{ID: i, Authorized: true, Signed: true}
		dc.Port = int(d.PopUint())
		dc.IP = string(d.PopBytes(MaxIPLen))
		dc.AuthKeyID = d.PopLong()
		copy(dc.AuthKey[:], d.PopRawBytes(AuthKeySize))
		table.DCs[i] = dc
	}
	if d.Err() != nil {
		return nil, s.decodeErr(path, d)
	}

	// our user id is an optional tail, older files end right after the table
	switch n := d.Len(); {
	case n == 0:
	case n < bin.WordLen:
		return nil, corrupt(path, "%d trailing bytes", n)
	default:
		table.OurID = d.PopInt()
	}

	s.log.Debug("loaded auth table from %s: max dc %d, working dc %d", path, table.MaxDC, table.WorkingDC)
	return table, nil
}

// WriteAuthTable rewrites the whole auth key file. Unauthorized DCs are
// written as absent: their key material never reaches the disk.
func (s *Store) WriteAuthTable(t *AuthTable) error {
	return s.write(s.paths.AuthKey, func(_ afero.File, e *bin.Encoder) error {
		e.PutUint(AuthFileMagic)
		e.PutUint(uint32(t.MaxDC))
		e.PutUint(uint32(t.WorkingDC))

		for i := 0; i <= t.MaxDC; i++ {
			var dc *DataCenter
			if i < len(t.DCs) {
				dc = t.DCs[i]
			}
			if dc == nil || !dc.Authorized {
				e.PutUint(0)
				continue
			}
			if len(dc.IP) >= MaxIPLen {
				return errors.Errorf("dc %d: ip %q too long", i, dc.IP)
			}

			e.PutUint(1)
			e.PutUint(uint32(dc.Port))
			e.PutString(dc.IP)
			e.PutLong(dc.AuthKeyID)
			e.PutRawBytes(dc.AuthKey[:])
		}

		e.PutInt(t.OurID)
		return nil
	})
}
