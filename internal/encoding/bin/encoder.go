// Copyright (c) 2025 @AmarnathCJD

package bin

import (
	"encoding/binary"
	"io"
)

// Encoder writes fixed-width little-endian values into w.
type Encoder struct {
	w io.Writer
	// last unsuccessful write into w. once set, nothing more is written.
	err error
	n   int64
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) write(b []byte) {
	if e.err != nil {
		return
	}

	n, err := e.w.Write(b)
	e.n += int64(n)
	if err != nil {
		e.err = err
		return
	}

	if n != len(b) {
		e.err = &ErrorPartialWrite{Has: n, Want: len(b)}
	}
}

// CheckErr must be called after encoding has been finished. If this function returns a non-nil value,
// the encoding has failed, and the resulting data should not be used.
func (e *Encoder) CheckErr() error {
	return e.err
}

// Written reports how many bytes reached the underlying writer.
func (e *Encoder) Written() int64 {
	return e.n
}

func (e *Encoder) PutUint(v uint32) {
	buf := make([]byte, WordLen)
	binary.LittleEndian.PutUint32(buf, v)
	e.write(buf)
}

func (e *Encoder) PutInt(v int32) {
	e.PutUint(uint32(v))
}

func (e *Encoder) PutLong(v int64) {
	buf := make([]byte, LongLen)
	binary.LittleEndian.PutUint64(buf, uint64(v))
	e.write(buf)
}

func (e *Encoder) PutRawBytes(b []byte) {
	e.write(b)
}

// PutBytes writes a u32 length prefix followed by b, without padding.
func (e *Encoder) PutBytes(b []byte) {
	e.PutUint(uint32(len(b)))
	e.write(b)
}

func (e *Encoder) PutString(s string) {
	e.PutBytes([]byte(s))
}
