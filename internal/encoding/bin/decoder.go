// Copyright (c) 2025 @AmarnathCJD

package bin

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// A Decoder reads fixed-width little-endian values from an in-memory copy of
// its input. The first failure sticks: later Pop calls return zero values and
// Err reports the original cause.
type Decoder struct {
	buf *bytes.Reader
	err error
}

// NewDecoder returns a new decoder that reads from r.
// The whole of r is read up front.
func NewDecoder(r io.Reader) (*Decoder, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading data before decoding")
	}

	return NewDecoderBytes(data), nil
}

func NewDecoderBytes(data []byte) *Decoder {
	return &Decoder{buf: bytes.NewReader(data)}
}

func (d *Decoder) read(buf []byte) {
	if d.err != nil {
		return
	}

	// io.EOF when nothing was left, io.ErrUnexpectedEOF on a partial read
	if _, err := io.ReadFull(d.buf, buf); err != nil {
		d.err = err
	}
}

func (d *Decoder) Err() error {
	return d.err
}

// Len is the number of unread bytes.
func (d *Decoder) Len() int {
	return d.buf.Len()
}

// Offset is the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.buf.Size() - int64(d.buf.Len())
}

func (d *Decoder) PopUint() uint32 {
	val := make([]byte, WordLen)
	d.read(val)
	if d.err != nil {
		return 0
	}

	return binary.LittleEndian.Uint32(val)
}

func (d *Decoder) PopInt() int32 {
	return int32(d.PopUint())
}

func (d *Decoder) PopLong() int64 {
	val := make([]byte, LongLen)
	d.read(val)
	if d.err != nil {
		return 0
	}

	return int64(binary.LittleEndian.Uint64(val))
}

func (d *Decoder) PopRawBytes(size int) []byte {
	val := make([]byte, size)
	d.read(val)
	if d.err != nil {
		return nil
	}

	return val
}

// PopBytes reads a u32 length prefix and then that many bytes. The prefix is
// checked against max (exclusive) before anything is allocated; a negative
// length read as i32 is always out of range.
func (d *Decoder) PopBytes(max uint32) []byte {
	size := d.PopUint()
	if d.err != nil {
		return nil
	}

	if size >= max {
		d.err = &ErrLengthOutOfRange{Len: size, Max: max}
		return nil
	}

	return d.PopRawBytes(int(size))
}
