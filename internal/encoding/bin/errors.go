// Copyright (c) 2025 @AmarnathCJD

package bin

import "fmt"

type ErrorPartialWrite struct {
	Has  int
	Want int
}

func (e *ErrorPartialWrite) Error() string {
	return fmt.Sprintf("write failed: wrote only %v bytes, expected %v", e.Has, e.Want)
}

// ErrLengthOutOfRange is reported when a length prefix read from the stream
// does not fit the bound the caller asked for. Nothing past the prefix is
// consumed.
type ErrLengthOutOfRange struct {
	Len uint32
	Max uint32
}

func (e *ErrLengthOutOfRange) Error() string {
	return fmt.Sprintf("length prefix out of range: got %d, want less than %d", int32(e.Len), e.Max)
}
