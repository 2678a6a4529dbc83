// Copyright (c) 2025 @AmarnathCJD

package bin

const (
	WordLen = 4           // u32 / i32
	LongLen = WordLen * 2 // i64
)
