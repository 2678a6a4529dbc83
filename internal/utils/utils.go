// Copyright (c) 2024 RoseLoverX

package utils

import (
	"crypto/sha1"
)

// AuthKeyHash returns the 64 low-order bits of SHA1(key), the id under
// which a server knows an auth key.
func AuthKeyHash(key []byte) []byte {
	return Sha1Byte(key)[12:20]
}

func Sha1Byte(input []byte) []byte {
	r := sha1.Sum(input)
	return r[:]
}
