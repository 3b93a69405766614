package swf

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/exp/constraints"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is the byte order for byte-aligned multi-byte fields. The format
	// packs bit fields most-significant-bit first but stores whole-byte
	// integers little-endian.
	Order = LE
)

func Ptr[T any](v T) *T { return &v } // ptr is a helper function to create a pointer to a value, making test setup cleaner.

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// UnsignedBits returns the minimum field width able to hold v.
func UnsignedBits(v uint32) uint {
	return uint(bits.Len32(v))
}

// SignedBits returns the minimum two's-complement field width able to hold v.
func SignedBits(v int32) uint {
	if v < 0 {
		return uint(bits.Len32(uint32(^v))) + 1
	}
	return uint(bits.Len32(uint32(v))) + 1
}

// maxSignedBits returns the widest SignedBits over vs, never less than min.
func maxSignedBits(min uint, vs ...int32) uint {
	size := min
	for _, v := range vs {
		if n := SignedBits(v); n > size {
			size = n
		}
	}
	return size
}
