package crcengine

import (
	"math/bits"
	"unsafe"
)

// Word is the set of register types the engine can be instantiated with.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// widthOf returns the width of T in bits.
func widthOf[T Word]() int {
	return int(unsafe.Sizeof(*new(T))) * 8
}

// reverseBits mirrors the bit order of v across the full width of T.
func reverseBits[T Word](v T) T {
	return T(bits.Reverse64(uint64(v)) >> (64 - widthOf[T]()))
}

// swapBytes reverses the byte order of v at the width of T.
func swapBytes[T Word](v T) T {
	return T(bits.ReverseBytes64(uint64(v)) >> (64 - widthOf[T]()))
}
