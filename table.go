package crcengine

import (
	"math/bits"
	"sync"
)

// table holds the 32x256 lookup matrix for one profile. Row 0 is the
// classic one-byte table; row j advances an entry a further 8*j bits of
// zero input, which is what lets the slicing kernels fold a whole block in
// one fused step.
type table[T Word] [tableRows][256]T

// tableKey identifies a lookup table. Only the polynomial, the width and
// the input reflection influence the table contents.
type tableKey struct {
	width      int
	polynomial uint64
	reflectIn  bool
}

// tableCache shares immutable tables between engines with equal profiles.
var tableCache sync.Map // tableKey -> *table[T], T pinned by key.width

// lookupTable returns the cached table for p, building it on first use.
// Callers must have validated p: key.width always matches T here.
func lookupTable[T Word](p Profile) *table[T] {
	key := tableKey{width: p.Width, polynomial: p.Polynomial, reflectIn: p.ReflectIn}
	if v, ok := tableCache.Load(key); ok {
		return v.(*table[T])
	}
	v, _ := tableCache.LoadOrStore(key, makeTable[T](p))
	return v.(*table[T])
}

// makeTable derives the full 32x256 matrix for p.
func makeTable[T Word](p Profile) *table[T] {
	t := new(table[T])
	for i := 0; i < 256; i++ {
		t[0][i] = tableEntry[T](p, uint8(i))
	}
	// Remaining rows extend row 0 so that row j accounts for 8*j trailing
	// zero bits, one row per byte position of a slicing block.
	if p.ReflectIn {
		for i := 0; i < 256; i++ {
			for j := 1; j < tableRows; j++ {
				t[j][i] = t[j-1][i]>>8 ^ t[0][t[j-1][i]&0xFF]
			}
		}
	} else {
		shift := widthOf[T]() - 8
		for i := 0; i < 256; i++ {
			for j := 1; j < tableRows; j++ {
				t[j][i] = t[j-1][i]<<8 ^ t[0][t[j-1][i]>>shift&0xFF]
			}
		}
	}
	return t
}

// tableEntry computes the row-0 entry for input byte v by long division.
func tableEntry[T Word](p Profile, v uint8) T {
	width := widthOf[T]()
	highBit := T(1) << (width - 1)

	r := T(v)
	if p.ReflectIn {
		r = T(bits.Reverse8(v))
	}
	r <<= width - 8

	for i := 0; i < 8; i++ {
		if r&highBit != 0 {
			r = r<<1 ^ T(p.Polynomial)
		} else {
			r <<= 1
		}
	}

	if p.ReflectIn {
		return reverseBits(r)
	}
	return r
}
