package crcengine

import (
	"fmt"
)

// Profile is the immutable description of a CRC variant. Polynomial and
// Initial are given in the normal (non-reflected) representation with the
// high bit of the polynomial omitted; ReflectIn switches the whole engine
// into the reflected (LSB-first) form. Kernel is the default processing
// kernel for Consume; Tune and ConsumeWith override it.
//
// A Profile is a plain comparable value: two engines built from equal
// profiles share one lookup table.
type Profile struct {
	Width      int    // register width in bits: 16, 32 or 64
	Polynomial uint64 // generator polynomial, normal form, high bit omitted
	Initial    uint64 // initial register value, normal form
	XorOut     uint64 // mask XORed into the final digest
	ReflectIn  bool   // process input bytes LSB-first
	ReflectOut bool   // bit-reverse the register before XorOut
	Kernel     Kernel // default kernel for Consume
}

// validate reports the first construction-time defect of p, if any.
func (p Profile) validate(op string) error {
	switch p.Width {
	case 16, 32, 64:
	default:
		return NewUnsupportedWidthError(op, p.Width)
	}
	if p.Width < 64 {
		limit := uint64(1)<<p.Width - 1
		if p.Polynomial > limit {
			return NewInvalidProfileError(op, fmt.Sprintf(
				"polynomial %#x has bits above bit %d", p.Polynomial, p.Width-1))
		}
		if p.Initial > limit {
			return NewInvalidProfileError(op, fmt.Sprintf(
				"initial value %#x has bits above bit %d", p.Initial, p.Width-1))
		}
		if p.XorOut > limit {
			return NewInvalidProfileError(op, fmt.Sprintf(
				"xor-out mask %#x has bits above bit %d", p.XorOut, p.Width-1))
		}
	}
	if !p.Kernel.valid() {
		return NewInvalidProfileError(op, fmt.Sprintf(
			"unknown default kernel %d", int(p.Kernel)))
	}
	return nil
}

// Preset profiles for the most common CRC variants. All are pure factories.

// ProfileCRC16 returns the CRC-16 (ARC) parameterization.
func ProfileCRC16() Profile {
	return Profile{
		Width:      16,
		Polynomial: 0x8005,
		ReflectIn:  true,
		ReflectOut: true,
		Kernel:     Kernel4x32,
	}
}

// ProfileCRC16CCITT returns the CRC-16/CCITT-FALSE parameterization.
func ProfileCRC16CCITT() Profile {
	return Profile{
		Width:      16,
		Polynomial: 0x1021,
		Initial:    0xFFFF,
		Kernel:     Kernel4x32,
	}
}

// ProfileCRC32 returns the CRC-32 (IEEE 802.3) parameterization.
func ProfileCRC32() Profile {
	return Profile{
		Width:      32,
		Polynomial: 0x04C11DB7,
		Initial:    0xFFFFFFFF,
		XorOut:     0xFFFFFFFF,
		ReflectIn:  true,
		ReflectOut: true,
		Kernel:     Kernel4x32,
	}
}

// ProfileCRC64 returns the reflected CRC-64 parameterization built on the
// ECMA-182 polynomial (the variant used by the xz format).
func ProfileCRC64() Profile {
	return Profile{
		Width:      64,
		Polynomial: 0x42F0E1EBA9EA3693,
		Initial:    0xFFFFFFFFFFFFFFFF,
		XorOut:     0xFFFFFFFFFFFFFFFF,
		ReflectIn:  true,
		ReflectOut: true,
		Kernel:     Kernel4x32,
	}
}

// ProfileCRC64ISO returns the reflected CRC-64 parameterization built on the
// ISO 3309 polynomial, with zero initial register and zero output mask.
func ProfileCRC64ISO() Profile {
	return Profile{
		Width:      64,
		Polynomial: 0x000000000000001B,
		ReflectIn:  true,
		ReflectOut: true,
		Kernel:     Kernel4x32,
	}
}
