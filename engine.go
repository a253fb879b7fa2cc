package crcengine

import (
	"fmt"
	"time"
	"unsafe"
)

// Engine is a streaming CRC calculator parameterized by its register type.
// It holds the running register, the profile it was built from, the shared
// lookup table and the active kernel. An Engine is owned by its caller and
// is not safe for concurrent mutation.
type Engine[T Word] struct {
	crc     T // running register, reflected form when profile.ReflectIn
	initial T // register value after Reset
	profile Profile
	table   *table[T]
	kernel  Kernel
	width   int

	now      func() time.Time // tuner clock, swappable for tests
	lastTune []TuneResult
}

// New builds an engine for profile p. It fails with an UnsupportedWidth
// error when p.Width is not 16, 32 or 64, and with an InvalidProfile error
// when p.Width does not match T or a profile value has bits above bit
// Width-1. Engines built from equal profiles share one lookup table.
func New[T Word](p Profile) (*Engine[T], error) {
	const op = "New"
	if err := p.validate(op); err != nil {
		return nil, err
	}
	if w := widthOf[T](); p.Width != w {
		return nil, NewInvalidProfileError(op, fmt.Sprintf(
			"profile width %d bound to a %d-bit engine", p.Width, w))
	}

	e := &Engine[T]{
		profile: p,
		table:   lookupTable[T](p),
		kernel:  p.Kernel,
		width:   p.Width,
		now:     time.Now,
	}
	e.initial = T(p.Initial)
	if p.ReflectIn {
		e.initial = reverseBits(e.initial)
	}
	e.crc = e.initial
	return e, nil
}

func mustNew[T Word](p Profile) *Engine[T] {
	e, err := New[T](p)
	if err != nil {
		panic(err)
	}
	return e
}

// Preset constructors. Presets are known-valid, so these cannot fail.

// NewCRC16 returns an engine computing CRC-16 (ARC).
func NewCRC16() *Engine[uint16] { return mustNew[uint16](ProfileCRC16()) }

// NewCRC16CCITT returns an engine computing CRC-16/CCITT-FALSE.
func NewCRC16CCITT() *Engine[uint16] { return mustNew[uint16](ProfileCRC16CCITT()) }

// NewCRC32 returns an engine computing CRC-32 (IEEE 802.3).
func NewCRC32() *Engine[uint32] { return mustNew[uint32](ProfileCRC32()) }

// NewCRC64 returns an engine computing the reflected ECMA-182 CRC-64.
func NewCRC64() *Engine[uint64] { return mustNew[uint64](ProfileCRC64()) }

// NewCRC64ISO returns an engine computing the reflected ISO 3309 CRC-64.
func NewCRC64ISO() *Engine[uint64] { return mustNew[uint64](ProfileCRC64ISO()) }

// Reset returns the register to its initial value. The engine may then be
// reused for a fresh stream.
func (e *Engine[T]) Reset() {
	e.crc = e.initial
}

// Consume folds p into the running register using the active kernel.
// Successive calls compose: feeding a stream in any split yields the same
// digest as feeding it whole. Consuming an empty slice is a no-op.
func (e *Engine[T]) Consume(p []byte) {
	e.crc = e.update(e.crc, p, e.kernel)
}

// ConsumeWith folds p using kernel k for this call only. Unknown kernel
// values fall back to the byte kernel.
func (e *Engine[T]) ConsumeWith(p []byte, k Kernel) {
	e.crc = e.update(e.crc, p, k)
}

// Digest returns the finalized CRC of everything consumed since the last
// Reset. It does not mutate the register; consuming may continue afterward.
func (e *Engine[T]) Digest() T {
	r := e.crc
	// With ReflectIn the register already carries the reflection, so a
	// matching ReflectOut cancels back to plain output and only a
	// mismatch needs the bit reversal.
	if e.profile.ReflectOut != e.profile.ReflectIn {
		r = reverseBits(r)
	}
	return r ^ T(e.profile.XorOut)
}

// Digest64 returns Digest widened to uint64.
func (e *Engine[T]) Digest64() uint64 {
	return uint64(e.Digest())
}

// Size returns the digest width in bytes.
func (e *Engine[T]) Size() int {
	return e.width / 8
}

// Kernel returns the active kernel.
func (e *Engine[T]) Kernel() Kernel {
	return e.kernel
}

// SetKernel makes k the active kernel for subsequent Consume calls.
// Unknown values are ignored.
func (e *Engine[T]) SetKernel(k Kernel) {
	if k.valid() {
		e.kernel = k
	}
}

// Profile returns the profile the engine was built from.
func (e *Engine[T]) Profile() Profile {
	return e.profile
}

// SetClock replaces the wall clock used by Tune. Tests inject a fake clock
// here to make kernel selection deterministic.
func (e *Engine[T]) SetClock(now func() time.Time) {
	if now != nil {
		e.now = now
	}
}

// Hash is the runtime-width view of an engine, for callers that pick the
// CRC width from data rather than at compile time.
type Hash interface {
	Reset()
	Consume(p []byte)
	ConsumeWith(p []byte, k Kernel)
	Digest64() uint64
	Size() int
	Kernel() Kernel
	SetKernel(k Kernel)
	Tune(bufferSize, repeats int) []TuneResult
}

// NewHash builds an engine for p behind the Hash interface, dispatching on
// p.Width. A width other than 16, 32 or 64 yields an UnsupportedWidth
// error.
func NewHash(p Profile) (Hash, error) {
	switch p.Width {
	case 16:
		return New[uint16](p)
	case 32:
		return New[uint32](p)
	case 64:
		return New[uint64](p)
	}
	return nil, NewUnsupportedWidthError("NewHash", p.Width)
}

// ConsumeOf folds a slice of any scalar element type into e, interpreting
// the elements by their in-memory byte layout in host order. The CRC
// consumes the stream as bytes regardless of element type.
func ConsumeOf[T Word, E any](e *Engine[T], data []E) {
	if len(data) == 0 {
		return
	}
	n := len(data) * int(unsafe.Sizeof(data[0]))
	e.Consume(unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), n))
}
