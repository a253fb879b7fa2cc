// Package crcengine provides a table-driven cyclic redundancy check engine
// for arbitrary CRC parameterizations at 16, 32 and 64 bits.
//
// A CRC variant is described by a Profile: generator polynomial, initial
// register, output XOR mask, and the input/output reflection flags. From a
// profile the engine derives a 32x256 lookup table and exposes five
// processing kernels that trade table footprint for throughput: a classic
// byte-at-a-time loop and four slicing kernels folding 4, 8, 16 or 32 bytes
// of input per table step. All kernels produce bit-identical digests; the
// built-in tuner benchmarks them on the host and picks the fastest.
//
// Example usage:
//
//	e := crcengine.NewCRC32()
//	e.Tune(0, 0) // optional: select the fastest kernel for this host
//
//	e.Consume(firstChunk)
//	e.Consume(secondChunk)
//	sum := e.Digest() // uint32, 0xCBF43926 for "123456789"
//
// Custom variants go through New with an explicit profile:
//
//	p := crcengine.Profile{
//		Width:      16,
//		Polynomial: 0x1021,
//		Initial:    0xFFFF,
//		Kernel:     crcengine.Kernel4x32,
//	}
//	e, err := crcengine.New[uint16](p)
//
// Engines are not safe for concurrent mutation. Digest does not mutate the
// register, so an engine that is no longer being fed may be read from
// multiple goroutines.
package crcengine
