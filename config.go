// Package crcengine configuration constants
package crcengine

// Lookup table shape
const (
	// Rows in the lookup matrix; row j serves the byte j positions before
	// the end of the widest slicing block
	tableRows = 32

	// Bytes folded per unrolled pass of every word kernel: the 1x32
	// kernel runs 16 steps per pass, 2x32 runs 8, 4x32 runs 4 and 8x32
	// runs 2, so each pass consumes the same 64 bytes
	wordBlock = 64
)

// Self-tuner defaults
const (
	// DefaultTuneBufferSize is the scratch buffer size used when Tune is
	// called with a non-positive buffer size
	DefaultTuneBufferSize = 8*1024 - 1

	// DefaultTuneRepeats is the number of passes per kernel used when
	// Tune is called with a non-positive repeat count
	DefaultTuneRepeats = 128
)
