package crcengine

import (
	"math"
	"time"
)

// TuneResult captures the measurement of one kernel during a Tune run.
type TuneResult struct {
	Kernel   Kernel        `json:"kernel"`
	Elapsed  time.Duration `json:"elapsed"`
	MBPerSec float64       `json:"mb_per_sec,omitempty"`
}

// tuneOrder is the measurement order. Selection is by strict less-than, so
// on a tie the earlier kernel wins.
var tuneOrder = [...]Kernel{Kernel1x32, Kernel2x32, Kernel4x32, Kernel8x32, KernelByte}

// Tune benchmarks all five kernels against a scratch buffer and makes the
// fastest one the active kernel. Non-positive arguments select the defaults
// (8191 bytes, 128 repeats). Tune ends with a Reset, so it never influences
// the digest of a stream consumed afterward; tune a fresh engine or accept
// losing any accumulated register state.
func (e *Engine[T]) Tune(bufferSize, repeats int) []TuneResult {
	if bufferSize <= 0 {
		bufferSize = DefaultTuneBufferSize
	}
	if repeats <= 0 {
		repeats = DefaultTuneRepeats
	}
	buf := make([]byte, bufferSize)

	best := e.kernel
	bestElapsed := time.Duration(math.MaxInt64)
	results := make([]TuneResult, 0, len(tuneOrder))
	for _, k := range tuneOrder {
		start := e.now()
		for i := 0; i < repeats; i++ {
			e.crc = e.update(e.crc, buf, k)
		}
		elapsed := e.now().Sub(start)

		r := TuneResult{Kernel: k, Elapsed: elapsed}
		if elapsed > 0 {
			r.MBPerSec = float64(bufferSize) * float64(repeats) /
				elapsed.Seconds() / (1024 * 1024)
		}
		results = append(results, r)

		if elapsed < bestElapsed {
			bestElapsed = elapsed
			best = k
		}
	}

	e.Reset()
	e.kernel = best
	e.lastTune = results
	return results
}

// TuneResults returns the measurements of the most recent Tune call, or nil
// if the engine has not been tuned.
func (e *Engine[T]) TuneResults() []TuneResult {
	return e.lastTune
}
