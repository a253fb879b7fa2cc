package crcengine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClock returns a fixed start time and advances by one scripted
// step per call, making tuner timings deterministic.
type scriptedClock struct {
	t     time.Time
	steps []time.Duration
	i     int
}

func (c *scriptedClock) now() time.Time {
	cur := c.t
	if c.i < len(c.steps) {
		c.t = c.t.Add(c.steps[c.i])
		c.i++
	}
	return cur
}

func TestTuneSelectsFastestKernel(t *testing.T) {
	// Tune reads the clock before and after each kernel, so measurement k
	// sees steps[2k] as its elapsed time. Order: 1x32, 2x32, 4x32, 8x32,
	// byte.
	clock := &scriptedClock{
		t: time.Unix(0, 0),
		steps: []time.Duration{
			5 * time.Millisecond, 0,
			3 * time.Millisecond, 0,
			4 * time.Millisecond, 0,
			6 * time.Millisecond, 0,
			7 * time.Millisecond, 0,
		},
	}
	e := NewCRC32()
	e.SetClock(clock.now)

	results := e.Tune(64, 1)
	assert.Equal(t, Kernel2x32, e.Kernel())

	require.Len(t, results, 5)
	order := []Kernel{Kernel1x32, Kernel2x32, Kernel4x32, Kernel8x32, KernelByte}
	for i, r := range results {
		assert.Equal(t, order[i], r.Kernel)
	}
	assert.Equal(t, 5*time.Millisecond, results[0].Elapsed)
	assert.Equal(t, 3*time.Millisecond, results[1].Elapsed)
	assert.Equal(t, results, e.TuneResults())
}

// On a tie the earliest measured kernel wins, selection being strict
// less-than in measurement order.
func TestTuneTieBreaksEarlier(t *testing.T) {
	clock := &scriptedClock{
		t: time.Unix(0, 0),
		steps: []time.Duration{
			2 * time.Millisecond, 0,
			2 * time.Millisecond, 0,
			2 * time.Millisecond, 0,
			2 * time.Millisecond, 0,
			2 * time.Millisecond, 0,
		},
	}
	e := NewCRC64()
	e.SetClock(clock.now)
	e.Tune(64, 1)
	assert.Equal(t, Kernel1x32, e.Kernel())
}

// Tuning must never change what a subsequent stream digests to.
func TestTuneNeutrality(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	data := make([]byte, 3000)
	rng.Read(data)

	for _, tp := range testProfiles() {
		tuned, err := NewHash(tp.profile)
		require.NoError(t, err)
		tuned.Tune(256, 2)
		tuned.Consume(data)

		plain, err := NewHash(tp.profile)
		require.NoError(t, err)
		plain.Consume(data)

		assert.Equal(t, plain.Digest64(), tuned.Digest64(), tp.name)
	}
}

// Tune discards whatever register state its measurement passes built up.
func TestTuneResetsRegister(t *testing.T) {
	e := NewCRC32()
	fresh := e.Digest()

	e.Consume([]byte("state that tune throws away"))
	e.Tune(128, 1)
	assert.Equal(t, fresh, e.Digest())
}

func TestTuneDefaults(t *testing.T) {
	e := NewCRC16()
	results := e.Tune(0, 0)
	require.Len(t, results, 5)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Elapsed, time.Duration(0))
	}
	assert.True(t, e.Kernel().valid())
}

func TestRecommendedKernel(t *testing.T) {
	k := RecommendedKernel()
	assert.Contains(t, []Kernel{Kernel4x32, Kernel8x32}, k)
}

func TestCPUInfo(t *testing.T) {
	assert.NotEmpty(t, CPUInfo())
}
