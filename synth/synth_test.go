package synth_test

import (
	"testing"

	"github.com/katalvlaran/tsdist/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPulse_Deterministic verifies that identical (n, seed, options) calls
// produce identical samples.
func TestPulse_Deterministic(t *testing.T) {
	a := synth.Pulse(64, 7, synth.WithNoise(0.1))
	b := synth.Pulse(64, 7, synth.WithNoise(0.1))
	require.Len(t, a, 64)
	assert.Equal(t, a, b)
}

// TestPulse_Rectangular verifies the noiseless rectangular shape: samples
// are either 0 or the amplitude.
func TestPulse_Rectangular(t *testing.T) {
	s := synth.Pulse(32, 1, synth.WithAmplitude(2))
	require.Len(t, s, 32)
	for i, v := range s {
		assert.Contains(t, []float64{0, 2}, v, "sample %d", i)
	}
}

// TestPulse_InvalidInputs verifies nil results, never panics.
func TestPulse_InvalidInputs(t *testing.T) {
	assert.Nil(t, synth.Pulse(0, 1))
	assert.Nil(t, synth.Pulse(10, 1, synth.WithAmplitude(0)))
	assert.Nil(t, synth.Pulse(10, 1, synth.WithNoise(-1)))
	assert.Nil(t, synth.Pulse(10, 1, synth.WithDuty(1.5)))
}

// TestChirp_DeterministicAndSeedSensitive verifies determinism per seed
// and divergence across seeds once noise is enabled.
func TestChirp_DeterministicAndSeedSensitive(t *testing.T) {
	a := synth.Chirp(128, 3, synth.WithNoise(0.05))
	b := synth.Chirp(128, 3, synth.WithNoise(0.05))
	c := synth.Chirp(128, 4, synth.WithNoise(0.05))

	require.Len(t, a, 128)
	assert.Equal(t, a, b, "same seed must reproduce")
	assert.NotEqual(t, a, c, "different seed must diverge under noise")
}

// TestChirp_AmplitudeBound verifies the noiseless chirp stays inside
// [-amp, amp].
func TestChirp_AmplitudeBound(t *testing.T) {
	s := synth.Chirp(256, 1, synth.WithAmplitude(3))
	for i, v := range s {
		assert.LessOrEqual(t, v, 3.0, "sample %d", i)
		assert.GreaterOrEqual(t, v, -3.0, "sample %d", i)
	}
}

// TestRagged_LengthsWithinRange verifies the collection shape contract.
func TestRagged_LengthsWithinRange(t *testing.T) {
	set := synth.Ragged(20, 30, 50, 9)
	require.Len(t, set, 20)
	for i, s := range set {
		assert.GreaterOrEqual(t, len(s), 30, "series %d", i)
		assert.LessOrEqual(t, len(s), 50, "series %d", i)
	}

	// Deterministic as a whole.
	again := synth.Ragged(20, 30, 50, 9)
	assert.Equal(t, set, again)
}

// TestRagged_InvalidInputs verifies nil on bad shapes.
func TestRagged_InvalidInputs(t *testing.T) {
	assert.Nil(t, synth.Ragged(0, 10, 20, 1))
	assert.Nil(t, synth.Ragged(5, 0, 20, 1))
	assert.Nil(t, synth.Ragged(5, 20, 10, 1))
}
