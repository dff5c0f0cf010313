// SPDX-License-Identifier: MIT
// Package synth: deterministic pulse/chirp/ragged-set generators.
//
// Determinism policy:
//   - Every generator derives its RNG as rand.New(rand.NewSource(seed)).
//   - Options never introduce hidden state; same inputs ⇒ same samples.
//
// Contract:
//   - O(n) time, O(n) memory per series. No panics. No global state.
//   - Invalid input (n<1, amplitude≤0, sigma<0, duty outside [0,1],
//     non-positive frequencies) ⇒ nil result.

package synth

import (
	"math"
	"math/rand"
)

// -----------------------------
// Defaults (single source of truth).
// -----------------------------
const (
	defAmp   = 1.0   // amplitude (>0)
	defSigma = 0.0   // Gaussian noise sigma (≥0); 0 disables noise
	defTrend = 0.0   // linear trend increment per sample
	defDuty  = 0.5   // rectangular duty cycle in [0,1]
	defFreq  = 0.125 // pulse base frequency (cycles/sample)
	defF0    = 0.02  // chirp start frequency (cycles/sample)
	defF1    = 0.25  // chirp end frequency (cycles/sample)
)

// tau is 2π, precomputed for the phase accumulator.
const tau = 2.0 * math.Pi

// config holds the resolved generator knobs.
type config struct {
	amp        float64
	sigma      float64
	trend      float64
	duty       float64
	triangular bool
	freq       float64
	f0, f1     float64
}

// Option mutates the generator configuration.
type Option func(*config)

// WithAmplitude sets the waveform amplitude (must be > 0).
func WithAmplitude(a float64) Option {
	return func(c *config) { c.amp = a }
}

// WithNoise adds deterministic Gaussian noise with the given sigma (≥ 0).
func WithNoise(sigma float64) Option {
	return func(c *config) { c.sigma = sigma }
}

// WithTrend adds a linear trend of slope per sample.
func WithTrend(slope float64) Option {
	return func(c *config) { c.trend = slope }
}

// WithDuty sets the rectangular pulse duty cycle in [0,1]. Pulse only.
func WithDuty(d float64) Option {
	return func(c *config) { c.duty = d }
}

// WithTriangular switches Pulse to a triangular envelope.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithFrequency sets the pulse base frequency in cycles/sample (> 0).
func WithFrequency(f float64) Option {
	return func(c *config) { c.freq = f }
}

// WithSweep sets the chirp start and end frequencies in cycles/sample
// (both > 0). Chirp only.
func WithSweep(f0, f1 float64) Option {
	return func(c *config) { c.f0, c.f1 = f0, f1 }
}

func gather(opts []Option) config {
	c := config{
		amp:   defAmp,
		sigma: defSigma,
		trend: defTrend,
		duty:  defDuty,
		freq:  defFreq,
		f0:    defF0,
		f1:    defF1,
	}
	for _, set := range opts {
		set(&c)
	}

	return c
}

// valid reports whether the shared knobs make sense.
func (c config) valid() bool {
	return c.amp > 0 && c.sigma >= 0 && !math.IsNaN(c.trend) &&
		c.duty >= 0 && c.duty <= 1 && c.freq > 0 && c.f0 > 0 && c.f1 > 0
}

// Pulse returns n samples of a rectangular (or triangular) pulse train.
// Rectangular: amp while the phase fraction is below the duty cycle, else
// zero. Triangular: a 0..amp..0 envelope per period. Trend and noise are
// applied after the base waveform. Returns nil on invalid input.
func Pulse(n int, seed int64, opts ...Option) []float64 {
	c := gather(opts)
	if n < 1 || !c.valid() {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		frac := math.Mod(float64(i)*c.freq, 1.0)
		var v float64
		if c.triangular {
			// 0→amp→0 triangle: 1 - |2*frac - 1| scaled by amp.
			v = c.amp * (1.0 - math.Abs(2.0*frac-1.0))
		} else if frac < c.duty {
			v = c.amp
		}
		v += c.trend * float64(i)
		if c.sigma > 0 {
			v += rng.NormFloat64() * c.sigma
		}
		out[i] = v
	}

	return out
}

// Chirp returns n samples of a linear frequency sweep from f0 to f1
// (cycles/sample), amplitude amp, with optional trend and noise.
// The phase accumulates so the sweep stays continuous. Returns nil on
// invalid input.
func Chirp(n int, seed int64, opts ...Option) []float64 {
	c := gather(opts)
	if n < 1 || !c.valid() {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	theta := 0.0
	for i := 0; i < n; i++ {
		// Linear interpolation of instantaneous frequency across the sweep.
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi := c.f0 + (c.f1-c.f0)*t
		v := c.amp * math.Sin(theta)
		v += c.trend * float64(i)
		if c.sigma > 0 {
			v += rng.NormFloat64() * c.sigma
		}
		out[i] = v
		theta += tau * fi
	}

	return out
}

// Ragged returns count series of chirps whose lengths are drawn uniformly
// from [minLen, maxLen] and whose end frequency carries per-series jitter,
// so no two series are trivially equal. Options apply to every series.
// Returns nil when count < 1 or the length range is invalid.
func Ragged(count, minLen, maxLen int, seed int64, opts ...Option) [][]float64 {
	if count < 1 || minLen < 1 || maxLen < minLen {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))

	set := make([][]float64, count)
	for i := range set {
		n := minLen + rng.Intn(maxLen-minLen+1)
		jitter := 1.0 + 0.1*rng.Float64()
		perSeries := append([]Option{}, opts...)
		perSeries = append(perSeries, WithSweep(defF0, defF1*jitter))
		set[i] = Chirp(n, rng.Int63(), perSeries...)
	}

	return set
}
