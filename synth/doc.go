// Package synth emits deterministic synthetic time series — pulses,
// chirps and ragged collections — for tests, demos and benchmarks.
//
// Every generator is strictly deterministic per (length, seed, options):
// the same call always returns the same samples, which makes golden tests
// and cross-variant comparisons trivial.
//
// ✨ Generators:
//   - Pulse  — rectangular or triangular waveform, optional trend & noise
//   - Chirp  — linear frequency sweep (f0 → f1), optional trend & noise
//   - Ragged — a collection of chirps with per-series length and
//     frequency jitter, for exercising ragged pairwise inputs
//
// ⚙️ Usage:
//
//	a := synth.Pulse(128, 1)
//	b := synth.Chirp(128, 2, synth.WithNoise(0.05))
//	set := synth.Ragged(50, 80, 120, 7)
//
// Invalid inputs (n < 1, bad option values) yield nil, never a panic.
package synth
