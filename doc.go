// Package tsdist is your in-memory toolkit for comparing collections of
// time series — elastic distances, pairwise distance matrices, and the
// synthetic signals to exercise them.
//
// 🚀 What is tsdist?
//
//	A modern, thread-safe library that brings together:
//		• Elastic metrics: Dynamic Time Warping (DTW) with windowing,
//		  penalties and early abandoning, plus plain Euclidean distance
//		• Pairwise matrices: compact upper-triangular distance matrices
//		  over N series, computed in parallel with guided scheduling
//		• Block computation: restrict work to any rectangular sub-region
//		  of the N×N pair grid for partitioned or resumable runs
//		• Synthetic signals: deterministic pulse & chirp generators for
//		  tests, demos and benchmarks
//
// ✨ Why choose tsdist?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – race-free parallel writes, in-code docs
//   - Metric-agnostic – plug any distance function into the matrix core
//   - Deterministic – identical output for any worker count or schedule
//
// Under the hood, everything is organized into four subpackages:
//
//	pairwise/ — compact pairwise distance matrices over series collections
//	dtw/      — Dynamic Time Warping distance, single- and multi-channel
//	ed/       — Euclidean distance, single- and multi-channel
//	synth/    — deterministic synthetic series (pulse, chirp, ragged sets)
//
// Quick ASCII example — the compact layout for N = 4 series:
//
//	      c=1 c=2 c=3
//	 r=0 [ 0   1   2 ]
//	 r=1     [ 3   4 ]
//	 r=2         [ 5 ]
//
//	six pairs, one flat buffer, row-major, increasing column order.
//
// Dive into each package's doc.go and example_test.go for the detailed
// contracts and runnable examples.
//
//	go get github.com/katalvlaran/tsdist
package tsdist
