// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, single- or multi-channel, with optional band
// constraint, step penalty and early abandoning.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative cost.  It's widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - squared pointwise costs with a final square root, so distances
//     compose with Euclidean intuition
//   - rolling two-row DP: O(M) memory for plain distances
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - step penalty to discourage excessive stretching
//   - early abandoning (MaxDist) and length-difference guard, both
//     reported as a +Inf distance rather than an error
//   - interleaved multi-channel series via DistanceND
//   - full warping path on demand via WarpingPath
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tsdist/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10      // Sakoe–Chiba band ±10
//	opts.Penalty = 0.5    // cost added to non-diagonal steps
//
//	dist, err := dtw.Distance(a, b, &opts)
//
// Feeding a pairwise matrix:
//
//	dists, err := pairwise.Ragged(series, dtw.MetricWith(opts))
//
// Performance:
//
//   - Time:   O(N·M), or O(N·w) with a window of half-width w
//   - Memory: O(M) for Distance/DistanceND, O(N·M) for WarpingPath
//
// See examples in example_test.go.
package dtw
