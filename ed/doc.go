// Package ed computes plain Euclidean distances between equal-length
// time series, single- or multi-channel.
//
// Euclidean distance is the degenerate elastic metric with no warping:
// sample i of one series is compared only with sample i of the other.
// It is cheap, exact, and the usual baseline before reaching for DTW —
// and, being symmetric with d(x,x)=0, it plugs straight into pairwise:
//
//	dists, err := pairwise.Ragged(series, ed.Metric)
//
// Both functions return ErrLengthMismatch when the series lengths (in
// samples) differ; there is no warping to absorb the difference.
package ed
