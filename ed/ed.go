package ed

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("ed: input sequences must be non-empty")

	// ErrLengthMismatch indicates the two sequences differ in sample count.
	ErrLengthMismatch = errors.New("ed: sequences must have equal length")

	// ErrBadNDim indicates a channel count below one, or a sequence whose
	// length is not a multiple of the channel count.
	ErrBadNDim = errors.New("ed: sequence length not a multiple of ndim")
)

// Distance returns the Euclidean distance between equal-length
// single-channel sequences a and b.
func Distance(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyInput
	}
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return math.Sqrt(s), nil
}

// DistanceND returns the Euclidean distance between equal-length
// multi-channel sequences with ndim interleaved channels. Channel layout
// matches dtw.DistanceND: sample i occupies a[i*ndim : (i+1)*ndim].
// The result equals Distance over the flat slices; the channel count only
// changes what counts as one sample for the length check.
func DistanceND(a, b []float64, ndim int) (float64, error) {
	if ndim < 1 || len(a)%ndim != 0 || len(b)%ndim != 0 {
		return 0, ErrBadNDim
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyInput
	}
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	return Distance(a, b)
}

// Metric is Distance in the shape pairwise.Metric expects.
func Metric(a, b []float64) (float64, error) {
	return Distance(a, b)
}

// MetricND is DistanceND in the shape pairwise.MetricND expects.
func MetricND(a, b []float64, ndim int) (float64, error) {
	return DistanceND(a, b, ndim)
}
