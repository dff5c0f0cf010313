// Package dtw defines options and errors for Dynamic Time Warping.
package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadOptions indicates a nonsensical option value (negative or
	// non-finite Penalty, negative Window, negative MaxDist).
	ErrBadOptions = errors.New("dtw: invalid options")

	// ErrBadNDim indicates a channel count below one, or a sequence whose
	// length is not a multiple of the channel count.
	ErrBadNDim = errors.New("dtw: sequence length not a multiple of ndim")
)

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window        — Sakoe–Chiba band half-width: only cells with
//     |i−j| ≤ Window are considered. 0 means unconstrained. A window
//     narrower than the length difference makes alignment impossible and
//     yields a +Inf distance.
//   - Penalty       — cost added to compression/expansion (non-diagonal)
//     steps; biases the path toward the diagonal.
//   - MaxDist       — early-abandon threshold: when every cell of a DP row
//     already exceeds it, the computation stops and returns +Inf.
//     0 disables abandoning.
//   - MaxLengthDiff — when |len(a)−len(b)| exceeds it, skip the DP
//     entirely and return +Inf. 0 disables the guard.
//
// The zero value (via DefaultOptions) computes the unconstrained exact
// distance. Options are passed through unmodified to every pair when used
// with MetricWith/MetricNDWith, and the functions reading them never
// mutate shared state, so one Options value is safe to share across
// concurrent workers.
type Options struct {
	Window        int
	Penalty       float64
	MaxDist       float64
	MaxLengthDiff int
}

// DefaultOptions returns the documented defaults: no window, no penalty,
// no abandoning, no length guard.
func DefaultOptions() Options {
	return Options{}
}

// Coord is one cell of a warping path: sample I of the first sequence
// aligned with sample J of the second.
type Coord struct {
	I int
	J int
}
