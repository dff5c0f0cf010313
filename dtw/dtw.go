package dtw

import "math"

// Distance computes the DTW distance between single-channel sequences a
// and b using a rolling two-row DP (O(len(b)) memory, no path).
//
// Pointwise costs are squared differences; the returned distance is the
// square root of the cumulative cost, so Distance(a, a) == 0 and plain
// shifts cost what Euclidean intuition suggests.
//
// A +Inf result is not an error: it means the constraints (Window,
// MaxDist, MaxLengthDiff) ruled the pair out.
//
// opts may be nil for DefaultOptions. Returns ErrEmptyInput when either
// sequence is empty and ErrBadOptions for nonsensical option values.
func Distance(a, b []float64, opts *Options) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyInput
	}
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}

	cost := func(i, j int) float64 {
		d := a[i] - b[j]

		return d * d
	}

	return rollingDistance(len(a), len(b), cost, o), nil
}

// DistanceND computes the DTW distance between multi-channel sequences
// whose ndim channels are interleaved: sample i of a occupies
// a[i*ndim : (i+1)*ndim]. The pointwise cost is the squared Euclidean
// distance between the two ndim-vectors.
//
// Returns ErrBadNDim when ndim < 1 or either length is not a multiple of
// ndim; otherwise the same contract as Distance.
func DistanceND(a, b []float64, ndim int, opts *Options) (float64, error) {
	if ndim < 1 || len(a)%ndim != 0 || len(b)%ndim != 0 {
		return 0, ErrBadNDim
	}
	n, m := len(a)/ndim, len(b)/ndim
	if n == 0 || m == 0 {
		return 0, ErrEmptyInput
	}
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}

	cost := func(i, j int) float64 {
		var s float64
		for d := 0; d < ndim; d++ {
			diff := a[i*ndim+d] - b[j*ndim+d]
			s += diff * diff
		}

		return s
	}

	return rollingDistance(n, m, cost, o), nil
}

// MetricWith binds opts into a closure assignable to pairwise.Metric,
// passing the same options bundle unmodified to every pair.
func MetricWith(opts Options) func(a, b []float64) (float64, error) {
	return func(a, b []float64) (float64, error) {
		return Distance(a, b, &opts)
	}
}

// MetricNDWith binds opts into a closure assignable to pairwise.MetricND.
func MetricNDWith(opts Options) func(a, b []float64, ndim int) (float64, error) {
	return func(a, b []float64, ndim int) (float64, error) {
		return DistanceND(a, b, ndim, &opts)
	}
}

// resolve validates opts and substitutes defaults for nil.
func resolve(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	if o.Window < 0 || o.MaxDist < 0 || o.MaxLengthDiff < 0 ||
		o.Penalty < 0 || math.IsNaN(o.Penalty) || math.IsInf(o.Penalty, 0) {
		return Options{}, ErrBadOptions
	}

	return o, nil
}

// rollingDistance runs the banded two-row DP over an n×m cost grid and
// returns the final distance (sqrt of the cumulative squared cost), or
// +Inf when the constraints make alignment impossible.
func rollingDistance(n, m int, cost func(i, j int) float64, o Options) float64 {
	inf := math.Inf(1)

	if o.MaxLengthDiff > 0 && absInt(n-m) > o.MaxLengthDiff {
		return inf
	}
	w := o.Window
	if w <= 0 {
		w = n + m // unconstrained
	}
	if absInt(n-m) > w {
		return inf // the final cell lies outside the band
	}

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	// MaxDist is compared against cumulative squared costs, so square it
	// once here.
	md2 := o.MaxDist * o.MaxDist

	for i := 1; i <= n; i++ {
		curr[0] = inf
		jlo := i - w
		if jlo < 1 {
			jlo = 1
		}
		jhi := i + w
		if jhi > m {
			jhi = m
		}
		for j := 1; j < jlo; j++ {
			curr[j] = inf
		}

		rowMin := inf
		for j := jlo; j <= jhi; j++ {
			best := prev[j-1] // diagonal match, no penalty
			if v := prev[j] + o.Penalty; v < best {
				best = v
			}
			if v := curr[j-1] + o.Penalty; v < best {
				best = v
			}
			curr[j] = cost(i-1, j-1) + best
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		for j := jhi + 1; j <= m; j++ {
			curr[j] = inf
		}

		if o.MaxDist > 0 && rowMin > md2 {
			return inf // every continuation already exceeds MaxDist
		}
		prev, curr = curr, prev
	}

	d2 := prev[m]
	if math.IsInf(d2, 1) {
		return inf
	}

	return math.Sqrt(d2)
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
