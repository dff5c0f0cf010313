package dtw

import "math"

// WarpingPath computes the DTW distance between a and b together with the
// optimal alignment path, using the full (n+1)×(m+1) DP matrix.
//
// The path runs from Coord{0, 0} to Coord{len(a)-1, len(b)-1} in
// non-decreasing I and J. Window and Penalty are honored; MaxDist is
// ignored here because early abandoning would leave nothing to backtrack.
// When the window makes alignment impossible the distance is +Inf and the
// path is nil.
//
// Memory is O(len(a)·len(b)); use Distance when only the value is needed.
func WarpingPath(a, b []float64, opts *Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	o, err := resolve(opts)
	if err != nil {
		return 0, nil, err
	}

	inf := math.Inf(1)
	if o.MaxLengthDiff > 0 && absInt(n-m) > o.MaxLengthDiff {
		return inf, nil, nil
	}
	w := o.Window
	if w <= 0 {
		w = n + m
	}
	if absInt(n-m) > w {
		return inf, nil, nil
	}

	// Full DP matrix, row-major, (n+1)×(m+1), 1-based cells.
	width := m + 1
	dp := make([]float64, (n+1)*width)
	for k := 1; k < len(dp); k++ {
		dp[k] = inf
	}

	for i := 1; i <= n; i++ {
		jlo := i - w
		if jlo < 1 {
			jlo = 1
		}
		jhi := i + w
		if jhi > m {
			jhi = m
		}
		for j := jlo; j <= jhi; j++ {
			best := dp[(i-1)*width+j-1] // diagonal
			if v := dp[(i-1)*width+j] + o.Penalty; v < best {
				best = v
			}
			if v := dp[i*width+j-1] + o.Penalty; v < best {
				best = v
			}
			d := a[i-1] - b[j-1]
			dp[i*width+j] = d*d + best
		}
	}

	d2 := dp[n*width+m]
	if math.IsInf(d2, 1) {
		return inf, nil, nil
	}

	// Backtrack from (n, m) following the predecessor that produced each
	// cell's best, mirroring the forward recurrence.
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag := dp[(i-1)*width+j-1]
		up := dp[(i-1)*width+j] + o.Penalty
		left := dp[i*width+j-1] + o.Penalty
		switch {
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
	}

	// Reverse in place: backtracking built the path end-first.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return math.Sqrt(d2), path, nil
}
