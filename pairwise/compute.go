// SPDX-License-Identifier: MIT
// Package pairwise: the four public entry points and the shared skeleton.

package pairwise

import "math"

// seriesAt fetches the i-th series' samples. The two implementations are
// ragged indexing (variable-length slices) and strided slicing into one
// contiguous flat matrix.
type seriesAt func(i int) []float64

// pairEval computes the distance between two series' samples. Channel
// handling (single vs. interleaved multi-channel) is folded into the
// closure so one skeleton serves all four entry points.
type pairEval func(a, b []float64) (float64, error)

// Ragged computes the compact pairwise distance matrix over a list of
// variable-length single-channel series.
//
// The result holds metric(series[r], series[c]) for every in-block pair
// with c > r, row-major, increasing column order; its length equals
// Block.Length(len(series)). A per-pair metric error stores NaN in that
// slot and computation continues.
//
// Errors: ErrNilMetric, ErrEmptyBlock, ErrBlockOutOfRange, plus context
// cancellation from WithContext.
func Ragged(series [][]float64, metric Metric, opts ...Option) ([]float64, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}

	at := func(i int) []float64 { return series[i] }
	eval := func(a, b []float64) (float64, error) { return metric(a, b) }

	return computePairs(len(series), at, eval, opts)
}

// RaggedND is Ragged for multi-channel series with ndim interleaved
// channels per sample. Each series' length must be a multiple of ndim;
// that is the metric's contract to enforce.
func RaggedND(series [][]float64, ndim int, metric MetricND, opts ...Option) ([]float64, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	if ndim < 1 {
		return nil, ErrBadNDim
	}

	at := func(i int) []float64 { return series[i] }
	eval := func(a, b []float64) (float64, error) { return metric(a, b, ndim) }

	return computePairs(len(series), at, eval, opts)
}

// Matrix computes the compact pairwise distance matrix over rows of one
// contiguous flat matrix: series i is data[i*cols : (i+1)*cols].
// Returns ErrBadShape when len(data) != rows*cols.
func Matrix(data []float64, rows, cols int, metric Metric, opts ...Option) ([]float64, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	if rows < 0 || cols < 1 || len(data) != rows*cols {
		return nil, ErrBadShape
	}

	at := func(i int) []float64 { return data[i*cols : (i+1)*cols] }
	eval := func(a, b []float64) (float64, error) { return metric(a, b) }

	return computePairs(rows, at, eval, opts)
}

// MatrixND is Matrix for multi-channel data: series i is
// data[i*cols*ndim : (i+1)*cols*ndim], channels interleaved per sample.
// Returns ErrBadShape when len(data) != rows*cols*ndim.
func MatrixND(data []float64, rows, cols, ndim int, metric MetricND, opts ...Option) ([]float64, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	if ndim < 1 {
		return nil, ErrBadNDim
	}
	stride := cols * ndim
	if rows < 0 || cols < 1 || len(data) != rows*stride {
		return nil, ErrBadShape
	}

	at := func(i int) []float64 { return data[i*stride : (i+1)*stride] }
	eval := func(a, b []float64) (float64, error) { return metric(a, b, ndim) }

	return computePairs(rows, at, eval, opts)
}

// computePairs is the algorithm skeleton shared by all entry points:
// normalize the block, plan the rows, then fan the rows out to workers.
// Each worker walks its row's column range in increasing order and writes
// into the row's disjoint slice of out, so no synchronization is needed
// beyond the end-of-phase barrier inside runRows.
func computePairs(n int, at seriesAt, eval pairEval, opts []Option) ([]float64, error) {
	o := gatherOptions(opts...)

	blk, err := o.Block.normalize(n)
	if err != nil {
		return nil, err
	}

	colStarts, rowOffsets, total := planRows(blk)
	if total < 0 {
		return nil, ErrTooLarge
	}
	out := make([]float64, total)

	rows := blk.RowEnd - blk.RowBegin
	err = runRows(o.Ctx, o.Workers, o.Schedule, rows, func(i int) {
		r := blk.RowBegin + i
		a := at(r)
		k := rowOffsets[i]
		for c := colStarts[i]; c < blk.ColEnd; c++ {
			v, evalErr := eval(a, at(c))
			if evalErr != nil {
				v = math.NaN() // keep the rest of the matrix
			}
			out[k] = v
			k++
		}
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
