// Package pairwise defines the metric contracts, block descriptor and
// options for compact pairwise distance matrices.
package pairwise

import "context"

// Metric computes the distance between two single-channel series.
// It must be symmetric, zero on identical inputs, and safe for concurrent
// use: pairwise invokes it from multiple workers with disjoint pairs.
// A non-nil error marks that single pair's slot with NaN; the rest of the
// matrix is still computed.
type Metric func(a, b []float64) (float64, error)

// MetricND computes the distance between two multi-channel series whose
// channels are interleaved (sample i occupies a[i*ndim : (i+1)*ndim]).
// The same symmetry, reentrancy and error rules as Metric apply.
type MetricND func(a, b []float64, ndim int) (float64, error)

// Block selects a rectangular sub-region of the conceptual N×N pair grid,
// as half-open row and column ranges over series indices.
//
// A zero RowEnd or ColEnd is a sentinel meaning "through the last series".
// The zero value Block{} therefore selects the full upper triangle.
// Pairs on or below the diagonal (column ≤ row) are never visited, so the
// effective first column of row r is max(r+1, ColBegin).
type Block struct {
	RowBegin int // first row (series index), inclusive
	RowEnd   int // past-the-last row; 0 means N
	ColBegin int // first column (series index), inclusive
	ColEnd   int // past-the-last column; 0 means N
}

// ScheduleMode selects how rows are handed out to parallel workers.
//
//   - Guided     — workers claim shrinking chunks of remaining rows.
//     Suits the triangular workload: early rows visit many columns, late
//     rows few, so fixed equal partitions leave early finishers idle.
//   - RoundRobin — workers claim one row at a time.  Also balances well
//     because neighboring rows have near-equal cost, at the price of one
//     atomic operation per row.
type ScheduleMode int

const (
	// Guided assigns progressively smaller chunks of rows (default).
	Guided ScheduleMode = iota

	// RoundRobin assigns a single row per claim.
	RoundRobin
)

// Options configures a pairwise matrix computation.
//
// Fields:
//   - Block    — sub-region of the pair grid to compute (zero value = all).
//   - Workers  — parallel workers; 0 or negative means GOMAXPROCS.
//   - Schedule — row hand-out policy (Guided by default).
//   - Ctx      — cancellation context, checked between row claims, never
//     mid-row; a row's evaluation is an atomic unit of work.
type Options struct {
	Block    Block
	Workers  int
	Schedule ScheduleMode
	Ctx      context.Context
}

// DefaultOptions returns the documented defaults: full block, GOMAXPROCS
// workers, guided scheduling, background context.
func DefaultOptions() Options {
	return Options{
		Block:    Block{},
		Workers:  0,
		Schedule: Guided,
		Ctx:      context.Background(),
	}
}

// Option mutates Options. Entry points accept ...Option and resolve them
// against DefaultOptions, last-writer-wins.
type Option func(*Options)

// WithBlock restricts computation to the given sub-region of the pair grid.
func WithBlock(b Block) Option {
	return func(o *Options) { o.Block = b }
}

// WithWorkers sets the number of parallel workers; n <= 0 restores the
// GOMAXPROCS default.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSchedule selects the row hand-out policy.
func WithSchedule(m ScheduleMode) Option {
	return func(o *Options) { o.Schedule = m }
}

// WithContext attaches a cancellation context; nil restores Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			ctx = context.Background()
		}
		o.Ctx = ctx
	}
}

// gatherOptions applies user setters on top of DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
