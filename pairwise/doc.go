// Package pairwise computes compact pairwise distance matrices over
// collections of time series, in parallel, with any plug-in metric.
//
// 🚀 What is a compact distance matrix?
//
//	For N series and a symmetric metric d (d(x,x)=0), only the strict
//	upper triangle of the N×N matrix carries information.  pairwise
//	stores exactly those pairs — row-major, increasing column order —
//	in one flat []float64.  It's the layout used by:
//	  • Hierarchical & density-based clustering (linkage, HDBSCAN)
//	  • Time-series similarity search & nearest-neighbor retrieval
//	  • Large-scale DTW studies partitioned across machines
//
// ✨ Key features:
//   - four input shapes: ragged [][]float64 or contiguous flat matrix,
//     each in single-channel and interleaved multi-channel form
//   - Block restriction: compute any rectangular sub-region of the pair
//     grid for partitioned or resumable runs
//   - guided parallel scheduling tuned to the triangular workload
//     (early rows are long, late rows are short)
//   - metric-agnostic: any func(a, b []float64) (float64, error) works
//   - deterministic: identical output for any worker count or schedule
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/tsdist/dtw"
//	  "github.com/katalvlaran/tsdist/pairwise"
//	)
//
//	series := [][]float64{s0, s1, s2, s3}
//	dists, err := pairwise.Ragged(series, dtw.MetricWith(dtw.DefaultOptions()))
//	// dists holds d(0,1), d(0,2), d(0,3), d(1,2), d(1,3), d(2,3)
//
// Block semantics:
//
//	Block{RowBegin: 1, RowEnd: 3} limits work to rows 1 and 2; a zero
//	RowEnd/ColEnd means "through the last series".  Pairs below or on
//	the diagonal are never computed nor stored.
//
// Performance:
//
//   - Time:   O(Σ visited pairs × metric cost), spread over workers
//   - Memory: O(result) plus two O(rows) planning slices
//
// See example_test.go for runnable examples.
package pairwise
