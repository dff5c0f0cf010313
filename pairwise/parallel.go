// SPDX-License-Identifier: MIT
// Package pairwise: load-aware parallel row dispatch.

package pairwise

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// guidedDivisor shapes guided chunks: each claim takes
// remaining / (guidedDivisor × workers) rows, mirroring OpenMP's guided
// schedule. Larger values mean smaller chunks and finer balancing.
const guidedDivisor = 2

// runRows executes body(i) for every row index i in [0, rows), spread over
// workers goroutines under the given schedule. It blocks until every row is
// done (or the context is cancelled between claims) — the single barrier of
// the parallel phase.
//
// Rows may complete in any order; body must only write state owned by its
// row. Cancellation is cooperative and checked between row claims, never
// mid-row: one row is an atomic unit of work.
func runRows(ctx context.Context, workers int, mode ScheduleMode, rows int, body func(i int)) error {
	if rows <= 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}

	// Single worker: plain loop, same cancellation points.
	if workers == 1 {
		for i := 0; i < rows; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			body(i)
		}

		return nil
	}

	var next atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				lo, hi := claimRows(&next, rows, workers, mode)
				if lo >= hi {
					return nil
				}
				for i := lo; i < hi; i++ {
					body(i)
				}
			}
		})
	}

	return g.Wait()
}

// claimRows reserves the next half-open range of rows for one worker.
//
// Guided: CAS loop handing out shrinking chunks of the remaining rows, so
// workers that drew long early rows are not waited on by workers that drew
// short late ones. RoundRobin: one row per claim; neighbor rows cost almost
// the same, so a circular assignment balances too.
func claimRows(next *atomic.Int64, rows, workers int, mode ScheduleMode) (lo, hi int) {
	if mode == RoundRobin {
		i := int(next.Add(1)) - 1
		if i >= rows {
			return rows, rows
		}

		return i, i + 1
	}

	for {
		cur := next.Load()
		remaining := rows - int(cur)
		if remaining <= 0 {
			return rows, rows
		}
		chunk := remaining / (guidedDivisor * workers)
		if chunk < 1 {
			chunk = 1
		}
		if next.CompareAndSwap(cur, cur+int64(chunk)) {
			return int(cur), int(cur) + chunk
		}
	}
}
