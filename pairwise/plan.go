// SPDX-License-Identifier: MIT
// Package pairwise: per-row traversal plan for the compact matrix.

package pairwise

// planRows precomputes, for every row of an already-normalized block, the
// first column to visit and the row's starting offset into the compact
// output buffer, plus the total number of visited pairs.
//
// Both slices are sized by the block's ROW count (RowEnd−RowBegin), one
// entry per row — never by its column count, which may be smaller than the
// row count and would under-allocate.
//
// Recurrences, for i = 0 .. rows-1 and r = RowBegin + i:
//
//	colStarts[i]  = max(r+1, ColBegin)            // strict upper triangle
//	rowOffsets[0] = 0
//	rowOffsets[i] = rowOffsets[i-1] + visited(i-1) // visited = max(0, ColEnd − colStarts)
//
// rowOffsets is non-decreasing, which is what makes the per-row output
// slices disjoint and the parallel writes race-free without locking.
func planRows(b Block) (colStarts, rowOffsets []int, total int) {
	rows := b.RowEnd - b.RowBegin
	colStarts = make([]int, rows)
	rowOffsets = make([]int, rows)

	offset := 0
	for i := 0; i < rows; i++ {
		r := b.RowBegin + i
		cs := r + 1
		if b.ColBegin > cs {
			cs = b.ColBegin
		}
		colStarts[i] = cs
		rowOffsets[i] = offset
		if cs < b.ColEnd {
			offset += b.ColEnd - cs
		}
	}

	return colStarts, rowOffsets, offset
}
