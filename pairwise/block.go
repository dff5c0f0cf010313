// SPDX-License-Identifier: MIT
// Package pairwise: block defaulting, validation and length accounting.

package pairwise

// normalize applies the zero-sentinel defaults against n series and
// validates the result.
// Returns ErrBlockOutOfRange for negative bounds or ends beyond n, and
// ErrEmptyBlock when the region degenerates after defaulting.
func (b Block) normalize(n int) (Block, error) {
	if b.RowBegin < 0 || b.RowEnd < 0 || b.ColBegin < 0 || b.ColEnd < 0 {
		return Block{}, ErrBlockOutOfRange
	}

	// Zero end sentinels mean "through the last series".
	if b.RowEnd == 0 {
		b.RowEnd = n
	}
	if b.ColEnd == 0 {
		b.ColEnd = n
	}

	if b.RowEnd > n || b.ColEnd > n {
		return Block{}, ErrBlockOutOfRange
	}
	if b.RowEnd <= b.RowBegin || b.ColEnd <= b.ColBegin {
		return Block{}, ErrEmptyBlock
	}

	return b, nil
}

// Length reports the exact number of pairs the block visits over n series:
// the sum over rows r of max(0, ColEnd − max(r+1, ColBegin)).
// This is exactly the length of the buffer the entry points return for the
// same block. Returns ErrEmptyBlock / ErrBlockOutOfRange for invalid blocks
// and ErrTooLarge when the count overflows int.
func (b Block) Length(n int) (int, error) {
	nb, err := b.normalize(n)
	if err != nil {
		return 0, err
	}

	total := 0
	for r := nb.RowBegin; r < nb.RowEnd; r++ {
		cs := r + 1
		if nb.ColBegin > cs {
			cs = nb.ColBegin
		}
		if cs >= nb.ColEnd {
			continue // row entirely at or below the diagonal
		}
		total += nb.ColEnd - cs
		if total < 0 {
			return 0, ErrTooLarge
		}
	}

	return total, nil
}
