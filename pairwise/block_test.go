package pairwise_test

import (
	"testing"

	"github.com/katalvlaran/tsdist/pairwise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlock_ZeroValueDefaultsToFull verifies that Block{} over N = 5
// normalizes to the full (0,5,0,5) region.
func TestBlock_ZeroValueDefaultsToFull(t *testing.T) {
	nb, err := pairwise.Block{}.NormalizeForTest(5)
	require.NoError(t, err)
	assert.Equal(t, pairwise.Block{RowBegin: 0, RowEnd: 5, ColBegin: 0, ColEnd: 5}, nb)
}

// TestBlock_EmptyAfterDefaulting verifies that a degenerate block is a
// distinct ErrEmptyBlock error, not a silent zero-length result.
func TestBlock_EmptyAfterDefaulting(t *testing.T) {
	// row_end < row_begin, no defaulting involved
	_, err := pairwise.Block{RowBegin: 3, RowEnd: 2}.Length(5)
	assert.ErrorIs(t, err, pairwise.ErrEmptyBlock, "RowEnd < RowBegin must be ErrEmptyBlock")

	// col range degenerate
	_, err = pairwise.Block{ColBegin: 4, ColEnd: 4}.Length(5)
	assert.ErrorIs(t, err, pairwise.ErrEmptyBlock, "ColEnd == ColBegin (non-zero begin) must be ErrEmptyBlock")
}

// TestBlock_OutOfRange covers negative bounds and ends past the series count.
func TestBlock_OutOfRange(t *testing.T) {
	_, err := pairwise.Block{RowBegin: -1}.Length(5)
	assert.ErrorIs(t, err, pairwise.ErrBlockOutOfRange, "negative bound")

	_, err = pairwise.Block{RowEnd: 6}.Length(5)
	assert.ErrorIs(t, err, pairwise.ErrBlockOutOfRange, "RowEnd beyond N")

	_, err = pairwise.Block{ColEnd: 9}.Length(5)
	assert.ErrorIs(t, err, pairwise.ErrBlockOutOfRange, "ColEnd beyond N")
}

// TestBlock_LengthScenarios pins the documented length scenarios.
func TestBlock_LengthScenarios(t *testing.T) {
	// Full triangular matrix for N = 4: 3 + 2 + 1 = 6.
	n, err := pairwise.Block{}.Length(4)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	// Rows 1..2 over N = 4: row 1 visits {2,3}, row 2 visits {3}.
	n, err = pairwise.Block{RowBegin: 1, RowEnd: 3, ColBegin: 0, ColEnd: 4}.Length(4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Full triangle for N = 5: 4 + 3 + 2 + 1 = 10.
	n, err = pairwise.Block{}.Length(5)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

// TestBlock_LengthMatchesBruteForce sweeps every valid sub-block of a small
// grid and compares Length against direct pair counting.
func TestBlock_LengthMatchesBruteForce(t *testing.T) {
	const n = 7
	for rb := 0; rb < n; rb++ {
		for re := rb + 1; re <= n; re++ {
			for cb := 0; cb < n; cb++ {
				for ce := cb + 1; ce <= n; ce++ {
					blk := pairwise.Block{RowBegin: rb, RowEnd: re, ColBegin: cb, ColEnd: ce}

					want := 0
					for r := rb; r < re; r++ {
						for c := cb; c < ce; c++ {
							if c > r {
								want++
							}
						}
					}

					got, err := blk.Length(n)
					require.NoError(t, err, "block %+v", blk)
					assert.Equal(t, want, got, "block %+v", blk)
				}
			}
		}
	}
}

// TestBlock_SingleSeriesIsValidEmpty verifies that one series with the full
// block is a legitimate zero-length result, not an error.
func TestBlock_SingleSeriesIsValidEmpty(t *testing.T) {
	n, err := pairwise.Block{}.Length(1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
