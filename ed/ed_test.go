package ed_test

import (
	"testing"

	"github.com/katalvlaran/tsdist/ed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistance_Basic pins the 3-4-5 triangle.
func TestDistance_Basic(t *testing.T) {
	d, err := ed.Distance([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)
}

// TestDistance_Identical verifies d(x, x) == 0.
func TestDistance_Identical(t *testing.T) {
	a := []float64{1.5, -2, 7}
	d, err := ed.Distance(a, a)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestDistance_Errors covers the empty and mismatched-length contracts.
func TestDistance_Errors(t *testing.T) {
	_, err := ed.Distance(nil, []float64{1})
	assert.ErrorIs(t, err, ed.ErrEmptyInput)

	_, err = ed.Distance([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ed.ErrLengthMismatch)
}

// TestDistanceND_SampleCountCheck verifies the length check counts samples,
// not raw values, and that ndim=1 matches Distance.
func TestDistanceND_SampleCountCheck(t *testing.T) {
	a := []float64{0, 0, 3, 4} // two 2-channel samples
	b := []float64{3, 4, 0, 0}

	d, err := ed.DistanceND(a, b, 2)
	require.NoError(t, err)
	assert.InDelta(t, 7.0710678, d, 1e-6) // sqrt(2 * 25)

	want, err := ed.Distance(a, b)
	require.NoError(t, err)
	got, err := ed.DistanceND(a, b, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestDistanceND_BadNDim covers channel validation.
func TestDistanceND_BadNDim(t *testing.T) {
	_, err := ed.DistanceND([]float64{1, 2}, []float64{1, 2}, 0)
	assert.ErrorIs(t, err, ed.ErrBadNDim)

	_, err = ed.DistanceND([]float64{1, 2, 3}, []float64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, ed.ErrBadNDim)
}
