// SPDX-License-Identifier: MIT
// Package pairwise: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// pairwise package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered error
// conditions.

package pairwise

import "errors"

var (
	// ErrEmptyBlock is returned when a block degenerates to nothing after
	// zero-sentinel defaulting (RowEnd <= RowBegin or ColEnd <= ColBegin).
	// A legitimately empty result (zero visited pairs inside a non-empty
	// block) is NOT an error; callers can tell the two apart.
	ErrEmptyBlock = errors.New("pairwise: block is empty after defaulting")

	// ErrBlockOutOfRange indicates block bounds that are negative or that
	// exceed the series count after defaulting.
	ErrBlockOutOfRange = errors.New("pairwise: block out of range")

	// ErrTooLarge signals that the compact matrix length overflows int and
	// the output buffer cannot be allocated.
	ErrTooLarge = errors.New("pairwise: compact matrix too large")

	// ErrNilMetric indicates that a nil metric function was supplied.
	ErrNilMetric = errors.New("pairwise: metric is nil")

	// ErrBadShape indicates that a contiguous input's length does not match
	// rows × stride for the declared shape.
	ErrBadShape = errors.New("pairwise: data length does not match shape")

	// ErrBadNDim indicates a channel count below one.
	ErrBadNDim = errors.New("pairwise: ndim must be at least 1")
)
