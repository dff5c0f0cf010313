// SPDX-License-Identifier: MIT
// Package pairwise: test-only exports of private helpers.
// Keeps the public surface clean while letting external tests exercise the
// planner and normalizer directly.

package pairwise

// PlanRowsForTest exposes planRows to the external test package.
var PlanRowsForTest = planRows

// NormalizeForTest exposes Block.normalize to the external test package.
func (b Block) NormalizeForTest(n int) (Block, error) { return b.normalize(n) }

// RunRowsForTest exposes runRows to the external test package.
var RunRowsForTest = runRows
