// SPDX-License-Identifier: MIT

// Package matrix provides the dense square matrices used as travel-time
// tables by the voyage solvers.
//
// It is intentionally small:
//
//   - Matrix: the read/write surface every solver consumes (Rows, Cols, At, Set).
//   - Dense: a row-major implementation with bounds-checked accessors.
//   - Validators: square, symmetric, zero-diagonal, non-negative and metric
//     (triangle inequality) checks, each returning a package sentinel.
//   - FloydWarshall: in-place all-pairs shortest paths, used to turn an
//     arbitrary symmetric table into a metric one.
//
// Policy:
//   - No panics on user input; every failure is one of the sentinels in errors.go,
//     wrapped with the failing operation name and matched with errors.Is.
//   - Fixed loop orders everywhere, so results are bit-for-bit reproducible.
//   - +Inf off the diagonal means "no direct connection" for FloydWarshall.
package matrix
