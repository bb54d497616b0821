// SPDX-License-Identifier: MIT

package matrix

// Matrix is the minimal surface shared by all matrix implementations.
//
// Implementations must return ErrOutOfRange (never panic) for indices
// outside [0,Rows)×[0,Cols).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (i,j).
	At(i, j int) (float64, error)
	// Set writes v at (i,j).
	Set(i, j int, v float64) error
}
