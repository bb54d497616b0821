// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")

	// ErrMismatch indicates solvers that disagree on an instance.
	ErrMismatch = errors.New("solver: solvers disagree")

	// ErrIncomplete indicates a cross-check whose exact searches were cut short.
	ErrIncomplete = errors.New("solver: exact search did not complete")

	// ErrBadTolerance indicates a tolerance that is not positive and finite.
	ErrBadTolerance = errors.New("solver: invalid tolerance")
)
