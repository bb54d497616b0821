// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for travel-table checks.
//  - Return sentinel errors tagged with the validator name.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Pairwise checks scan the upper triangle only; the triangle check is O(n³).

package matrix

import "math"

// DefaultTol is the structural tolerance used by ValidateDistance.
const DefaultTol = 1e-9

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and n×n with n>0.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() || m.Rows() == 0 {
		return matrixErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric ensures |a_ij − a_ji| ≤ tol for all i<j.
// Equal infinities are accepted (+Inf on both sides means "no edge" both ways).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return matrixErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if aij == aji {
				continue
			}
			if math.Abs(aij-aji) > tol || math.IsNaN(aij-aji) {
				return matrixErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal ensures |a_ii| ≤ tol.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf("ValidateZeroDiagonal", err)
	}

	var (
		i   int
		aii float64
	)
	for i = 0; i < m.Rows(); i++ {
		aii, _ = m.At(i, i)
		if math.IsNaN(aii) || math.Abs(aii) > math.Abs(tol) {
			return matrixErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateNonNegative ensures every entry is ≥ 0 and not NaN.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if math.IsNaN(v) {
				return matrixErrorf("ValidateNonNegative", ErrNaNInf)
			}
			if v < 0 {
				return matrixErrorf("ValidateNonNegative", ErrNegative)
			}
		}
	}

	return nil
}

// ValidateFinite ensures no entry is NaN or ±Inf.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return matrixErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateTriangle ensures a_ij ≤ a_ik + a_kj + tol for every triple.
// Complexity: O(n³).
func ValidateTriangle(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf("ValidateTriangle", err)
	}

	var (
		n             = m.Rows()
		i, j, k       int
		dij, dik, dkj float64
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			dik, _ = m.At(i, k)
			for j = 0; j < n; j++ {
				dij, _ = m.At(i, j)
				dkj, _ = m.At(k, j)
				if dij > dik+dkj+math.Abs(tol) {
					return matrixErrorf("ValidateTriangle", ErrTriangle)
				}
			}
		}
	}

	return nil
}

// ValidateDistance runs the full travel-table policy in a fixed order:
// square → finite → non-negative → zero diagonal → symmetric → triangle.
// The first violation wins.
func ValidateDistance(m Matrix, tol float64) error {
	var err error
	if err = ValidateSquare(m); err != nil {
		return err
	}
	if err = ValidateFinite(m); err != nil {
		return err
	}
	if err = ValidateNonNegative(m); err != nil {
		return err
	}
	if err = ValidateZeroDiagonal(m, tol); err != nil {
		return err
	}
	if err = ValidateSymmetric(m, tol); err != nil {
		return err
	}

	return ValidateTriangle(m, tol)
}
