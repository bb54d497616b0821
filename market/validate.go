// SPDX-License-Identifier: MIT

package market

import (
	"fmt"
	"math"

	"github.com/katalvlaran/voyage/matrix"
)

// Validate checks an instance once, at the boundary. Solvers assume a valid
// instance and do not re-check.
//
// Order: nil → ports → travel table (matrix.ValidateDistance) → item tables → budgets.
// Errors are market or matrix sentinels wrapped with context; match with errors.Is.
//
// Complexity: O(n³) for the triangle check, O(n·m) for the item scan.
func Validate(in *Instance) error {
	if in == nil {
		return ErrNilInstance
	}
	n := in.Ports()
	if n == 0 {
		return ErrNoPorts
	}

	dist, err := matrix.NewDenseFrom(in.Dist)
	if err != nil {
		return fmt.Errorf("market: distance table: %w", err)
	}
	if err = matrix.ValidateDistance(dist, matrix.DefaultTol); err != nil {
		return fmt.Errorf("market: distance table: %w", err)
	}

	if len(in.Items) != n {
		return ErrPortCount
	}
	m := len(in.Items[Home])

	var (
		p, k int
		it   Item
	)
	for p = 0; p < n; p++ {
		if len(in.Items[p]) != m {
			return fmt.Errorf("port %d: %w", p, ErrRaggedItems)
		}
		for k = 0; k < m; k++ {
			it = in.Items[p][k]
			if math.IsNaN(it.Weight) || math.IsNaN(it.Buy) || math.IsNaN(it.Sell) {
				return fmt.Errorf("port %d item %d: %w", p, k, ErrNaNItem)
			}
			if it.Weight < 0 {
				return fmt.Errorf("port %d item %d: %w", p, k, ErrNegativeWeight)
			}
		}
	}

	for _, v := range []float64{in.TMax, in.CMax, in.K0, in.KMin} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrBadBudget
		}
	}

	return nil
}
