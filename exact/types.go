// SPDX-License-Identifier: MIT

package exact

import (
	"time"

	"github.com/katalvlaran/voyage/market"
)

// Options configures both exact solvers.
type Options struct {
	// Workers bounds the number of first-hop branches searched concurrently.
	// 0 or 1 means a single sequential search.
	Workers int

	// TimeLimit is a soft wall-clock budget; 0 means unlimited. When it expires
	// the best plan found so far is returned with Complete == false.
	TimeLimit time.Duration

	// RecordPlan keeps the realizing route and trades of the incumbent.
	// Disable it when only the optimum is needed.
	RecordPlan bool
}

// DefaultOptions returns a sequential, unlimited search that records plans.
func DefaultOptions() Options {
	return Options{Workers: 1, RecordPlan: true}
}

// Result is the outcome of an exact search.
type Result struct {
	// Capital is the best final capital; at least the starting capital.
	Capital float64

	// Plan realizes Capital (only when Options.RecordPlan is set;
	// otherwise Route alone is kept). The stay-home plan has Route == [0].
	Plan market.Plan

	// Complete is false when the search was cut short by cancellation.
	Complete bool

	// Nodes counts visited search nodes (stops, arrivals and route extensions).
	Nodes int64
}

func validateOptions(opts Options) error {
	if opts.Workers < 0 || opts.TimeLimit < 0 {
		return ErrBadOptions
	}

	return nil
}
