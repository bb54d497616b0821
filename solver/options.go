// SPDX-License-Identifier: MIT

package solver

import (
	"io"
	"time"

	"github.com/katalvlaran/voyage/exact"
	"github.com/katalvlaran/voyage/heuristic"
	"github.com/katalvlaran/voyage/market"
	"github.com/sirupsen/logrus"
)

// DefaultTolerance is the absolute agreement tolerance of CrossCheck.
const DefaultTolerance = 1e-2

// Options configures Solve and CrossCheck.
type Options struct {
	Algorithm Algorithm
	Exact     exact.Options
	Heuristic heuristic.Options

	// Tolerance bounds |RouteThenTrade − Interleaved| in CrossCheck.
	Tolerance float64

	// Logger receives dispatch and cross-check entries; nil means silent.
	Logger logrus.FieldLogger
}

// DefaultOptions selects RouteThenTrade with each package's defaults.
func DefaultOptions() Options {
	return Options{
		Algorithm: RouteThenTrade,
		Exact:     exact.DefaultOptions(),
		Heuristic: heuristic.DefaultOptions(),
		Tolerance: DefaultTolerance,
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Capital is the final capital; never below the instance's K0.
	Capital float64

	// Plan realizes Capital. With Exact.RecordPlan unset, exact algorithms
	// keep only the route.
	Plan market.Plan

	// Complete is false when cancellation or a time limit cut the run short.
	Complete bool

	// StayedHome is true when no trip beats the starting capital.
	StayedHome bool

	Algo    Algorithm
	Nodes   int64 // exact algorithms only
	Elapsed time.Duration
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
