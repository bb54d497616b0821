// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/voyage/market"
	"github.com/sirupsen/logrus"
)

// Report holds the values CrossCheck compared.
type Report struct {
	ID             string  `json:"id" yaml:"id"`
	RouteThenTrade float64 `json:"route_then_trade" yaml:"route_then_trade"`
	Interleaved    float64 `json:"interleaved" yaml:"interleaved"`
	Heuristic      float64 `json:"heuristic" yaml:"heuristic"`

	// Agree: the exact optima differ by at most the tolerance.
	Agree bool `json:"agree" yaml:"agree"`

	// Bounded: the heuristic does not exceed the exact optimum.
	Bounded bool `json:"bounded" yaml:"bounded"`
}

// OK reports whether every check passed.
func (r Report) OK() bool { return r.Agree && r.Bounded }

// check fills the verdict fields and returns ErrMismatch when one fails.
func (r *Report) check(tol float64) error {
	r.Agree = math.Abs(r.RouteThenTrade-r.Interleaved) <= tol
	r.Bounded = r.Heuristic <= math.Max(r.RouteThenTrade, r.Interleaved)+tol
	if !r.OK() {
		return fmt.Errorf("%w: route-then-trade=%.2f interleaved=%.2f heuristic=%.2f",
			ErrMismatch, r.RouteThenTrade, r.Interleaved, r.Heuristic)
	}

	return nil
}

// CrossCheck solves in with both exact formulations and the annealer and
// compares the results. opts.Algorithm is ignored.
//
// The Report is returned alongside ErrMismatch so callers can print it.
// ErrIncomplete means an exact search was cancelled and nothing was compared.
func CrossCheck(ctx context.Context, in *market.Instance, opts Options) (Report, error) {
	tol := opts.Tolerance
	if !(tol > 0) || math.IsInf(tol, 1) {
		return Report{}, ErrBadTolerance
	}

	rep := Report{}
	if in != nil {
		rep.ID = in.ID
	}
	for _, step := range []struct {
		algo Algorithm
		dst  *float64
	}{
		{RouteThenTrade, &rep.RouteThenTrade},
		{Interleaved, &rep.Interleaved},
		{Annealing, &rep.Heuristic},
	} {
		o := opts
		o.Algorithm = step.algo
		res, err := Solve(ctx, in, o)
		if err != nil {
			return Report{}, err
		}
		if step.algo.Exact() && !res.Complete {
			return Report{}, fmt.Errorf("%w: %v", ErrIncomplete, step.algo)
		}
		*step.dst = res.Capital
	}

	err := rep.check(tol)
	entry := opts.logger().WithFields(logrus.Fields{
		"component":        "crosscheck",
		"instance":         rep.ID,
		"route_then_trade": rep.RouteThenTrade,
		"interleaved":      rep.Interleaved,
		"heuristic":        rep.Heuristic,
	})
	if err != nil {
		entry.WithError(err).Error("cross-check failed")
	} else {
		entry.Info("cross-check passed")
	}

	return rep, err
}
