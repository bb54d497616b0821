// SPDX-License-Identifier: MIT

package heuristic

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/voyage/internal/rng"
	"github.com/katalvlaran/voyage/market"
)

// ctxMask sets how often the context is polled (every 64 iterations).
const ctxMask = 63

// Anneal runs simulated annealing from the greedy construction and returns the
// best plan seen. The instance is assumed valid (market.Validate).
//
// A cancelled context stops the run early; the best plan so far is returned
// with Result.Complete == false.
func Anneal(ctx context.Context, in *market.Instance, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, fmt.Errorf("Anneal: %w", err)
	}

	var (
		oracle = market.NewOracle(in)
		r      = rng.New(opts.Seed)
		cur    = greedy(in, oracle)
		best   = cur
		temp   = opts.InitialTemp
		res    = Result{Complete: true}
	)
	for it := 1; it <= opts.Iterations; it++ {
		if it&ctxMask == 0 && ctx.Err() != nil {
			res.Complete = false
			break
		}
		res.Iterations++

		if next, ok := neighbor(r, cur.interior, in.Ports()); ok {
			if cand, feasible := evaluate(in, oracle, next); feasible {
				delta := cand.value - cur.value
				if delta > 0 || r.Float64() < math.Exp(delta/temp) {
					cur = cand
					res.Accepted++
					if cur.value > best.value {
						best = cur
					}
				}
			}
		}

		temp *= opts.Cooling
		if opts.ReheatEvery > 0 && it%opts.ReheatEvery == 0 && temp < opts.ReheatBelow {
			temp = opts.ReheatTo
		}
	}

	res.Capital, res.Plan = in.K0, market.StayHome(in.K0)
	if best.value > in.K0 {
		res.Capital, res.Plan = best.value, best.plan
	}

	return res, nil
}
