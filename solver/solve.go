// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/voyage/exact"
	"github.com/katalvlaran/voyage/heuristic"
	"github.com/katalvlaran/voyage/market"
	"github.com/sirupsen/logrus"
)

// Solve validates in and runs opts.Algorithm on it.
//
// Errors: wrapped market/matrix validation sentinels, ErrUnsupportedAlgorithm,
// exact.ErrBadOptions or heuristic.ErrBadOptions. A cancelled context is not an
// error; the best result so far comes back with Complete == false.
func Solve(ctx context.Context, in *market.Instance, opts Options) (Result, error) {
	if err := market.Validate(in); err != nil {
		return Result{}, fmt.Errorf("solver: %w", err)
	}

	log := opts.logger().WithFields(logrus.Fields{
		"component": "solver",
		"algorithm": opts.Algorithm.String(),
		"instance":  in.ID,
		"ports":     in.Ports(),
		"kinds":     in.Kinds(),
	})
	log.Debug("solve started")

	start := time.Now()
	res, err := dispatch(ctx, in, opts)
	if err != nil {
		log.WithError(err).Error("solve failed")

		return Result{}, err
	}
	res.Elapsed = time.Since(start)

	entry := log.WithFields(logrus.Fields{
		"capital":     res.Capital,
		"route":       res.Plan.Route,
		"stayed_home": res.StayedHome,
		"nodes":       res.Nodes,
		"duration_ms": float64(res.Elapsed.Nanoseconds()) / 1e6,
	})
	if !res.Complete {
		entry.Warn("solve cut short; returning best plan found")
	} else {
		entry.Info("solve finished")
	}

	return res, nil
}

func dispatch(ctx context.Context, in *market.Instance, opts Options) (Result, error) {
	res := Result{Algo: opts.Algorithm}

	switch opts.Algorithm {
	case RouteThenTrade, Interleaved:
		run := exact.RouteThenTrade
		if opts.Algorithm == Interleaved {
			run = exact.Interleaved
		}
		r, err := run(ctx, in, opts.Exact)
		if err != nil {
			return Result{}, fmt.Errorf("solver: %w", err)
		}
		res.Capital, res.Plan, res.Complete, res.Nodes = r.Capital, r.Plan, r.Complete, r.Nodes
	case Annealing:
		r, err := heuristic.Anneal(ctx, in, opts.Heuristic)
		if err != nil {
			return Result{}, fmt.Errorf("solver: %w", err)
		}
		res.Capital, res.Plan, res.Complete = r.Capital, r.Plan, r.Complete
	case Greedy:
		r := heuristic.Greedy(in)
		res.Capital, res.Plan, res.Complete = r.Capital, r.Plan, r.Complete
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, opts.Algorithm)
	}
	res.StayedHome = !res.Plan.IsTrip()

	return res, nil
}
