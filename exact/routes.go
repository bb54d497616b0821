// SPDX-License-Identifier: MIT
// Package exact - route-then-trade driver.
//
// The driver enumerates simple cycles depth-first. From port p with remaining
// budget r it extends to every unvisited q with r ≥ t(p,q) + t(q,home); every
// such prefix, closed by the direct return home, is a terminal route handed to
// the trade optimizer. Visited ports are never revisited; a port failing the
// bound is skipped immediately.

package exact

import (
	"context"
	"fmt"

	"github.com/katalvlaran/voyage/market"
)

// routeSearch owns the mutable route prefix of one (sequential) search.
type routeSearch struct {
	in      *market.Instance
	oracle  market.Oracle
	visited []bool
	route   []int
	trade   *tradeSearch
	guard   *guard
}

// extend tries every legal next port after p.
func (r *routeSearch) extend(p int, remaining float64) {
	var q int
	for q = 1; q < r.in.Ports(); q++ {
		if r.visited[q] || !r.oracle.CanVisit(remaining, p, q) {
			continue
		}
		r.step(p, q, remaining)
		if r.guard.stopped {
			return
		}
	}
}

// step moves p→q, scores the closed route, then extends from q.
func (r *routeSearch) step(p, q int, remaining float64) {
	if r.guard.tick() {
		return
	}
	left := remaining - r.oracle.Time(p, q)

	r.visited[q] = true
	r.route = append(r.route, q)
	if r.oracle.CanVisit(left, q, market.Home) {
		closed := append(r.route, market.Home)
		r.trade.run(closed, r.in.K0, r.in.CMax)
	}
	r.extend(q, left)
	r.route = r.route[:len(r.route)-1]
	r.visited[q] = false
}

// RouteThenTrade solves the instance by enumerating routes and optimizing the
// trades along each with the trade optimizer (see ProfitByRoute).
//
// The instance is assumed valid (market.Validate). The result is never below
// in.K0; when no trip beats staying home, Plan is the stay-home plan.
func RouteThenTrade(ctx context.Context, in *market.Instance, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, fmt.Errorf("RouteThenTrade: %w", err)
	}
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	oracle := market.NewOracle(in)
	branch := func(ctx context.Context, first int) (*incumbent, int64, bool) {
		var (
			g    = &guard{ctx: ctx}
			best = newIncumbent(in.K0, opts.RecordPlan)
			r    = &routeSearch{
				in:      in,
				oracle:  oracle,
				visited: make([]bool, in.Ports()),
				route:   make([]int, 1, in.Ports()+1),
				guard:   g,
			}
		)
		r.route[0] = market.Home
		r.trade = newTradeSearch(in, best, g, in.Ports()+1)
		if first < 0 {
			r.extend(market.Home, in.TMax)
		} else {
			r.step(market.Home, first, in.TMax)
		}

		return best, g.nodes, !g.stopped
	}

	return collect(ctx, in, oracle, opts, branch), nil
}
