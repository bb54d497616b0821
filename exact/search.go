// SPDX-License-Identifier: MIT
// Package exact - plumbing shared by both formulations: the incumbent,
// the sparse cancellation guard, and the first-hop fan-out.

package exact

import (
	"context"
	"sync"

	"github.com/katalvlaran/voyage/market"
	"golang.org/x/sync/errgroup"
)

// guardMask sets how often the context is polled (every 1024 nodes).
const guardMask = 1023

// guard counts nodes and latches cancellation.
type guard struct {
	ctx     context.Context
	nodes   int64
	stopped bool
}

// tick registers one node and reports whether the search must unwind.
func (g *guard) tick() bool {
	g.nodes++
	if g.stopped {
		return true
	}
	if g.nodes&guardMask == 0 && g.ctx.Err() != nil {
		g.stopped = true
	}

	return g.stopped
}

// incumbent is the best terminal value seen by one search.
type incumbent struct {
	value  float64
	plan   market.Plan
	found  bool
	record bool
}

func newIncumbent(floor float64, record bool) *incumbent {
	return &incumbent{value: floor, record: record}
}

// improves reports whether v strictly beats the incumbent. NaN never does.
func (b *incumbent) improves(v float64) bool {
	return v > b.value
}

// accept stores v together with a snapshot of route and stops.
// stops may alias search scratch buffers; they are deep-copied here.
func (b *incumbent) accept(v float64, route []int, stops []market.Stop) {
	b.value = v
	b.found = true
	if !b.record {
		b.plan = market.Plan{Route: append([]int(nil), route...), Capital: v}

		return
	}
	b.plan = market.Plan{Route: route, Stops: stops, Capital: v}.Clone()
}

// firstHops lists the ports reachable directly from home, ascending.
func firstHops(in *market.Instance, oracle market.Oracle) []int {
	hops := make([]int, 0, in.Ports())
	var q int
	for q = 1; q < in.Ports(); q++ {
		if oracle.CanVisit(in.TMax, market.Home, q) {
			hops = append(hops, q)
		}
	}

	return hops
}

// branchFunc runs one search restricted to the first hop q (q < 0 ⇒ no restriction).
type branchFunc func(ctx context.Context, q int) (*incumbent, int64, bool)

// collect runs branch either once (sequential) or once per first hop on an
// errgroup bounded by workers, and reduces the incumbents.
//
// Reduction: start from the stay-home plan; a branch replaces the current best only
// on a strict improvement, scanning branches by ascending first hop. The optimum is
// independent of scheduling; so is the chosen plan for a given worker setting.
func collect(ctx context.Context, in *market.Instance, oracle market.Oracle, opts Options, branch branchFunc) Result {
	res := Result{Capital: in.K0, Plan: market.StayHome(in.K0), Complete: true}

	if opts.Workers <= 1 {
		best, nodes, done := branch(ctx, -1)
		res.Nodes, res.Complete = nodes, done
		if best.found {
			res.Capital, res.Plan = best.value, best.plan
		}

		return res
	}

	var (
		hops    = firstHops(in, oracle)
		results = make([]*incumbent, len(hops))
		done    = make([]bool, len(hops))
		mu      sync.Mutex
		total   int64
		g, gctx = errgroup.WithContext(ctx)
	)
	g.SetLimit(opts.Workers)
	for i, q := range hops {
		g.Go(func() error {
			best, nodes, ok := branch(gctx, q)
			results[i], done[i] = best, ok
			mu.Lock()
			total += nodes
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait() // branches never fail; cancellation surfaces through done[]

	res.Nodes = total
	for i := range hops {
		if !done[i] {
			res.Complete = false
		}
		if results[i].found && results[i].value > res.Capital {
			res.Capital, res.Plan = results[i].value, results[i].plan
		}
	}

	return res
}
