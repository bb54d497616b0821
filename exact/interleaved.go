// SPDX-License-Identifier: MIT
// Package exact - interleaved decision tree.
//
// One tree interleaves trading and routing. At each port:
//
//	sell(j)  for the j-th item on board: sell it here, or keep it;
//	buy(k)   for item type k of this port: buy one unit, or skip it;
//	depart   pay the reserve, then travel to every unvisited time-feasible
//	         port, or return home and liquidate.
//
// Compared with RouteThenTrade the route is never fixed in advance: each
// trade prefix is shared by every continuation that follows it. The hold is one
// slice mutated in place (remove/insert on sell, append/truncate on buy) and
// restored on backtrack.

package exact

import (
	"context"
	"fmt"

	"github.com/katalvlaran/voyage/market"
)

// frame locates the trades of one departed stop inside the shared sold/bought stacks.
type frame struct {
	port               int
	soldFrom, soldTo   int
	boughtFrom, boughtTo int
	capital            float64
}

type treeSearch struct {
	in     *market.Instance
	oracle market.Oracle
	items  [][]market.Item
	kmin   float64
	m      int
	first  int // first hop restriction, <0 for any

	visited []bool
	route   []int
	hold    []market.Merchandise
	sold    []market.Merchandise
	bought  []market.Merchandise
	frames  []frame

	soldMark, boughtMark int // start of the current port's segment

	best  *incumbent
	guard *guard
}

// arrive starts the trade phase at port with the given remaining budget.
func (s *treeSearch) arrive(port int, remaining, capital, room float64) {
	if s.guard.tick() {
		return
	}
	prevSold, prevBought := s.soldMark, s.boughtMark
	s.soldMark, s.boughtMark = len(s.sold), len(s.bought)
	s.sell(port, 0, remaining, capital, 0, room)
	s.soldMark, s.boughtMark = prevSold, prevBought
}

// sell decides hold[j] and onwards. Revenue is summed apart from capital so the
// arithmetic matches the route-then-trade optimizer operation for operation.
func (s *treeSearch) sell(port, j int, remaining, capital, revenue, room float64) {
	if j >= len(s.hold) {
		s.buy(port, 0, remaining, capital+revenue-s.kmin, room)

		return
	}

	m := s.hold[j]
	s.removeAt(j)
	s.sold = append(s.sold, m)
	s.sell(port, j, remaining, capital, revenue+s.items[port][m.Kind].Sell, room+m.Weight)
	s.sold = s.sold[:len(s.sold)-1]
	s.insertAt(j, m)

	s.sell(port, j+1, remaining, capital, revenue, room)
}

// buy decides item type k and onwards. budget is the capital left above the reserve.
func (s *treeSearch) buy(port, k int, remaining, budget, room float64) {
	if k == s.m {
		s.depart(port, remaining, budget, room)

		return
	}

	it := s.items[port][k]
	if room-it.Weight >= 0 && budget-it.Buy >= 0 {
		unit := market.Unit(port, k, it)
		s.hold = append(s.hold, unit)
		s.bought = append(s.bought, unit)
		s.buy(port, k+1, remaining, budget-it.Buy, room-it.Weight)
		s.bought = s.bought[:len(s.bought)-1]
		s.hold = s.hold[:len(s.hold)-1]
	}
	s.buy(port, k+1, remaining, budget, room)
}

// depart leaves port with the post-reserve capital; a negative one is infeasible.
func (s *treeSearch) depart(port int, remaining, capital, room float64) {
	if !(capital >= 0) { // also rejects NaN
		return
	}

	s.frames = append(s.frames, frame{
		port:       port,
		soldFrom:   s.soldMark,
		soldTo:     len(s.sold),
		boughtFrom: s.boughtMark,
		boughtTo:   len(s.bought),
		capital:    capital,
	})
	s.travel(port, remaining, capital, room)
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *treeSearch) travel(port int, remaining, capital, room float64) {
	var q int
	for q = 0; q < s.in.Ports(); q++ {
		if q == port || (q != market.Home && s.visited[q]) || !s.oracle.CanVisit(remaining, port, q) {
			continue
		}
		if port == market.Home && s.first >= 0 && q != s.first {
			continue
		}
		if q == market.Home {
			s.finish(capital)
			continue
		}

		s.visited[q] = true
		s.route = append(s.route, q)
		s.arrive(q, remaining-s.oracle.Time(port, q), capital, room)
		s.route = s.route[:len(s.route)-1]
		s.visited[q] = false
		if s.guard.stopped {
			return
		}
	}
}

// finish liquidates the hold at home and offers the terminal value.
func (s *treeSearch) finish(capital float64) {
	value := capital
	for _, m := range s.hold {
		value += s.items[market.Home][m.Kind].Sell
	}
	if !s.best.improves(value) {
		return
	}

	route := append(s.route, market.Home)
	if !s.best.record {
		s.best.accept(value, route, nil)

		return
	}
	stops := make([]market.Stop, 0, len(s.frames)+1)
	for _, f := range s.frames {
		stops = append(stops, market.Stop{
			Port:    f.port,
			Sold:    s.sold[f.soldFrom:f.soldTo],
			Bought:  s.bought[f.boughtFrom:f.boughtTo],
			Capital: f.capital,
		})
	}
	stops = append(stops, market.Stop{Port: market.Home, Sold: s.hold, Capital: value})
	s.best.accept(value, route, stops)
}

func (s *treeSearch) removeAt(j int) {
	copy(s.hold[j:], s.hold[j+1:])
	s.hold = s.hold[:len(s.hold)-1]
}

func (s *treeSearch) insertAt(j int, m market.Merchandise) {
	s.hold = append(s.hold, market.Merchandise{})
	copy(s.hold[j+1:], s.hold[j:])
	s.hold[j] = m
}

// Interleaved solves the instance with the interleaved sell/buy/travel decision
// tree. It returns the same optimum as RouteThenTrade on every instance.
//
// The instance is assumed valid (market.Validate). The result is never below
// in.K0; when no trip beats staying home, Plan is the stay-home plan.
func Interleaved(ctx context.Context, in *market.Instance, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, fmt.Errorf("Interleaved: %w", err)
	}
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	oracle := market.NewOracle(in)
	branch := func(ctx context.Context, first int) (*incumbent, int64, bool) {
		s := &treeSearch{
			in:      in,
			oracle:  oracle,
			items:   in.Items,
			kmin:    in.KMin,
			m:       in.Kinds(),
			first:   first,
			visited: make([]bool, in.Ports()),
			route:   make([]int, 1, in.Ports()+1),
			best:    newIncumbent(in.K0, opts.RecordPlan),
			guard:   &guard{ctx: ctx},
		}
		s.route[0] = market.Home
		s.arrive(market.Home, in.TMax, in.K0, in.CMax)

		return s.best, s.guard.nodes, !s.guard.stopped
	}

	return collect(ctx, in, oracle, opts, branch), nil
}
