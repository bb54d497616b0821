// SPDX-License-Identifier: MIT
// Package exact - trade optimizer for a fixed route.
//
// At every non-final stop i the optimizer tries every subset of the current hold
// to sell (include/exclude recursion), then every subset of the port's item
// types to buy (one unit per type) that fits the freed + free capacity and keeps
// capital − spend ≥ K_min, then pays K_min and moves on. The final home stop
// liquidates whatever is left at home sell prices.
//
// State discipline: per-stop scratch buffers (kept/sold/bought/next hold) are
// indexed by route position, so a stop never writes into a buffer that a stop
// higher up the recursion still reads. Sibling branches reuse the same buffers
// via append-then-truncate.

package exact

import (
	"context"
	"math"

	"github.com/katalvlaran/voyage/market"
)

// tradeSearch evaluates trade decisions along one route at a time. The incumbent
// is shared across routes when driven by RouteThenTrade.
type tradeSearch struct {
	items [][]market.Item
	kmin  float64
	m     int

	route []int
	best  *incumbent
	guard *guard

	kept   [][]market.Merchandise
	sold   [][]market.Merchandise
	bought [][]market.Merchandise
	holds  [][]market.Merchandise
	stops  []market.Stop
}

// newTradeSearch sizes the per-stop buffers for routes of up to depth positions.
func newTradeSearch(in *market.Instance, best *incumbent, g *guard, depth int) *tradeSearch {
	return &tradeSearch{
		items:  in.Items,
		kmin:   in.KMin,
		m:      in.Kinds(),
		best:   best,
		guard:  g,
		kept:   make([][]market.Merchandise, depth),
		sold:   make([][]market.Merchandise, depth),
		bought: make([][]market.Merchandise, depth),
		holds:  make([][]market.Merchandise, depth+1),
		stops:  make([]market.Stop, depth),
	}
}

// run scores route (closed, starting and ending at home) from capital k0 and
// capacity cmax, offering every terminal value to the incumbent.
func (s *tradeSearch) run(route []int, k0, cmax float64) {
	s.route = route
	s.visit(0, k0, cmax, nil)
}

// visit handles stop i with the given post-departure capital, free room and hold.
func (s *tradeSearch) visit(i int, capital, room float64, hold []market.Merchandise) {
	if s.guard.tick() {
		return
	}
	if !(capital >= 0) { // also rejects NaN
		return
	}

	port := s.route[i]
	if i == len(s.route)-1 {
		value := capital
		for _, m := range hold {
			value += s.items[port][m.Kind].Sell
		}
		if s.best.improves(value) {
			s.stops[i] = market.Stop{Port: port, Sold: hold, Capital: value}
			s.best.accept(value, s.route, s.stops[:i+1])
		}

		return
	}

	s.sell(i, capital, room, hold, 0, s.kept[i][:0], s.sold[i][:0], 0)
}

// sell decides hold[j:] one item at a time: sell it here, or keep it.
func (s *tradeSearch) sell(i int, capital, room float64, hold []market.Merchandise, j int,
	kept, sold []market.Merchandise, revenue float64) {
	if j == len(hold) {
		budget := capital + revenue - s.kmin
		s.buy(i, budget, room, kept, sold, s.bought[i][:0], 0)

		return
	}

	m := hold[j]
	port := s.route[i]
	s.sell(i, capital, room+m.Weight, hold, j+1, kept, append(sold, m), revenue+s.items[port][m.Kind].Sell)
	s.sell(i, capital, room, hold, j+1, append(kept, m), sold, revenue)
}

// buy decides item types k.. at the current port. budget is what may still be
// spent without dropping under the reserve; it becomes the post-departure capital.
func (s *tradeSearch) buy(i int, budget, room float64, kept, sold, bought []market.Merchandise, k int) {
	port := s.route[i]
	if k == s.m {
		next := append(s.holds[i+1][:0], kept...)
		next = append(next, bought...)
		s.holds[i+1] = next
		s.stops[i] = market.Stop{Port: port, Sold: sold, Bought: bought, Capital: budget}
		s.visit(i+1, budget, room, next)

		return
	}

	it := s.items[port][k]
	if room-it.Weight >= 0 && budget-it.Buy >= 0 {
		s.buy(i, budget-it.Buy, room-it.Weight, kept, sold, append(bought, market.Unit(port, k, it)), k+1)
	}
	s.buy(i, budget, room, kept, sold, bought, k+1)
}

// ProfitByRoute returns the maximum final capital achievable along a fixed
// closed route (route[0] == route[len-1] == home) together with its plan, or
// −Inf and an empty plan when no trade sequence keeps capital non-negative.
//
// The route itself is not checked against the time budget; the caller owns that.
// A route of length < 2 is the stay-home plan and returns K0.
func ProfitByRoute(in *market.Instance, route []int) (float64, market.Plan) {
	if len(route) < 2 {
		return in.K0, market.StayHome(in.K0)
	}

	best := newIncumbent(math.Inf(-1), true)
	ts := newTradeSearch(in, best, &guard{ctx: context.Background()}, len(route))
	ts.run(append([]int(nil), route...), in.K0, in.CMax)
	if !best.found {
		return math.Inf(-1), market.Plan{}
	}

	return best.value, best.plan
}
