// SPDX-License-Identifier: MIT

package heuristic

import (
	"math"
	"sort"

	"github.com/katalvlaran/voyage/market"
)

// trader is the mutable state of one greedy walk. Its arithmetic follows the
// exact trade optimizer step for step (revenue summed in hold order, purchases
// charged in item-type order), so a plan feasible here is feasible there.
type trader struct {
	items   [][]market.Item
	capital float64
	room    float64
	hold    []market.Merchandise
}

// sell unloads every unit worth more here than it cost, except at its port of purchase.
func (t *trader) sell(port int) (sold []market.Merchandise, revenue float64) {
	kept := make([]market.Merchandise, 0, len(t.hold))
	for _, m := range t.hold {
		price := t.items[port][m.Kind].Sell
		if m.Port != port && price > m.Price {
			sold = append(sold, m)
			revenue += price
			t.room += m.Weight
			continue
		}
		kept = append(kept, m)
	}
	t.hold = kept

	return sold, revenue
}

// fits charges the chosen types of port in type order against budget and room.
func (t *trader) fits(port int, chosen []bool, budget float64) bool {
	room := t.room
	for k, take := range chosen {
		if !take {
			continue
		}
		it := t.items[port][k]
		if !(room-it.Weight >= 0 && budget-it.Buy >= 0) {
			return false
		}
		room -= it.Weight
		budget -= it.Buy
	}

	return true
}

// buy loads the types of port that sell at a profit at next, best profit per
// unit of weight first, while capacity and budget (capital above the reserve)
// allow. It returns the purchases in type order and the budget left.
func (t *trader) buy(port, next int, budget float64) ([]market.Merchandise, float64) {
	type offer struct {
		kind  int
		ratio float64
	}
	var offers []offer
	for k, it := range t.items[port] {
		profit := t.items[next][k].Sell - it.Buy
		if !it.Available() || !(profit > 0) {
			continue
		}
		offers = append(offers, offer{kind: k, ratio: profit / it.Weight})
	}
	if len(offers) == 0 {
		return nil, budget
	}
	sort.SliceStable(offers, func(i, j int) bool { return offers[i].ratio > offers[j].ratio })

	chosen := make([]bool, len(t.items[port]))
	for _, o := range offers {
		chosen[o.kind] = true
		if !t.fits(port, chosen, budget) {
			chosen[o.kind] = false
		}
	}

	var bought []market.Merchandise
	for k, take := range chosen {
		if !take {
			continue
		}
		it := t.items[port][k]
		bought = append(bought, market.Unit(port, k, it))
		budget -= it.Buy
		t.room -= it.Weight
	}
	t.hold = append(t.hold, bought...)

	return bought, budget
}

// liquidate sells the whole hold at home.
func (t *trader) liquidate() float64 {
	value := t.capital
	for _, m := range t.hold {
		value += t.items[market.Home][m.Kind].Sell
	}

	return value
}

// Simulate walks route (closed at home) with the greedy trade rules and returns
// the final capital and the realized plan. ok is false when the route is not a
// time-feasible simple cycle or capital runs short of the reserve on the way.
// A route of length 1 is the stay-home plan.
func Simulate(in *market.Instance, route []int) (value float64, plan market.Plan, ok bool) {
	return simulate(in, market.NewOracle(in), route)
}

func simulate(in *market.Instance, oracle market.Oracle, route []int) (float64, market.Plan, bool) {
	if len(route) == 1 && route[0] == market.Home {
		return in.K0, market.StayHome(in.K0), true
	}
	if !feasibleRoute(in, oracle, route) {
		return math.Inf(-1), market.Plan{}, false
	}

	t := trader{items: in.Items, capital: in.K0, room: in.CMax}
	last := len(route) - 1
	stops := make([]market.Stop, 0, len(route))

	var i int
	for i = 0; i < last; i++ {
		port := route[i]
		sold, revenue := t.sell(port)
		bought, left := t.buy(port, route[i+1], t.capital+revenue-in.KMin)
		if !(left >= 0) { // also rejects NaN
			return math.Inf(-1), market.Plan{}, false
		}
		t.capital = left
		stops = append(stops, market.Stop{Port: port, Sold: sold, Bought: bought, Capital: t.capital})
	}

	value := t.liquidate()
	if !(value >= 0) {
		return math.Inf(-1), market.Plan{}, false
	}
	stops = append(stops, market.Stop{Port: market.Home, Sold: t.hold, Capital: value})

	return value, market.Plan{Route: append([]int(nil), route...), Stops: stops, Capital: value}, true
}

// feasibleRoute checks shape, simplicity and the time rule on every prefix.
func feasibleRoute(in *market.Instance, oracle market.Oracle, route []int) bool {
	n, last := in.Ports(), len(route)-1
	if last < 1 || route[0] != market.Home || route[last] != market.Home {
		return false
	}

	seen := make([]bool, n)
	remaining := in.TMax
	for i := 1; i <= last; i++ {
		p, q := route[i-1], route[i]
		if q < 0 || q >= n || q == p || (q != market.Home && seen[q]) || (q == market.Home && i != last) {
			return false
		}
		if !oracle.CanVisit(remaining, p, q) {
			return false
		}
		remaining -= oracle.Time(p, q)
		seen[q] = true
	}

	return true
}
