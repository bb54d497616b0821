// SPDX-License-Identifier: MIT

package heuristic

import (
	"github.com/katalvlaran/voyage/market"
)

// proximityEps keeps the proximity score finite for zero travel times.
const proximityEps = 1e-6

// candidate is one evaluated route; interior excludes both home endpoints.
type candidate struct {
	interior []int
	value    float64
	plan     market.Plan
}

func stayHome(in *market.Instance) candidate {
	return candidate{value: in.K0, plan: market.StayHome(in.K0)}
}

// evaluate closes interior at home and simulates it.
func evaluate(in *market.Instance, oracle market.Oracle, interior []int) (candidate, bool) {
	if len(interior) == 0 {
		return stayHome(in), true
	}
	route := make([]int, 0, len(interior)+2)
	route = append(route, market.Home)
	route = append(route, interior...)
	route = append(route, market.Home)

	value, plan, ok := simulate(in, oracle, route)
	if !ok {
		return candidate{}, false
	}

	return candidate{interior: append([]int(nil), interior...), value: value, plan: plan}, true
}

// density is the share of item types port trades.
func density(in *market.Instance, port int) float64 {
	if in.Kinds() == 0 {
		return 0
	}
	var open int
	for _, it := range in.Items[port] {
		if it.Available() {
			open++
		}
	}

	return float64(open) / float64(in.Kinds())
}

// greedyInterior extends the route from home to the best-scoring time-feasible
// port until none is left.
func greedyInterior(in *market.Instance, oracle market.Oracle) []int {
	var (
		n         = in.Ports()
		visited   = make([]bool, n)
		interior  []int
		port      = market.Home
		remaining = in.TMax
	)
	for {
		next, bestScore := -1, 0.0
		for q := 1; q < n; q++ {
			if visited[q] || q == port || !oracle.CanVisit(remaining, port, q) {
				continue
			}
			score := 1/(oracle.Time(port, q)+proximityEps) + density(in, q)
			if next < 0 || score > bestScore {
				next, bestScore = q, score
			}
		}
		if next < 0 {
			return interior
		}
		remaining -= oracle.Time(port, next)
		visited[next] = true
		interior = append(interior, next)
		port = next
	}
}

// greedy builds the greedy route and drops trailing stops until the walk stays
// above the reserve; the stay-home plan is the fallback.
func greedy(in *market.Instance, oracle market.Oracle) candidate {
	interior := greedyInterior(in, oracle)
	for ; len(interior) > 0; interior = interior[:len(interior)-1] {
		if c, ok := evaluate(in, oracle, interior); ok {
			return c
		}
	}

	return stayHome(in)
}

// Greedy returns the greedy construction alone, without annealing.
// Like Anneal, it never returns less than the starting capital.
func Greedy(in *market.Instance) Result {
	c := greedy(in, market.NewOracle(in))
	res := Result{Capital: in.K0, Plan: market.StayHome(in.K0), Complete: true}
	if c.value > in.K0 {
		res.Capital, res.Plan = c.value, c.plan
	}

	return res
}
