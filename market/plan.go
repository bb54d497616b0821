// SPDX-License-Identifier: MIT

package market

import (
	"fmt"
	"math"
)

// replayTol absorbs summation-order drift between a solver and Replay.
const replayTol = 1e-6

// Stop records the trade actions taken at one position of a route.
//
// Capital is the capital once the stop is done: after selling, buying and paying
// the reserve for a departure, or after liquidation for the final home stop.
type Stop struct {
	Port    int           `yaml:"port" json:"port"`
	Sold    []Merchandise `yaml:"sold,omitempty" json:"sold,omitempty"`
	Bought  []Merchandise `yaml:"bought,omitempty" json:"bought,omitempty"`
	Capital float64       `yaml:"capital" json:"capital"`
}

// Plan is a realized solution: a closed route plus one Stop per route position.
// The stay-home plan has Route == []int{Home} and no stops.
type Plan struct {
	Route   []int   `yaml:"route" json:"route"`
	Stops   []Stop  `yaml:"stops,omitempty" json:"stops,omitempty"`
	Capital float64 `yaml:"capital" json:"capital"`
}

// StayHome returns the plan of never leaving port.
func StayHome(k0 float64) Plan {
	return Plan{Route: []int{Home}, Capital: k0}
}

// IsTrip reports whether the plan leaves the home port.
func (p Plan) IsTrip() bool { return len(p.Route) > 1 }

// Clone deep-copies the plan.
func (p Plan) Clone() Plan {
	cp := Plan{Route: append([]int(nil), p.Route...), Capital: p.Capital}
	if p.Stops != nil {
		cp.Stops = make([]Stop, len(p.Stops))
		for i, s := range p.Stops {
			cp.Stops[i] = Stop{
				Port:    s.Port,
				Sold:    append([]Merchandise(nil), s.Sold...),
				Bought:  append([]Merchandise(nil), s.Bought...),
				Capital: s.Capital,
			}
		}
	}

	return cp
}

// Replay re-executes plan against in and returns the final capital.
//
// It enforces every trade invariant independently of the solver that produced
// the plan: simple closed route, time-feasible prefixes, cargo held before it is
// sold, one unit per type per stop, capacity, capital ≥ K_min before each
// departure, and full liquidation at the final home stop.
func Replay(in *Instance, plan Plan) (float64, error) {
	if !plan.IsTrip() {
		if len(plan.Route) != 1 || plan.Route[0] != Home || len(plan.Stops) != 0 {
			return 0, ErrPlanShape
		}

		return in.K0, nil
	}
	route := plan.Route
	last := len(route) - 1
	if route[0] != Home || route[last] != Home || len(plan.Stops) != len(route) {
		return 0, ErrPlanShape
	}

	var (
		oracle    = NewOracle(in)
		seen      = make([]bool, in.Ports())
		remaining = in.TMax
		capital   = in.K0
		room      = in.CMax
		hold      = make(map[[2]int]Merchandise)
	)
	for i, port := range route {
		stop := plan.Stops[i]
		if stop.Port != port {
			return 0, fmt.Errorf("stop %d: %w", i, ErrPlanShape)
		}
		if i > 0 {
			if port < 0 || port >= in.Ports() || (port != Home && seen[port]) || (port == Home && i != last) {
				return 0, fmt.Errorf("stop %d: %w", i, ErrPlanShape)
			}
			if !oracle.CanVisit(remaining, route[i-1], port) {
				return 0, fmt.Errorf("stop %d: %w", i, ErrPlanTime)
			}
			remaining -= oracle.Time(route[i-1], port)
			seen[port] = true
		}

		for _, m := range stop.Sold {
			key := [2]int{m.Port, m.Kind}
			if _, ok := hold[key]; !ok {
				return 0, fmt.Errorf("stop %d: sold %v: %w", i, key, ErrPlanCargo)
			}
			delete(hold, key)
			capital += in.Items[port][m.Kind].Sell
			room += m.Weight
		}

		if i == last {
			if len(hold) != 0 || len(stop.Bought) != 0 {
				return 0, fmt.Errorf("stop %d: cargo left after liquidation: %w", i, ErrPlanCargo)
			}
			if math.IsInf(capital, 0) || math.IsNaN(capital) || capital < 0 {
				return 0, fmt.Errorf("stop %d: %w", i, ErrPlanReserve)
			}
			if math.Abs(capital-stop.Capital) > replayTol {
				return 0, fmt.Errorf("stop %d: %w", i, ErrPlanCapital)
			}

			break
		}

		var spend float64
		for _, m := range stop.Bought {
			key := [2]int{port, m.Kind}
			if _, dup := hold[key]; dup || m.Port != port || m.Kind < 0 || m.Kind >= in.Kinds() {
				return 0, fmt.Errorf("stop %d: bought %v: %w", i, key, ErrPlanCargo)
			}
			it := in.Items[port][m.Kind]
			if !it.Available() || m.Weight != it.Weight || m.Price != it.Buy {
				return 0, fmt.Errorf("stop %d: bought %v: %w", i, key, ErrPlanCargo)
			}
			hold[key] = m
			spend += m.Price
			room -= m.Weight
		}
		if room < -replayTol {
			return 0, fmt.Errorf("stop %d: %w", i, ErrPlanCapacity)
		}
		if capital-spend < in.KMin-replayTol || math.IsNaN(capital) {
			return 0, fmt.Errorf("stop %d: %w", i, ErrPlanReserve)
		}
		capital = capital - spend - in.KMin
		if math.Abs(capital-stop.Capital) > replayTol {
			return 0, fmt.Errorf("stop %d: %w", i, ErrPlanCapital)
		}
	}

	return capital, nil
}
