// SPDX-License-Identifier: MIT

// Package heuristic approximates the merchant voyage optimum with a greedy
// construction refined by simulated annealing.
//
// A route is scored by Simulate, which walks it from scratch with fixed greedy
// trade rules: sell what fetches more than it cost (never at the port it was
// bought), then buy the types that are profitable at the next stop of the route,
// best profit per unit of weight first, while capacity and the reserve allow.
// Greedy picks the route itself, port by port, by a score mixing proximity and
// the share of item types a port trades.
//
// Anneal perturbs the interior of the current route (swap, insert, remove,
// reverse), re-simulates the neighbor and accepts it when it improves, or with
// probability exp(Δ/T) otherwise. The temperature cools geometrically and is
// reheated when it has decayed below a floor.
//
// Every simulated plan is a member of the exact search space, and the result is
// never below the starting capital, so the heuristic value is a lower bound of
// the exact optimum.
//
// Determinism: all randomness flows from one *rand.Rand seeded by Options.Seed
// (0 ⇒ a fixed default seed). Equal seeds give equal results.
package heuristic
