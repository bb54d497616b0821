// SPDX-License-Identifier: MIT

// Package solver is the single entry point to the voyage solvers.
//
// Solve validates an instance once (market.Validate) and dispatches it to one
// algorithm:
//
//	RouteThenTrade  exact; every feasible route scored by the trade optimizer
//	Interleaved     exact; one decision tree over sells, buys and moves
//	Annealing       heuristic; greedy start refined by simulated annealing
//	Greedy          heuristic; the greedy construction alone
//
// When no trip beats staying home, every algorithm returns the starting capital
// with the stay-home plan and Result.StayedHome set. There is no separate
// "no solution" value.
//
// CrossCheck runs both exact formulations and the annealer on one instance and
// reports whether they agree: the exact optima within Options.Tolerance, and the
// heuristic never above them.
//
// Logging: Options.Logger receives one entry per dispatch and per cross-check.
// The algorithm packages themselves never log.
package solver
