// SPDX-License-Identifier: MIT

// Package exact provides two independently derived exact solvers for the
// merchant voyage problem. They explore the same space through different
// traversal orders and must return the same optimum on every instance.
//
//   - RouteThenTrade: enumerates every time-feasible simple cycle through the
//     home port and scores each one with ProfitByRoute, the trade optimizer that
//     tries every sell subset × buy subset at every stop.
//   - Interleaved: a single decision tree that, port by port, decides item by
//     item what to sell, then item by item what to buy, then where to go next.
//
// Both are depth-first with append/undo state inside a goroutine. With
// Options.Workers > 1 the first hop out of the home port is fanned out over an
// errgroup, each worker owning a private copy of the search state; the maximum
// is reduced with a fixed tie-break (stay home, then lowest first hop).
//
// Cancellation: the context (or Options.TimeLimit) is polled every 1024 search
// nodes. A cancelled search is not an error: it returns the best plan found so
// far with Result.Complete == false.
//
// Infeasibility is never an error either: a branch whose capital drops below
// zero (below the reserve at a departure) is simply discarded, and when no trip
// beats staying home the result is the starting capital with the stay-home plan.
//
// Complexity: exponential. For n ports and m item types the route count is
// O((n−1)!) and each stop enumerates up to 2^|hold| × 2^m trade choices.
package exact
