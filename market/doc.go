// SPDX-License-Identifier: MIT

// Package market defines the data model shared by every voyage solver:
// ports, item tables, the owned cargo (Merchandise), problem instances and
// the trade plans that realize a solution.
//
// Unavailable goods are encoded arithmetically, not with flags:
// Sentinel() is {Weight: +Inf, Buy: +Inf, Sell: −Inf}. Any capacity or budget
// comparison against it fails on its own (room−(+Inf) < 0, budget−(+Inf) < 0),
// and selling it yields −Inf capital, which the solvers prune as infeasible.
//
// The Oracle type holds the one time-feasibility rule all solvers share:
// from port p with remaining budget r, port q is a legal next stop iff
// r ≥ t(p,q) + t(q,Home). The rule is pessimistic (it assumes a direct
// return home right after q) and it is evaluated for every prefix.
package market
