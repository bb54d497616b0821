// SPDX-License-Identifier: MIT

// Package voyage plans the most profitable trading voyage out of a home port.
//
// 🚢 The problem
//
//	A trader leaves port 0 with capital K0 and must be back within a travel-time
//	budget T_max. At every port of a simple cycle it may sell carried goods and
//	buy local ones, limited by cargo capacity C_max, while a reserve K_min is
//	paid on every departure. The answer is the largest capital back home.
//
// 🧭 What is inside?
//
//	• Exact search: route-then-trade enumeration and an interleaved decision
//	  tree, kept in lock-step agreement, with optional parallel fan-out
//	• Heuristic: greedy construction refined by seeded simulated annealing
//	• Instances: validation, random generation, YAML load/save
//	• A CLI to solve, generate and cross-check instances
//
// Packages:
//
//	matrix/: dense matrices, distance-table validators, Floyd–Warshall closure
//	market/: items, instances, plans, plan replay, the time-feasibility rule
//	exact/: RouteThenTrade, Interleaved, ProfitByRoute
//	heuristic/: Greedy, Simulate, Anneal
//	solver/: Solve dispatcher and CrossCheck
//	instance/: Generate, Load, Save
//	cmd/voyage/: command-line front end
//
// Quick start:
//
//	in, _ := instance.Load("harbor.yaml")
//	res, _ := solver.Solve(ctx, in, solver.DefaultOptions())
//	fmt.Printf("%.2f via %v\n", res.Capital, res.Plan.Route)
package voyage
