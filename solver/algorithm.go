// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strings"
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	RouteThenTrade Algorithm = iota
	Interleaved
	Annealing
	Greedy
)

var algorithmNames = [...]string{
	RouteThenTrade: "route-then-trade",
	Interleaved:    "interleaved",
	Annealing:      "anneal",
	Greedy:         "greedy",
}

// String returns the CLI name of a.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Exact reports whether a always returns the optimum.
func (a Algorithm) Exact() bool {
	return a == RouteThenTrade || a == Interleaved
}

// ParseAlgorithm maps a CLI name (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// AlgorithmNames lists every CLI name in declaration order.
func AlgorithmNames() []string {
	return append([]string(nil), algorithmNames[:]...)
}
