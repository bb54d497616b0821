// SPDX-License-Identifier: MIT

package heuristic

import (
	"errors"
	"math"

	"github.com/katalvlaran/voyage/market"
)

// ErrBadOptions indicates an annealing schedule that cannot run.
var ErrBadOptions = errors.New("heuristic: invalid options")

// Options configures Anneal.
type Options struct {
	// Iterations is the number of neighbors evaluated.
	Iterations int

	// InitialTemp is the starting temperature.
	InitialTemp float64

	// Cooling multiplies the temperature after each iteration; in (0, 1].
	Cooling float64

	// Every ReheatEvery iterations, a temperature below ReheatBelow is
	// raised back to ReheatTo. ReheatEvery == 0 disables reheating.
	ReheatEvery int
	ReheatBelow float64
	ReheatTo    float64

	// Seed drives the random source; 0 selects the default seed.
	Seed int64
}

// DefaultOptions returns the reference schedule: 2000 iterations from T=1000,
// cooling by 0.995, reheating to 100 when below 10 every 500 iterations.
func DefaultOptions() Options {
	return Options{
		Iterations:  2000,
		InitialTemp: 1000,
		Cooling:     0.995,
		ReheatEvery: 500,
		ReheatBelow: 10,
		ReheatTo:    100,
	}
}

func (o Options) validate() error {
	switch {
	case o.Iterations < 0, o.ReheatEvery < 0:
		return ErrBadOptions
	case !(o.InitialTemp > 0) || math.IsInf(o.InitialTemp, 1):
		return ErrBadOptions
	case !(o.Cooling > 0 && o.Cooling <= 1):
		return ErrBadOptions
	case o.ReheatEvery > 0 && !(o.ReheatTo > 0):
		return ErrBadOptions
	}

	return nil
}

// Result is the outcome of a heuristic run.
type Result struct {
	// Capital is the best final capital found; at least the starting capital.
	Capital float64

	// Plan realizes Capital; the stay-home plan when no trip beats K0.
	Plan market.Plan

	// Complete is false when the context ended the run early.
	Complete bool

	// Iterations and Accepted count evaluated and accepted neighbors.
	Iterations int
	Accepted   int
}
