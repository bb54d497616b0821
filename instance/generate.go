// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/katalvlaran/voyage/internal/rng"
	"github.com/katalvlaran/voyage/market"
	"github.com/katalvlaran/voyage/matrix"
)

const (
	seaSize         = 100.0
	profitableShare = 0.7 // share of item types forced to a margin
	minMargin       = 1.1
)

// GenerateConfig bounds the random instance. Port and kind counts are drawn
// uniformly from the inclusive ranges.
type GenerateConfig struct {
	Seed     int64
	MinPorts int
	MaxPorts int
	MinKinds int
	MaxKinds int
}

// DefaultGenerateConfig returns 3–5 ports with 2–4 item types.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Seed:     rng.DefaultSeed,
		MinPorts: 3,
		MaxPorts: 5,
		MinKinds: 2,
		MaxKinds: 4,
	}
}

func (c GenerateConfig) validate() error {
	if c.MinPorts < 1 || c.MaxPorts < c.MinPorts || c.MinKinds < 1 || c.MaxKinds < c.MinKinds {
		return fmt.Errorf("%w: ports [%d,%d] kinds [%d,%d]",
			ErrBadConfig, c.MinPorts, c.MaxPorts, c.MinKinds, c.MaxKinds)
	}

	return nil
}

// round rounds v to the given number of decimals.
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))

	return math.Round(v*p) / p
}

// Generate draws one instance from cfg. The result passes market.Validate.
func Generate(cfg GenerateConfig) (*market.Instance, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r := rng.New(cfg.Seed)

	n := rng.IntBetween(r, cfg.MinPorts, cfg.MaxPorts)
	m := rng.IntBetween(r, cfg.MinKinds, cfg.MaxKinds)

	dist, err := seaDistances(r, n)
	if err != nil {
		return nil, err
	}

	in := &market.Instance{Dist: dist}
	in.TMax = timeBudget(r, dist)
	in.CMax = round(rng.Uniform(r, 5, 20), 1)
	in.K0 = round(rng.Uniform(r, 10, 50), 1)
	in.KMin = round(in.K0*rng.Uniform(r, 0.1, 0.3), 1)
	in.Items = itemTables(r, n, m, in.CMax, in.K0)
	in.TMax = ensureRoundTrip(r, dist, in.TMax)

	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("instance: id: %w", err)
	}
	in.ID = id.String()

	if err = market.Validate(in); err != nil {
		return nil, fmt.Errorf("instance: generated instance: %w", err)
	}

	return in, nil
}

// seaDistances places n ports at random and returns the shortest-path closure
// of their rounded Euclidean distances.
func seaDistances(r *rand.Rand, n int) ([][]float64, error) {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = rng.Uniform(r, 0, seaSize)
		ys[i] = rng.Uniform(r, 0, seaSize)
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("instance: distances: %w", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v := round(math.Hypot(xs[j]-xs[i], ys[j]-ys[i]), 1)
			if err = d.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("instance: distances: %w", err)
			}
			if err = d.Set(j, i, v); err != nil {
				return nil, fmt.Errorf("instance: distances: %w", err)
			}
		}
	}
	if err = matrix.FloydWarshall(d); err != nil {
		return nil, fmt.Errorf("instance: distances: %w", err)
	}

	return d.Rows2D(), nil
}

// timeBudget draws T_max between twice the nearest port and a few legs further.
func timeBudget(r *rand.Rand, dist [][]float64) float64 {
	n := len(dist)
	if n < 2 {
		return 10
	}
	out := append([]float64(nil), dist[market.Home][1:]...)
	sort.Float64s(out)
	nearest, second := out[0], out[0]
	if n > 2 {
		second = out[1]
	}

	return round(rng.Uniform(r, 2*nearest+0.5, 4*nearest+2*second), 1)
}

// ensureRoundTrip stretches tMax when no port can be reached and left again.
func ensureRoundTrip(r *rand.Rand, dist [][]float64, tMax float64) float64 {
	if len(dist) < 2 {
		return tMax
	}
	shortest := math.Inf(1)
	for q := 1; q < len(dist); q++ {
		trip := 2 * dist[market.Home][q]
		if trip <= tMax {
			return tMax
		}
		shortest = math.Min(shortest, trip)
	}

	return round(shortest+rng.Uniform(r, 0.5, 2), 1)
}

// itemTables fills home with sentinels and every other port with m priced types.
func itemTables(r *rand.Rand, n, m int, cMax, k0 float64) [][]market.Item {
	items := make([][]market.Item, n)
	items[market.Home] = make([]market.Item, m)
	for k := range items[market.Home] {
		items[market.Home][k] = market.Sentinel()
	}

	for p := 1; p < n; p++ {
		items[p] = make([]market.Item, m)
		for k := 0; k < m; k++ {
			w := round(rng.Uniform(r, 1, cMax/2), 1)
			buy := round(rng.Uniform(r, 1, 1.5*k0), 1)
			sell := round(buy*rng.Uniform(r, 0.8, 1.5), 1)
			if r.Float64() < profitableShare {
				sell = math.Max(sell, buy*minMargin)
			}
			items[p][k] = market.Item{Weight: w, Buy: buy, Sell: round(sell, 2)}
		}
	}

	return items
}
