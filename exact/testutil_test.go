// SPDX-License-Identifier: MIT

package exact_test

import (
	"testing"

	"github.com/katalvlaran/voyage/instance"
	"github.com/katalvlaran/voyage/market"
	"github.com/stretchr/testify/require"
)

// generated returns a small random instance; stretch multiplies T_max so that
// longer routes become feasible.
func generated(t testing.TB, seed int64, stretch float64) *market.Instance {
	t.Helper()
	in, err := instance.Generate(instance.GenerateConfig{
		Seed:     seed,
		MinPorts: 3,
		MaxPorts: 5,
		MinKinds: 1,
		MaxKinds: 3,
	})
	require.NoError(t, err)
	in.TMax *= stretch

	return in
}

// clique is a 9-port instance where every port is one step from every other:
// far too many routes to finish, used for cancellation tests.
func clique() *market.Instance {
	const n, m = 9, 3
	dist := make([][]float64, n)
	items := make([][]market.Item, n)
	for p := 0; p < n; p++ {
		dist[p] = make([]float64, n)
		items[p] = make([]market.Item, m)
		for q := 0; q < n; q++ {
			if p != q {
				dist[p][q] = 1
			}
		}
		for k := 0; k < m; k++ {
			if p == market.Home {
				items[p][k] = market.Sentinel()
				continue
			}
			items[p][k] = market.Item{
				Weight: float64(1 + k),
				Buy:    float64(2 + p + k),
				Sell:   float64(3 + (p*7+k*3)%5),
			}
		}
	}

	return &market.Instance{ID: "clique", Dist: dist, TMax: 100, CMax: 10, K0: 50, KMin: 1, Items: items}
}
