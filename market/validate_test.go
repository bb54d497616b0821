// SPDX-License-Identifier: MIT

package market_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/voyage/market"
	"github.com/katalvlaran/voyage/market/markettest"
	"github.com/katalvlaran/voyage/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Fixtures(t *testing.T) {
	for _, tc := range markettest.Cases() {
		t.Run(tc.Name, func(t *testing.T) {
			assert.NoError(t, market.Validate(tc.New()))
		})
	}
	assert.NoError(t, market.Validate(markettest.FourKinds()))
}

func TestValidate_Sentinels(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *market.Instance) *market.Instance
		want   error
	}{
		{"nil", func(*market.Instance) *market.Instance { return nil }, market.ErrNilInstance},
		{"no ports", func(in *market.Instance) *market.Instance {
			in.Dist, in.Items = nil, nil
			return in
		}, market.ErrNoPorts},
		{"port count", func(in *market.Instance) *market.Instance {
			in.Items = in.Items[:2]
			return in
		}, market.ErrPortCount},
		{"ragged", func(in *market.Instance) *market.Instance {
			in.Items[2] = in.Items[2][:1]
			return in
		}, market.ErrRaggedItems},
		{"negative weight", func(in *market.Instance) *market.Instance {
			in.Items[1][0].Weight = -1
			return in
		}, market.ErrNegativeWeight},
		{"nan item", func(in *market.Instance) *market.Instance {
			in.Items[1][1].Sell = math.NaN()
			return in
		}, market.ErrNaNItem},
		{"negative reserve", func(in *market.Instance) *market.Instance {
			in.KMin = -1
			return in
		}, market.ErrBadBudget},
		{"infinite time", func(in *market.Instance) *market.Instance {
			in.TMax = math.Inf(1)
			return in
		}, market.ErrBadBudget},
		{"asymmetric", func(in *market.Instance) *market.Instance {
			in.Dist[0][1] = 1.5
			return in
		}, matrix.ErrAsymmetry},
		{"triangle", func(in *market.Instance) *market.Instance {
			in.Dist[0][2], in.Dist[2][0] = 9, 9
			return in
		}, matrix.ErrTriangle},
		{"ragged distance", func(in *market.Instance) *market.Instance {
			in.Dist[1] = in.Dist[1][:2]
			return in
		}, matrix.ErrRagged},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := market.Validate(tc.mutate(markettest.LongHarbor()))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestInstance_CloneDoesNotAlias(t *testing.T) {
	in := markettest.LongHarbor()
	cp := in.Clone()
	cp.Dist[0][1] = 42
	cp.Items[1][0].Buy = 42

	assert.Equal(t, 1.0, in.Dist[0][1])
	assert.Equal(t, 2.0, in.Items[1][0].Buy)
	assert.Equal(t, 3, cp.Ports())
	assert.Equal(t, 2, cp.Kinds())
}

func TestOracle_CanVisit(t *testing.T) {
	o := market.NewOracle(markettest.LongHarbor())
	require.Equal(t, 3, o.Ports())

	assert.Equal(t, 2.0, o.Time(1, 2))
	assert.True(t, o.CanVisit(2, market.Home, 1))    // 1 out + 1 back
	assert.False(t, o.CanVisit(1.9, market.Home, 1)) // cannot return
	assert.True(t, o.CanVisit(5, 1, 2))              // 2 out + 3 back
	assert.False(t, o.CanVisit(4.9, 1, 2))
	assert.True(t, o.CanVisit(3, 2, market.Home))
}

func TestItem_Sentinel(t *testing.T) {
	s := market.Sentinel()
	assert.False(t, s.Available())
	assert.True(t, math.IsInf(s.Sell, -1))
	assert.True(t, market.Item{Weight: 1, Buy: 2, Sell: 3}.Available())
}
