// SPDX-License-Identifier: MIT

package market_test

import (
	"testing"

	"github.com/katalvlaran/voyage/market"
	"github.com/katalvlaran/voyage/market/markettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longHarborPlan is the optimal plan of markettest.LongHarbor:
// buy type 0 at home, sell it at 1 and buy type 1, sell that at 2.
func longHarborPlan(in *market.Instance) market.Plan {
	atHome := market.Unit(market.Home, 0, in.Items[market.Home][0])
	atOne := market.Unit(1, 1, in.Items[1][1])

	return market.Plan{
		Route: []int{0, 1, 2, 0},
		Stops: []market.Stop{
			{Port: 0, Bought: []market.Merchandise{atHome}, Capital: 0},
			{Port: 1, Sold: []market.Merchandise{atHome}, Bought: []market.Merchandise{atOne}, Capital: 3},
			{Port: 2, Sold: []market.Merchandise{atOne}, Capital: 8},
			{Port: 0, Capital: 8},
		},
		Capital: 8,
	}
}

func TestReplay_ValidPlan(t *testing.T) {
	in := markettest.LongHarbor()
	got, err := market.Replay(in, longHarborPlan(in))
	require.NoError(t, err)
	assert.InDelta(t, 8.0, got, 1e-9)
}

func TestReplay_StayHome(t *testing.T) {
	in := markettest.ShortHarbor()
	got, err := market.Replay(in, market.StayHome(in.K0))
	require.NoError(t, err)
	assert.Equal(t, in.K0, got)
	assert.False(t, market.StayHome(in.K0).IsTrip())
}

func TestReplay_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *market.Instance, p *market.Plan)
		want   error
	}{
		{"open route", func(_ *market.Instance, p *market.Plan) {
			p.Route[3] = 2
		}, market.ErrPlanShape},
		{"revisit", func(_ *market.Instance, p *market.Plan) {
			p.Route[2], p.Stops[2].Port = 1, 1
		}, market.ErrPlanShape},
		{"missing stop", func(_ *market.Instance, p *market.Plan) {
			p.Stops = p.Stops[:3]
		}, market.ErrPlanShape},
		{"time", func(in *market.Instance, _ *market.Plan) {
			in.TMax = 5
		}, market.ErrPlanTime},
		{"capacity", func(in *market.Instance, _ *market.Plan) {
			in.CMax = 1
		}, market.ErrPlanCapacity},
		{"reserve", func(in *market.Instance, _ *market.Plan) {
			in.KMin = 0.5
		}, market.ErrPlanReserve},
		{"phantom sale", func(_ *market.Instance, p *market.Plan) {
			p.Stops[2].Sold = append(p.Stops[2].Sold, market.Merchandise{Port: 2, Kind: 0})
		}, market.ErrPlanCargo},
		{"cargo left", func(_ *market.Instance, p *market.Plan) {
			p.Stops[2].Sold, p.Stops[2].Capital = nil, 3
		}, market.ErrPlanCargo},
		{"wrong capital", func(_ *market.Instance, p *market.Plan) {
			p.Stops[1].Capital = 4
		}, market.ErrPlanCapital},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := markettest.LongHarbor()
			plan := longHarborPlan(in).Clone()
			tc.mutate(in, &plan)
			_, err := market.Replay(in, plan)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPlan_CloneIsDeep(t *testing.T) {
	in := markettest.LongHarbor()
	p := longHarborPlan(in)
	cp := p.Clone()
	cp.Route[1] = 2
	cp.Stops[1].Sold[0].Kind = 1

	assert.Equal(t, 1, p.Route[1])
	assert.Equal(t, 0, p.Stops[1].Sold[0].Kind)
}
