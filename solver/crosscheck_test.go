// SPDX-License-Identifier: MIT

package solver_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/voyage/instance"
	"github.com/katalvlaran/voyage/internal/rng"
	"github.com/katalvlaran/voyage/market/markettest"
	"github.com/katalvlaran/voyage/solver"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossCheck_Fixtures(t *testing.T) {
	for _, tc := range markettest.Cases() {
		rep, err := solver.CrossCheck(context.Background(), tc.New(), solver.DefaultOptions())
		require.NoError(t, err, tc.Name)
		assert.True(t, rep.OK())
		assert.InDelta(t, tc.Want, rep.RouteThenTrade, markettest.Tol)
		assert.InDelta(t, tc.Want, rep.Interleaved, markettest.Tol)
		assert.LessOrEqual(t, rep.Heuristic, rep.RouteThenTrade+markettest.Tol)
	}
}

func TestCrossCheck_FourKinds(t *testing.T) {
	rep, err := solver.CrossCheck(context.Background(), markettest.FourKinds(), solver.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, rep.Agree)
	assert.True(t, rep.Bounded)
	assert.InDelta(t, 45.65, rep.Interleaved, markettest.Tol)
	assert.LessOrEqual(t, rep.Heuristic, rep.Interleaved+markettest.Tol)
}

func TestCrossCheck_Generated(t *testing.T) {
	logger, hook := test.NewNullLogger()
	opts := solver.DefaultOptions()
	opts.Logger = logger

	cfg := instance.DefaultGenerateConfig()
	for i := uint64(0); i < 10; i++ {
		cfg.Seed = rng.DeriveSeed(2024, i)
		in, err := instance.Generate(cfg)
		require.NoError(t, err)

		rep, err := solver.CrossCheck(context.Background(), in, opts)
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, in.ID, rep.ID)
		assert.Equal(t, "cross-check passed", hook.LastEntry().Message)
	}
}

func TestCrossCheck_Incomplete(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in, err := instance.Generate(instance.GenerateConfig{Seed: 3, MinPorts: 9, MaxPorts: 9, MinKinds: 3, MaxKinds: 3})
	require.NoError(t, err)
	in.TMax = 1e6

	_, err = solver.CrossCheck(ctx, in, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrIncomplete)
}

func TestCrossCheck_BadTolerance(t *testing.T) {
	for _, tol := range []float64{-1, 0, math.NaN(), math.Inf(1)} {
		opts := solver.DefaultOptions()
		opts.Tolerance = tol
		_, err := solver.CrossCheck(context.Background(), markettest.LongHarbor(), opts)
		assert.ErrorIs(t, err, solver.ErrBadTolerance, "tolerance %v", tol)
	}
}
