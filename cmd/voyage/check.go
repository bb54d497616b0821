// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voyage/instance"
	"github.com/katalvlaran/voyage/internal/rng"
	"github.com/katalvlaran/voyage/solver"
	"github.com/urfave/cli/v2"
)

var checkCmd = &cli.Command{
	Name:    "check",
	Usage:   "Generate random instances and cross-check every solver on them",
	Aliases: []string{"c"},
	Flags: append(append([]cli.Flag{
		&cli.IntFlag{
			Name:    "cases",
			Value:   100,
			Usage:   "number of generated instances",
			EnvVars: []string{"VOYAGE_CASES"},
		},
	}, solverFlags()...), shapeFlags()...),
	Action: func(c *cli.Context) error {
		var (
			cases  = c.Int("cases")
			seed   = c.Int64("seed")
			opts   = solverOptions(c)
			w      = c.App.Writer
			failed int
		)
		if cases <= 0 {
			return errors.New("invalid cases")
		}

		for i := 0; i < cases; i++ {
			in, err := instance.Generate(generateConfig(c, rng.DeriveSeed(seed, uint64(i))))
			if err != nil {
				return err
			}

			rep, err := solver.CrossCheck(c.Context, in, opts)
			status := "OK"
			switch {
			case errors.Is(err, solver.ErrMismatch):
				status = "ERROR"
				failed++
			case err != nil:
				return fmt.Errorf("case %d: %w", i+1, err)
			}
			fmt.Fprintf(w, "case %3d  %s  route-then-trade=%.2f interleaved=%.2f heuristic=%.2f  [%s]\n",
				i+1, rep.ID, rep.RouteThenTrade, rep.Interleaved, rep.Heuristic, status)
		}

		fmt.Fprintf(w, "%d/%d cases passed\n", cases-failed, cases)
		if failed > 0 {
			return fmt.Errorf("%d of %d cases failed: %w", failed, cases, solver.ErrMismatch)
		}

		return nil
	},
}
