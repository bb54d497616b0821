// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/voyage/instance"
	"github.com/katalvlaran/voyage/solver"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// solverFlags are shared by solve and check.
func solverFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "workers",
			Value:   1,
			Usage:   "first-hop branches searched concurrently by the exact solvers",
			EnvVars: []string{"VOYAGE_WORKERS"},
		},
		&cli.DurationFlag{
			Name:    "time-limit",
			Usage:   "wall-clock budget of an exact search (0 = unlimited)",
			EnvVars: []string{"VOYAGE_TIME_LIMIT"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Value:   1,
			Usage:   "random seed",
			EnvVars: []string{"VOYAGE_SEED"},
		},
		&cli.IntFlag{
			Name:    "iterations",
			Value:   2000,
			Usage:   "annealing iterations",
			EnvVars: []string{"VOYAGE_ITERATIONS"},
		},
	}
}

// solverOptions maps the shared flags onto solver.Options.
func solverOptions(c *cli.Context) solver.Options {
	opts := solver.DefaultOptions()
	opts.Exact.Workers = c.Int("workers")
	opts.Exact.TimeLimit = c.Duration("time-limit")
	opts.Heuristic.Seed = c.Int64("seed")
	opts.Heuristic.Iterations = c.Int("iterations")
	opts.Logger = loggerFrom(c)

	return opts
}

var solveCmd = &cli.Command{
	Name:    "solve",
	Usage:   "Solve one instance and print the final capital",
	Aliases: []string{"s"},
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "instance",
			Aliases:  []string{"i"},
			Required: true,
			Usage:    "instance YAML file",
			EnvVars:  []string{"VOYAGE_INSTANCE"},
		},
		&cli.StringFlag{
			Name:    "algo",
			Value:   solver.RouteThenTrade.String(),
			Usage:   "algorithm: " + strings.Join(solver.AlgorithmNames(), ", "),
			EnvVars: []string{"VOYAGE_ALGO"},
		},
		&cli.BoolFlag{
			Name:  "plan",
			Usage: "also print the realizing plan as YAML",
		},
	}, solverFlags()...),
	Action: func(c *cli.Context) error {
		algo, err := solver.ParseAlgorithm(c.String("algo"))
		if err != nil {
			return err
		}
		in, err := instance.Load(c.String("instance"))
		if err != nil {
			return err
		}

		opts := solverOptions(c)
		opts.Algorithm = algo
		res, err := solver.Solve(c.Context, in, opts)
		if err != nil {
			return err
		}

		w := c.App.Writer
		fmt.Fprintf(w, "%.2f\n", res.Capital)
		if !res.Complete {
			fmt.Fprintln(w, "# search cut short; best plan found so far")
		}
		if c.Bool("plan") {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err = enc.Encode(res.Plan); err != nil {
				return fmt.Errorf("print plan: %w", err)
			}
			return enc.Close()
		}

		return nil
	},
}
