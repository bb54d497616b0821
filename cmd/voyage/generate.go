// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/voyage/instance"
	"github.com/urfave/cli/v2"
)

// shapeFlags bound the generated instances of generate and check.
func shapeFlags() []cli.Flag {
	def := instance.DefaultGenerateConfig()

	return []cli.Flag{
		&cli.IntFlag{Name: "min-ports", Value: def.MinPorts, Usage: "fewest ports, home included"},
		&cli.IntFlag{Name: "max-ports", Value: def.MaxPorts, Usage: "most ports, home included"},
		&cli.IntFlag{Name: "min-kinds", Value: def.MinKinds, Usage: "fewest item types per port"},
		&cli.IntFlag{Name: "max-kinds", Value: def.MaxKinds, Usage: "most item types per port"},
	}
}

func generateConfig(c *cli.Context, seed int64) instance.GenerateConfig {
	return instance.GenerateConfig{
		Seed:     seed,
		MinPorts: c.Int("min-ports"),
		MaxPorts: c.Int("max-ports"),
		MinKinds: c.Int("min-kinds"),
		MaxKinds: c.Int("max-kinds"),
	}
}

var generateCmd = &cli.Command{
	Name:    "generate",
	Usage:   "Write a random instance as YAML",
	Aliases: []string{"g"},
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Aliases:  []string{"o"},
			Required: true,
			Usage:    "output YAML file",
		},
		&cli.Int64Flag{
			Name:    "seed",
			Value:   1,
			Usage:   "random seed",
			EnvVars: []string{"VOYAGE_SEED"},
		},
	}, shapeFlags()...),
	Action: func(c *cli.Context) error {
		in, err := instance.Generate(generateConfig(c, c.Int64("seed")))
		if err != nil {
			return err
		}
		out := c.String("out")
		if err = instance.Save(out, in); err != nil {
			return err
		}

		loggerFrom(c).WithField("instance", in.ID).WithField("file", out).Info("instance written")
		fmt.Fprintf(c.App.Writer, "%s: %d ports, %d item types\n", in.ID, in.Ports(), in.Kinds())

		return nil
	},
}
