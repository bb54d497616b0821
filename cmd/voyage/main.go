// SPDX-License-Identifier: MIT

// Command voyage solves, generates and cross-checks merchant voyage instances.
//
//	voyage solve --instance harbor.yaml --algo interleaved --plan
//	voyage generate --out harbor.yaml --seed 7
//	voyage check --cases 100 --seed 1
//
// Every flag can also be set through its VOYAGE_* environment variable; a .env
// file in the working directory is loaded first when present.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/voyage/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const loggerKey = "logger"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "Error: loading .env:", err)
		os.Exit(1)
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "voyage",
		Usage: "Plan the most profitable trading voyage from a home port",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (trace, debug, info, warn, error)",
				EnvVars: []string{"VOYAGE_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "log format (text or json)",
				EnvVars: []string{"VOYAGE_LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "log-file",
				Value:   "stderr",
				Usage:   "log destination: stderr, stdout or a file path (rotated)",
				EnvVars: []string{"VOYAGE_LOG_FILE"},
			},
			&cli.IntFlag{
				Name:    "log-max-age",
				Usage:   "days to keep rotated log files (0 keeps them)",
				EnvVars: []string{"VOYAGE_LOG_MAX_AGE"},
			},
		},
		Before: setupLogger,
		After:  closeLogger,
		Commands: []*cli.Command{
			solveCmd,
			generateCmd,
			checkCmd,
		},
	}
}

func setupLogger(c *cli.Context) error {
	cfg := logging.DefaultConfig()
	cfg.Level = c.String("log-level")
	cfg.Format = c.String("log-format")
	cfg.Output = c.String("log-file")
	cfg.MaxAgeDays = c.Int("log-max-age")

	l, closer, err := logging.New(cfg)
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[loggerKey] = l
	c.App.Metadata[loggerKey+".closer"] = closer

	return nil
}

func closeLogger(c *cli.Context) error {
	if closer, ok := c.App.Metadata[loggerKey+".closer"].(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

// loggerFrom returns the logger built by setupLogger.
func loggerFrom(c *cli.Context) *logrus.Logger {
	if l, ok := c.App.Metadata[loggerKey].(*logrus.Logger); ok {
		return l
	}
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
