// SPDX-License-Identifier: MIT

// Package logging builds the logrus logger used by the voyage command.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// ErrFormat indicates a log format other than "text" or "json".
var ErrFormat = errors.New("logging: unknown format")

// Config selects level, format and destination.
type Config struct {
	// Level is any logrus level name; empty means "info".
	Level string

	// Format is "text" (default) or "json".
	Format string

	// Output is "stderr" (default), "stdout", or a file path. Files are rotated
	// by size and pruned after MaxAgeDays (0 keeps them forever).
	Output     string
	MaxSizeMB  int
	MaxAgeDays int
}

// DefaultConfig logs info and above as text to stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "text", Output: "stderr", MaxSizeMB: 100}
}

// New returns a configured logger. The returned closer releases a log file and
// is a no-op for the standard streams.
func New(cfg Config) (*logrus.Logger, io.Closer, error) {
	l := logrus.New()

	level := strings.ToLower(strings.TrimSpace(cfg.Level))
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	l.SetLevel(lvl)

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrFormat, cfg.Format)
	}

	var closer io.Closer = nopCloser{}
	switch cfg.Output {
	case "", "stderr":
		l.SetOutput(os.Stderr)
	case "stdout":
		l.SetOutput(os.Stdout)
	default:
		size := cfg.MaxSizeMB
		if size <= 0 {
			size = 100
		}
		file := &lumberjack.Logger{
			Filename: cfg.Output,
			MaxSize:  size,
			MaxAge:   cfg.MaxAgeDays,
			Compress: true,
		}
		l.SetOutput(file)
		closer = file
	}

	return l, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
