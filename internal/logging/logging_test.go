// SPDX-License-Identifier: MIT

package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/voyage/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	l, closer, err := logging.New(logging.DefaultConfig())
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
	assert.Equal(t, os.Stderr, l.Out)
}

func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voyage.log")
	l, closer, err := logging.New(logging.Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	l.WithField("capital", 8.0).Debug("solve finished")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "solve finished", entry["message"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, 8.0, entry["capital"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_Errors(t *testing.T) {
	_, _, err := logging.New(logging.Config{Level: "loud"})
	assert.Error(t, err)

	_, _, err = logging.New(logging.Config{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrFormat)
}

func TestNew_Stdout(t *testing.T) {
	l, closer, err := logging.New(logging.Config{Level: "WARN", Output: "stdout"})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	assert.Equal(t, os.Stdout, l.Out)
}
