// SPDX-License-Identifier: MIT

package instance_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/voyage/instance"
	"github.com/katalvlaran/voyage/market"
	"github.com/katalvlaran/voyage/market/markettest"
	"github.com/katalvlaran/voyage/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_KeepsSentinels(t *testing.T) {
	in := markettest.LongHarbor()

	var buf bytes.Buffer
	require.NoError(t, instance.Encode(&buf, in))
	assert.Contains(t, buf.String(), ".inf")
	assert.Contains(t, buf.String(), "-.inf")

	got, err := instance.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	assert.True(t, math.IsInf(got.Items[0][1].Sell, -1))
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractional.yaml")
	in := markettest.Fractional()

	require.NoError(t, instance.Save(path, in))
	got, err := instance.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestDecode_HandWritten(t *testing.T) {
	doc := `
id: tiny
dist:
  - [0, 1]
  - [1, 0]
t_max: 2
c_max: 3
k0: 10
k_min: 1
items:
  - [{weight: .inf, buy: .inf, sell: -.inf}]
  - [{weight: 1, buy: 2, sell: 3}]
`
	in, err := instance.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "tiny", in.ID)
	assert.Equal(t, 2, in.Ports())
	assert.Equal(t, market.Item{Weight: 1, Buy: 2, Sell: 3}, in.Items[1][0])
	assert.False(t, in.Items[0][0].Available())
}

func TestDecode_Errors(t *testing.T) {
	_, err := instance.Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, instance.ErrEmptyDocument)

	_, err = instance.Decode(strings.NewReader("dist: [[0, 1], [2, 0]]\nitems: [[], []]\n"))
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, err = instance.Decode(strings.NewReader("dist: {oops}"))
	assert.Error(t, err)

	_, err = instance.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
