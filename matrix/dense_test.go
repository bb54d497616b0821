// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/voyage/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())

	require.NoError(t, d.Set(1, 2, 4.5))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	// +Inf is a legal "no connection" marker.
	assert.NoError(t, d.Set(0, 1, math.Inf(1)))
}

func TestNewDenseFrom(t *testing.T) {
	d, err := matrix.NewDenseFrom([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, d.Rows2D())

	_, err = matrix.NewDenseFrom([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_Rows2DIsACopy(t *testing.T) {
	d, err := matrix.NewDenseFrom([][]float64{{0, 2}, {2, 0}})
	require.NoError(t, err)

	rows := d.Rows2D()
	rows[0][1] = 9

	v, _ := d.At(0, 1)
	assert.Equal(t, 2.0, v, "mutating the rows must not touch the matrix")
}
