package geo

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const precision = 0.0001

func TestSnapToGrid(t *testing.T) {
	assert.Equal(t, 20.0, SnapToGrid(23, 10))
	assert.Equal(t, 30.0, SnapToGrid(25, 10))
	assert.Equal(t, 30.0, SnapToGrid(26, 10))
	assert.Equal(t, -10.0, SnapToGrid(-12, 10))
	assert.Equal(t, 0.0, SnapToGrid(-5, 10))
	assert.Equal(t, 23.4, SnapToGrid(23.4, 0))
	assert.Equal(t, 23.4, SnapToGrid(23.4, -1))

	// snapping is idempotent
	for _, v := range []float64{-37.5, 0, 3, 14.999, 15, 1234.5} {
		once := SnapToGrid(v, 15)
		assert.Equal(t, once, SnapToGrid(once, 15))
	}
}

func TestSnapToGridNearestMultiple(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		v    float64
		unit float64
		exp  float64
	}{
		{v: 0, unit: 10, exp: 0},
		{v: 5, unit: 10, exp: 10},
		{v: -5, unit: 10, exp: 0},
		{v: -15, unit: 10, exp: -10},
		{v: -15.01, unit: 10, exp: -20},
		{v: -123.4, unit: 8, exp: -120},
		{v: 0.125, unit: 0.25, exp: 0.25},
		{v: -0.125, unit: 0.25, exp: 0},
		{v: -1.1, unit: 0.25, exp: -1},
		{v: 3.75, unit: 2.5, exp: 5},
		{v: -3.75, unit: 2.5, exp: -2.5},
		{v: 6.2, unit: 2.5, exp: 5},
		{v: 0.3, unit: 0.1, exp: 0.3},
		{v: 1e6 + 7, unit: 15, exp: 1e6 + 5},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%v_by_%v", tc.v, tc.unit), func(t *testing.T) {
			t.Parallel()

			r := SnapToGrid(tc.v, tc.unit)
			assert.InDelta(t, tc.exp, r, 1e-9)

			q := r / tc.unit
			assert.InDelta(t, math.Round(q), q, 1e-9, "%v is not a multiple of %v", r, tc.unit)
			assert.LessOrEqual(t, math.Abs(r-tc.v), tc.unit/2+1e-9)
		})
	}
}

func TestFloorToGrid(t *testing.T) {
	assert.Equal(t, 20.0, FloorToGrid(29, 10))
	assert.Equal(t, -10.0, FloorToGrid(-1, 10))
	assert.Equal(t, 7.5, FloorToGrid(7.5, 0))
}

func TestNormalizeDegrees(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeDegrees(360))
	assert.Equal(t, 270.0, NormalizeDegrees(-90))
	assert.Equal(t, 45.0, NormalizeDegrees(405))
}

func TestPairUnmarshal(t *testing.T) {
	var p Pair
	require.NoError(t, json.Unmarshal([]byte(`8`), &p))
	assert.Equal(t, Uniform(8), p)

	require.NoError(t, json.Unmarshal([]byte(`[8, 4]`), &p))
	assert.Equal(t, Pair{X: 8, Y: 4}, p)

	require.NoError(t, json.Unmarshal([]byte(`{"x": 2, "y": 3}`), &p))
	assert.Equal(t, Pair{X: 2, Y: 3}, p)

	assert.Error(t, json.Unmarshal([]byte(`[1, 2, 3]`), &p))
	assert.Error(t, json.Unmarshal([]byte(`"big"`), &p))

	require.NoError(t, p.UnmarshalTOML(int64(5)))
	assert.Equal(t, Uniform(5), p)
	assert.Equal(t, "5", p.ToString())
	assert.Equal(t, "2x3", Pair{X: 2, Y: 3}.ToString())
}
