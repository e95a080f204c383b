package gctransform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/gctransform"
	"oss.terrastruct.com/gridcanvas/lib/geo"
)

func TestSnapSize(t *testing.T) {
	t.Parallel()

	w, h := gctransform.SnapSize(47, 3, geo.Uniform(10))
	assert.Equal(t, 50.0, w)
	assert.Equal(t, 10.0, h, "never below one unit")

	w, h = gctransform.SnapSize(47, 33, geo.Pair{X: 20, Y: 15})
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 30.0, h)

	w, h = gctransform.SnapSize(47, 33, geo.Pair{})
	assert.Equal(t, 47.0, w)
	assert.Equal(t, 33.0, h)
}

func TestResizer(t *testing.T) {
	t.Parallel()

	item := gctarget.Item{ID: "a", X: 100, Y: 100, Width: 50, Height: 40}

	testCases := []struct {
		name   string
		handle geo.Orientation
		deltas [][2]float64
		exp    gctarget.Rect
	}{
		{
			name:   "bottom_right",
			handle: geo.BottomRight,
			deltas: [][2]float64{{20, -35}},
			exp:    gctarget.NewRect(100, 100, 70, 10),
		},
		{
			name:   "top_left",
			handle: geo.TopLeft,
			deltas: [][2]float64{{10, 10}},
			exp:    gctarget.NewRect(110, 110, 40, 30),
		},
		{
			name:   "top_left_keeps_last_valid_width",
			handle: geo.TopLeft,
			deltas: [][2]float64{{10, 10}, {45, 0}},
			exp:    gctarget.NewRect(110, 100, 40, 40),
		},
		{
			name:   "left",
			handle: geo.Left,
			deltas: [][2]float64{{-20, 99}},
			exp:    gctarget.NewRect(80, 100, 70, 40),
		},
		{
			name:   "top",
			handle: geo.Top,
			deltas: [][2]float64{{99, -10}},
			exp:    gctarget.NewRect(100, 90, 50, 50),
		},
		{
			name:   "right_clamps",
			handle: geo.Right,
			deltas: [][2]float64{{-100, 0}},
			exp:    gctarget.NewRect(100, 100, 10, 40),
		},
		{
			name:   "bottom",
			handle: geo.Bottom,
			deltas: [][2]float64{{0, 5}},
			exp:    gctarget.NewRect(100, 100, 50, 45),
		},
		{
			name:   "top_right",
			handle: geo.TopRight,
			deltas: [][2]float64{{10, 50}},
			exp:    gctarget.NewRect(100, 100, 60, 40),
		},
		{
			name:   "bottom_left",
			handle: geo.BottomLeft,
			deltas: [][2]float64{{-10, 10}},
			exp:    gctarget.NewRect(90, 100, 60, 50),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, err := gctransform.NewResizer(item, tc.handle)
			require.NoError(t, err)
			var got gctarget.Rect
			for _, d := range tc.deltas {
				got = r.Resize(d[0], d[1])
			}
			assert.Equal(t, tc.exp, got)
			assert.Equal(t, tc.exp, r.Last())
		})
	}
}

func TestResizerErrors(t *testing.T) {
	t.Parallel()

	_, err := gctransform.NewResizer(gctarget.Item{ID: "a", Width: 10, Height: 10, Locked: true}, geo.Right)
	require.Error(t, err)
	assert.Contains(t, err.Error(), gctransform.ErrLocked.Error())

	_, err = gctransform.NewResizer(gctarget.Item{ID: "a", Width: 10, Height: 10}, geo.NONE)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resize handle")
}

func TestRotator(t *testing.T) {
	t.Parallel()

	item := gctarget.Item{ID: "a", X: 0, Y: 0, Width: 100, Height: 100}

	testCases := []struct {
		name    string
		item    gctarget.Item
		start   geo.Point
		pointer geo.Point
		exp     float64
	}{
		{
			name:    "quarter",
			item:    item,
			start:   geo.Point{X: 50, Y: 20},
			pointer: geo.Point{X: 80, Y: 50},
			exp:     90,
		},
		{
			name:    "half",
			item:    item,
			start:   geo.Point{X: 50, Y: 20},
			pointer: geo.Point{X: 50, Y: 80},
			exp:     180,
		},
		{
			name:    "three_quarters",
			item:    item,
			start:   geo.Point{X: 50, Y: 20},
			pointer: geo.Point{X: 20, Y: 50},
			exp:     270,
		},
		{
			name:    "snaps_to_45",
			item:    item,
			start:   geo.Point{X: 50, Y: 20},
			pointer: geo.Point{X: 80, Y: 22},
			exp:     45,
		},
		{
			name:    "keeps_pointer_offset",
			item:    item,
			start:   geo.Point{X: 55, Y: 20},
			pointer: geo.Point{X: 85, Y: 50},
			exp:     90,
		},
		{
			name:    "from_rotated",
			item:    gctarget.Item{ID: "a", Width: 100, Height: 100, Rotation: 90},
			start:   geo.Point{X: 80, Y: 50},
			pointer: geo.Point{X: 50, Y: 80},
			exp:     180,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, err := gctransform.NewRotator(tc.item, tc.start, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, r.Rotate(tc.pointer))
			assert.Equal(t, tc.exp, r.Last())
		})
	}

	t.Run("unsnapped", func(t *testing.T) {
		t.Parallel()

		r, err := gctransform.NewRotator(item, geo.Point{X: 50, Y: 20}, 0)
		require.NoError(t, err)
		rad := geo.DegreesToRadians(-60)
		p := geo.Point{X: 50 + 30*math.Cos(rad), Y: 50 + 30*math.Sin(rad)}
		assert.InDelta(t, 30, r.Rotate(p), 0.001)
	})
}

func TestRotatorErrors(t *testing.T) {
	t.Parallel()

	_, err := gctransform.NewRotator(gctarget.Item{ID: "a", Width: 10, Height: 10, Locked: true}, geo.Point{}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), gctransform.ErrLocked.Error())

	_, err = gctransform.NewRotator(gctarget.Item{ID: "a", Width: 10, Height: 10, DisableRotation: true}, geo.Point{}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), gctransform.ErrRotationDisabled.Error())
}
