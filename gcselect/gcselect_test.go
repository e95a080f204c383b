package gcselect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/gridcanvas/gcselect"
	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/lib/geo"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	layout := gctarget.Layout{
		{ID: "a", X: 100, Y: 100, Width: 100, Height: 100},
		{ID: "b", X: 300, Y: 0, Width: 100, Height: 100},
	}

	testCases := []struct {
		name    string
		start   geo.Point
		current geo.Point
		opts    gcselect.Options

		expRect     gctarget.Rect
		expArea     bool
		expEmpty    bool
		expSelected []string
	}{
		{
			name:        "exact_bounds",
			start:       geo.Point{X: 100, Y: 100},
			current:     geo.Point{X: 200, Y: 200},
			opts:        gcselect.Options{GridUnit: geo.Uniform(10)},
			expRect:     gctarget.NewRect(100, 100, 100, 100),
			expArea:     true,
			expEmpty:    true,
			expSelected: []string{"a"},
		},
		{
			name:     "snapped_per_axis",
			start:    geo.Point{X: 13, Y: 7},
			current:  geo.Point{X: 52, Y: 49},
			opts:     gcselect.Options{GridUnit: geo.Uniform(20)},
			expRect:  gctarget.NewRect(20, 0, 40, 40),
			expArea:  true,
			expEmpty: true,
		},
		{
			name:     "dragged_up_left",
			start:    geo.Point{X: 60, Y: 40},
			current:  geo.Point{X: 20, Y: 0},
			opts:     gcselect.Options{GridUnit: geo.Uniform(20)},
			expRect:  gctarget.NewRect(20, 0, 40, 40),
			expArea:  true,
			expEmpty: true,
		},
		{
			name:     "one_unit_floor",
			start:    geo.Point{X: 10, Y: 10},
			current:  geo.Point{X: 12, Y: 12},
			opts:     gcselect.Options{GridUnit: geo.Uniform(20)},
			expRect:  gctarget.NewRect(20, 20, 20, 20),
			expArea:  true,
			expEmpty: true,
		},
		{
			name:     "below_min_area",
			start:    geo.Point{X: 0, Y: 0},
			current:  geo.Point{X: 20, Y: 20},
			opts:     gcselect.Options{GridUnit: geo.Uniform(10), MinArea: 1000},
			expRect:  gctarget.NewRect(0, 0, 20, 20),
			expEmpty: true,
		},
		{
			name:    "clamped_to_canvas",
			start:   geo.Point{X: 50, Y: 50},
			current: geo.Point{X: 500, Y: -50},
			opts: gcselect.Options{
				GridUnit:     geo.Uniform(10),
				CanvasWidth:  100,
				CanvasHeight: 100,
			},
			expRect:  gctarget.NewRect(50, 0, 50, 50),
			expArea:  true,
			expEmpty: true,
		},
		{
			name:    "empty_space_touching_gap",
			start:   geo.Point{X: 0, Y: 0},
			current: geo.Point{X: 99, Y: 99},
			opts: gcselect.Options{
				GridUnit:       geo.Uniform(1),
				OnlyEmptySpace: true,
			},
			expRect:  gctarget.NewRect(0, 0, 99, 99),
			expArea:  true,
			expEmpty: true,
		},
		{
			name:    "empty_space_violated",
			start:   geo.Point{X: 0, Y: 0},
			current: geo.Point{X: 100, Y: 100},
			opts: gcselect.Options{
				GridUnit:       geo.Uniform(1),
				OnlyEmptySpace: true,
			},
			expRect: gctarget.NewRect(0, 0, 100, 100),
			expArea: true,
		},
		{
			name:     "under_coverage",
			start:    geo.Point{X: 300, Y: 0},
			current:  geo.Point{X: 400, Y: 89},
			opts:     gcselect.Options{GridUnit: geo.Uniform(1)},
			expRect:  gctarget.NewRect(300, 0, 100, 89),
			expArea:  true,
			expEmpty: true,
		},
		{
			name:        "at_coverage",
			start:       geo.Point{X: 300, Y: 0},
			current:     geo.Point{X: 400, Y: 90},
			opts:        gcselect.Options{GridUnit: geo.Uniform(1)},
			expRect:     gctarget.NewRect(300, 0, 100, 90),
			expArea:     true,
			expEmpty:    true,
			expSelected: []string{"b"},
		},
		{
			name:        "both",
			start:       geo.Point{X: 0, Y: 0},
			current:     geo.Point{X: 500, Y: 500},
			opts:        gcselect.Options{GridUnit: geo.Pair{X: 10, Y: 20}},
			expRect:     gctarget.NewRect(0, 0, 500, 500),
			expArea:     true,
			expEmpty:    true,
			expSelected: []string{"a", "b"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sel := gcselect.Evaluate(layout, tc.start, tc.current, tc.opts)
			assert.Equal(t, tc.expRect, sel.Rect)
			assert.Equal(t, tc.expArea, sel.AreaValid)
			assert.Equal(t, tc.expEmpty, sel.EmptySpaceValid)
			assert.Equal(t, tc.expArea && tc.expEmpty, sel.Valid)
			assert.Equal(t, tc.expSelected, sel.Selected)
		})
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	t.Parallel()

	layout := gctarget.Layout{{ID: "a", X: 0, Y: 0, Width: 10, Height: 10}}
	before := layout.Clone()
	gcselect.Evaluate(layout, geo.Point{}, geo.Point{X: 50, Y: 50}, gcselect.Options{GridUnit: geo.Uniform(5)})
	assert.Equal(t, before, layout)
}

func TestEvaluateZeroSizeFreeGrid(t *testing.T) {
	t.Parallel()

	layout := gctarget.Layout{{ID: "a", X: 0, Y: 0, Width: 10, Height: 10}}
	p := geo.Point{X: 42.5, Y: 17}

	// A free grid has no cell to floor the size to, so a click is a valid empty selection.
	sel := gcselect.Evaluate(layout, p, p, gcselect.Options{})
	assert.Equal(t, gctarget.NewRect(42.5, 17, 0, 0), sel.Rect)
	assert.Equal(t, 0.0, sel.Rect.Area())
	assert.True(t, sel.AreaValid)
	assert.True(t, sel.EmptySpaceValid)
	assert.True(t, sel.Valid)
	assert.Empty(t, sel.Selected)

	sel = gcselect.Evaluate(layout, p, p, gcselect.Options{MinArea: 1})
	assert.False(t, sel.AreaValid)
	assert.False(t, sel.Valid)
}

func TestStarted(t *testing.T) {
	t.Parallel()

	assert.True(t, gcselect.Started(geo.Point{}, geo.Point{X: 3, Y: 4}))
	assert.False(t, gcselect.Started(geo.Point{}, geo.Point{X: 3, Y: 3}))
}

func TestInCanvas(t *testing.T) {
	t.Parallel()

	assert.True(t, gcselect.InCanvas(geo.Point{X: 100, Y: 0}, 100, 100))
	assert.False(t, gcselect.InCanvas(geo.Point{X: 100.5, Y: 0}, 100, 100))
	assert.False(t, gcselect.InCanvas(geo.Point{X: -1, Y: 0}, 100, 100))
	assert.True(t, gcselect.InCanvas(geo.Point{X: 5000, Y: 5000}, 0, 0))
}
