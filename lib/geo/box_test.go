package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxOverlaps(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		a    *Box
		b    *Box
		exp  bool
	}{
		{
			name: "disjoint",
			a:    NewBox(0, 0, 10, 10),
			b:    NewBox(20, 0, 10, 10),
			exp:  false,
		},
		{
			name: "touching_edge",
			a:    NewBox(0, 0, 10, 10),
			b:    NewBox(10, 0, 10, 10),
			exp:  false,
		},
		{
			name: "touching_corner",
			a:    NewBox(0, 0, 10, 10),
			b:    NewBox(10, 10, 10, 10),
			exp:  false,
		},
		{
			name: "partial",
			a:    NewBox(0, 0, 10, 10),
			b:    NewBox(5, 5, 10, 10),
			exp:  true,
		},
		{
			name: "contained",
			a:    NewBox(0, 0, 100, 100),
			b:    NewBox(40, 40, 1, 1),
			exp:  true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.exp, tc.b.Overlaps(tc.a))
		})
	}
}

func TestBoxIntersection(t *testing.T) {
	a := NewBox(0, 0, 100, 100)
	b := NewBox(50, 80, 100, 100)

	assert.Equal(t, NewBox(50, 80, 50, 20), a.Intersection(b))
	assert.Nil(t, a.Intersection(NewBox(100, 0, 10, 10)))
}

func TestBoxInflate(t *testing.T) {
	b := NewBox(10, 10, 20, 20).Inflate(5, 2)
	assert.Equal(t, NewBox(5, 8, 30, 24), b)
}

func TestBoxCorners(t *testing.T) {
	b := NewBox(0, 0, 100, 50)

	corners := b.Corners(0)
	assert.Equal(t, "(0, 0), (100, 0), (100, 50), (0, 50)", corners.ToString())

	corners = b.Corners(90)
	// rotated about (50, 25): the 100x50 box stands up as 50x100
	aabb := corners.BoundingBox()
	assert.InDelta(t, 25, aabb.TopLeft.X, precision)
	assert.InDelta(t, -25, aabb.TopLeft.Y, precision)
	assert.InDelta(t, 50, aabb.Width, precision)
	assert.InDelta(t, 100, aabb.Height, precision)
	assert.InDelta(t, 75, corners[0].X, precision)
	assert.InDelta(t, -25, corners[0].Y, precision)
}

func TestBoxRotatedAABB(t *testing.T) {
	b := NewBox(0, 0, 10, 10)
	aabb := b.RotatedAABB(45)

	d := 10 * 1.4142135623730951
	assert.InDelta(t, d, aabb.Width, precision)
	assert.InDelta(t, d, aabb.Height, precision)
	assert.InDelta(t, 5-d/2, aabb.TopLeft.X, precision)

	assert.Equal(t, b, b.RotatedAABB(0))
}
