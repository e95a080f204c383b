package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := NewVector(1, 2)
	b := NewVector(3, 4)

	assert.Equal(t, NewVector(4, 6), a.Add(b))
	assert.Equal(t, NewVector(-2, -2), a.Minus(b))
	assert.Equal(t, NewVector(3, 6), a.Multiply(3))
	assert.Equal(t, NewVector(-1, -2), a.Multiply(-1))
	assert.Equal(t, 11.0, a.Dot(b))
	assert.Equal(t, 0.0, NewVector(1, 0).Dot(NewVector(0, 1)))
}

func TestEdgeNormal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		p1, p2 *Point
		exp    Vector
	}{
		{
			name: "along_x",
			p1:   &Point{0, 0},
			p2:   &Point{10, 0},
			exp:  NewVector(0, 1),
		},
		{
			name: "along_y",
			p1:   &Point{0, 0},
			p2:   &Point{0, 4},
			exp:  NewVector(-1, 0),
		},
		{
			name: "diagonal",
			p1:   &Point{1, 1},
			p2:   &Point{4, 5},
			exp:  NewVector(-0.8, 0.6),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n := EdgeNormal(tc.p1, tc.p2)
			assert.InDelta(t, tc.exp.X, n.X, precision)
			assert.InDelta(t, tc.exp.Y, n.Y, precision)
			assert.InDelta(t, 1, n.Dot(n), precision)
			assert.InDelta(t, 0, n.Dot(tc.p1.VectorTo(tc.p2)), precision)
		})
	}
}

func TestVectorToPoint(t *testing.T) {
	v := NewVector(3.789, -0.731)
	p := v.ToPoint()

	assert.Equal(t, v.X, p.X)
	assert.Equal(t, v.Y, p.Y)
	assert.Equal(t, v, p.ToVector())
}
