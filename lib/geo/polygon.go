package geo

import "math"

func (ps Points) BoundingBox() *Box {
	if len(ps) == 0 {
		return NewBox(0, 0, 0, 0)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range ps {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return NewBox(minX, minY, maxX-minX, maxY-minY)
}

// PolygonsOverlap tests two convex polygons with the separating axis theorem.
// Every edge normal of both polygons is a candidate axis; polygons whose projections
// only touch on some axis are considered disjoint.
func PolygonsOverlap(a, b Points) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	for _, poly := range []Points{a, b} {
		for i := range poly {
			p1 := poly[i]
			p2 := poly[(i+1)%len(poly)]
			if p1.X == p2.X && p1.Y == p2.Y {
				continue
			}
			axis := EdgeNormal(p1, p2)

			minA, maxA := project(a, axis)
			minB, maxB := project(b, axis)
			if maxA <= minB || maxB <= minA {
				return false
			}
		}
	}
	return true
}

func project(ps Points, axis Vector) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, p := range ps {
		d := p.ToVector().Dot(axis)
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}
