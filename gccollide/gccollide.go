// Package gccollide decides whether canvas items collide and by how much.
package gccollide

import (
	"math"

	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/lib/geo"
)

// Overlaps reports whether a and b intersect after each is grown by half the gap on
// every side. Shared edges do not count. Axis-aligned pairs compare boxes directly;
// if either item is rotated, both gap-grown rectangles are rotated about their centers
// and tested with the separating axis theorem.
func Overlaps(a, b gctarget.Item, gap geo.Pair) bool {
	ba := a.Box().Inflate(gap.X/2, gap.Y/2)
	bb := b.Box().Inflate(gap.X/2, gap.Y/2)
	if !a.Rotated() && !b.Rotated() {
		return ba.Overlaps(bb)
	}
	return geo.PolygonsOverlap(ba.Corners(a.Rotation), bb.Corners(b.Rotation))
}

// OverlapRatio is the intersection area of a and b divided by the smaller of their areas.
// Rotated items are approximated by their rotated bounding boxes, so the ratio is only
// an estimate for them and may exceed 1.
func OverlapRatio(a, b gctarget.Item) float64 {
	minArea := math.Min(a.Width*a.Height, b.Width*b.Height)
	if !(minArea > 0) {
		return 0
	}
	ba, bb := a.Box(), b.Box()
	if a.Rotated() || b.Rotated() {
		ba = ba.RotatedAABB(a.Rotation)
		bb = bb.RotatedAABB(b.Rotation)
	}
	in := ba.Intersection(bb)
	if in == nil {
		return 0
	}
	return in.Area() / minArea
}

// Exempt reports whether collision rules never apply between a and b.
func Exempt(a, b gctarget.Item) bool {
	return a.ID == b.ID || a.DisableCollision || b.DisableCollision
}

// Collides is Overlaps for items that are subject to collision rules.
func Collides(a, b gctarget.Item, gap geo.Pair) bool {
	return !Exempt(a, b) && Overlaps(a, b, gap)
}

// Colliding lists the items of l that collide with it, in layout order.
func Colliding(l gctarget.Layout, it gctarget.Item, gap geo.Pair) []gctarget.Item {
	var out []gctarget.Item
	for _, other := range l {
		if Collides(it, other, gap) {
			out = append(out, other)
		}
	}
	return out
}

// Free reports whether it collides with nothing in l.
func Free(l gctarget.Layout, it gctarget.Item, gap geo.Pair) bool {
	for _, other := range l {
		if Collides(it, other, gap) {
			return false
		}
	}
	return true
}
