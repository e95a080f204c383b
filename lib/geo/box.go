package geo

import (
	"fmt"
	"math"
)

type Box struct {
	TopLeft Point
	Width   float64
	Height  float64
}

func NewBox(x, y, width, height float64) *Box {
	return &Box{
		TopLeft: Point{X: x, Y: y},
		Width:   width,
		Height:  height,
	}
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.TopLeft.X, b.TopLeft.Y, b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

func (b *Box) Right() float64 {
	return b.TopLeft.X + b.Width
}

func (b *Box) Bottom() float64 {
	return b.TopLeft.Y + b.Height
}

func (b *Box) Area() float64 {
	return b.Width * b.Height
}

// Inflate grows the box by dx on the left and right and by dy on the top and bottom.
func (b *Box) Inflate(dx, dy float64) *Box {
	return NewBox(b.TopLeft.X-dx, b.TopLeft.Y-dy, b.Width+2*dx, b.Height+2*dy)
}

// Overlaps reports whether the interiors of b and o intersect.
// Boxes that only share an edge do not overlap.
func (b *Box) Overlaps(o *Box) bool {
	return b.TopLeft.X < o.Right() &&
		b.Right() > o.TopLeft.X &&
		b.TopLeft.Y < o.Bottom() &&
		b.Bottom() > o.TopLeft.Y
}

// Intersection returns the overlapping region of b and o, or nil if their interiors are disjoint.
func (b *Box) Intersection(o *Box) *Box {
	left := math.Max(b.TopLeft.X, o.TopLeft.X)
	top := math.Max(b.TopLeft.Y, o.TopLeft.Y)
	right := math.Min(b.Right(), o.Right())
	bottom := math.Min(b.Bottom(), o.Bottom())
	if right <= left || bottom <= top {
		return nil
	}
	return NewBox(left, top, right-left, bottom-top)
}

func (b *Box) Contains(p *Point) bool {
	return b.TopLeft.X <= p.X && p.X <= b.Right() &&
		b.TopLeft.Y <= p.Y && p.Y <= b.Bottom()
}

// Corners returns the corners of b rotated clockwise by degrees around its center,
// in order top-left, top-right, bottom-right, bottom-left.
func (b *Box) Corners(degrees float64) Points {
	tl := b.TopLeft
	corners := Points{
		NewPoint(tl.X, tl.Y),
		NewPoint(tl.X+b.Width, tl.Y),
		NewPoint(tl.X+b.Width, tl.Y+b.Height),
		NewPoint(tl.X, tl.Y+b.Height),
	}
	if degrees == 0 {
		return corners
	}
	center := b.Center()
	for i, c := range corners {
		corners[i] = c.Rotate(center, degrees)
	}
	return corners
}

// RotatedAABB is the smallest axis-aligned box containing b rotated by degrees.
func (b *Box) RotatedAABB(degrees float64) *Box {
	if degrees == 0 {
		return b.Copy()
	}
	return b.Corners(degrees).BoundingBox()
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %.0f, Height: %.0f}", b.TopLeft.ToString(), b.Width, b.Height)
}
