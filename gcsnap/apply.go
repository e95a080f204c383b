package gcsnap

import (
	"math"

	"oss.terrastruct.com/gridcanvas/gctarget"
)

type Snapped struct {
	X     float64             `json:"x"`
	Y     float64             `json:"y"`
	Lines []gctarget.SnapLine `json:"snappedLines"`
}

type candidate struct {
	distance float64
	position float64
	line     gctarget.SnapLine
}

// Apply snaps r to the closest vertical and the closest horizontal line within threshold.
// A line is matched against r's near edge, far edge and center; on equal distances the
// near edge wins, then the far edge. Between lines, the first one at the minimum distance wins.
func Apply(r gctarget.Rect, lines []gctarget.SnapLine, threshold float64) Snapped {
	var bestV, bestH *candidate
	for _, l := range lines {
		switch l.Orientation {
		case gctarget.Vertical:
			c := match(l, r.X, r.Width)
			if c.distance <= threshold && (bestV == nil || c.distance < bestV.distance) {
				bestV = &c
			}
		case gctarget.Horizontal:
			c := match(l, r.Y, r.Height)
			if c.distance <= threshold && (bestH == nil || c.distance < bestH.distance) {
				bestH = &c
			}
		}
	}

	s := Snapped{X: r.X, Y: r.Y}
	if bestV != nil {
		s.X = bestV.position
		s.Lines = append(s.Lines, bestV.line)
	}
	if bestH != nil {
		s.Y = bestH.position
		s.Lines = append(s.Lines, bestH.line)
	}
	return s
}

// match aligns the span [start, start+size] to l along l's axis.
func match(l gctarget.SnapLine, start, size float64) candidate {
	near := math.Abs(start - l.Position)
	far := math.Abs(start + size - l.Position)
	center := math.Abs(start + size/2 - l.Position)
	d := math.Min(near, math.Min(far, center))

	c := candidate{distance: d, line: l}
	switch d {
	case near:
		c.position = l.Position
	case far:
		c.position = l.Position - size
	default:
		c.position = l.Position - size/2
	}
	return c
}

func closest(pos float64, vs ...float64) float64 {
	d := math.Inf(1)
	for _, v := range vs {
		d = math.Min(d, math.Abs(v-pos))
	}
	return d
}
