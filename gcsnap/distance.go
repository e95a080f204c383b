package gcsnap

import (
	"fmt"
	"math"
	"sort"

	"oss.terrastruct.com/gridcanvas/gctarget"
)

// Targets holds at most one equal-spacing target per axis.
type Targets struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// TightThreshold is the distance-snap threshold derived from the edge snap threshold.
func TightThreshold(threshold float64) float64 {
	return math.Min(threshold, DISTANCE_SNAP_THRESHOLD)
}

// alignment reports whether a and b line up with the dragging rect along the cross axis.
// Rects are given row-wise: spacing runs along x, alignment is checked on y.
type alignment func(a, b, dragging gctarget.Rect, t float64) bool

// Tried in order: centers, top edges, bottom edges, then any touching edges.
var alignments = []alignment{
	func(a, b, d gctarget.Rect, t float64) bool {
		return near(a.CenterY(), d.CenterY(), t) && near(b.CenterY(), d.CenterY(), t)
	},
	func(a, b, d gctarget.Rect, t float64) bool {
		return near(a.Y, d.Y, t) && near(b.Y, d.Y, t)
	},
	func(a, b, d gctarget.Rect, t float64) bool {
		return near(a.Bottom(), d.Bottom(), t) && near(b.Bottom(), d.Bottom(), t)
	},
	func(a, b, d gctarget.Rect, t float64) bool {
		pair := near(a.Bottom(), b.Y, t) || near(a.Y, b.Bottom(), t)
		return pair && (near(a.Bottom(), d.Y, t) ||
			near(a.Y, d.Bottom(), t) ||
			near(b.Bottom(), d.Y, t) ||
			near(b.Y, d.Bottom(), t))
	},
}

// DistanceTargets finds positions for dragging that repeat the gap of an aligned pair of
// items, either just before the pair or just after it. threshold is used as given;
// see TightThreshold.
func DistanceTargets(items gctarget.Layout, dragging gctarget.Rect, threshold float64) Targets {
	rows := make([]gctarget.Rect, 0, len(items))
	cols := make([]gctarget.Rect, 0, len(items))
	for _, it := range items {
		rows = append(rows, it.Rect())
		cols = append(cols, transpose(it.Rect()))
	}

	var t Targets
	for _, align := range alignments {
		if x, ok := spacingTarget(rows, dragging, threshold, align); ok {
			t.X = &x
			break
		}
	}
	for _, align := range alignments {
		if y, ok := spacingTarget(cols, transpose(dragging), threshold, align); ok {
			t.Y = &y
			break
		}
	}
	return t
}

func spacingTarget(rects []gctarget.Rect, d gctarget.Rect, t float64, align alignment) (float64, bool) {
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			a, b := rects[i], rects[j]
			if !align(a, b, d, t) {
				continue
			}
			first, second := b, a
			if a.X < b.X {
				first, second = a, b
			}
			gap := second.X - first.Right()
			if gap <= 0 {
				continue
			}
			before := first.X - gap - d.Width
			after := second.Right() + gap
			toBefore := math.Abs(d.X - before)
			toAfter := math.Abs(d.X - after)
			if toBefore <= t && toBefore < toAfter {
				return before, true
			}
			if toAfter <= t {
				return after, true
			}
		}
	}
	return 0, false
}

// DistanceIndicators measures the gaps between dragging and the items sharing its row or
// column. When every item in a row overlaps every other, the gaps between adjacent items
// are reported instead. Distances are rounded to whole pixels.
func DistanceIndicators(items gctarget.Layout, dragging gctarget.Item) []gctarget.SnapLine {
	ind := &indicators{}
	ind.row(items, dragging, gctarget.Horizontal, "h")

	cols := make(gctarget.Layout, 0, len(items))
	for _, it := range items {
		cols = append(cols, transposeItem(it))
	}
	ind.row(cols, transposeItem(dragging), gctarget.Vertical, "v")
	return ind.lines
}

type indicators struct {
	lines []gctarget.SnapLine
	n     int
}

// row works on row-wise items. Column indicators pass transposed items, which makes
// Position the x coordinate and Start/End the y span, as vertical lines expect.
func (ind *indicators) row(items gctarget.Layout, d gctarget.Item, o gctarget.Orientation, suffix string) {
	sharesRow := func(a, b gctarget.Item) bool {
		return a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
	}
	var aligned gctarget.Layout
	for _, it := range items {
		if sharesRow(it, d) {
			aligned = append(aligned, it)
		}
	}
	if len(aligned) == 0 {
		return
	}

	all := append(aligned.Clone(), d)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].X < all[j].X
	})
	sameRow := true
	for _, a := range all {
		for _, b := range all {
			if !sharesRow(a, b) {
				sameRow = false
			}
		}
	}

	if sameRow {
		for i := 0; i+1 < len(all); i++ {
			l, r := all[i], all[i+1]
			gap := r.X - (l.X + l.Width)
			if gap <= 0 {
				continue
			}
			top := math.Max(l.Y, math.Max(r.Y, d.Y))
			bottom := math.Min(l.Y+l.Height, math.Min(r.Y+r.Height, d.Y+d.Height))
			ind.add(o, suffix, (top+bottom)/2, l.X+l.Width, r.X, gap, l.ID, r.ID)
		}
		return
	}

	for _, it := range aligned {
		var gap, start, end float64
		if it.X+it.Width < d.X {
			gap, start, end = d.X-(it.X+it.Width), it.X+it.Width, d.X
		} else if it.X > d.X+d.Width {
			gap, start, end = it.X-(d.X+d.Width), d.X+d.Width, it.X
		}
		if gap <= 0 {
			continue
		}
		top := math.Max(it.Y, d.Y)
		bottom := math.Min(it.Y+it.Height, d.Y+d.Height)
		ind.add(o, suffix, (top+bottom)/2, start, end, gap, d.ID, it.ID)
	}
}

func (ind *indicators) add(o gctarget.Orientation, suffix string, pos, start, end, gap float64, refs ...string) {
	ind.lines = append(ind.lines, gctarget.SnapLine{
		ID:             fmt.Sprintf("distance-indicator-%s-%d", suffix, ind.n),
		Orientation:    o,
		Position:       pos,
		Start:          start,
		End:            end,
		Kind:           gctarget.ItemDistance,
		Distance:       math.Floor(gap + 0.5),
		ReferenceItems: refs,
	})
	ind.n++
}

func near(a, b, t float64) bool {
	return math.Abs(a-b) <= t
}

func transpose(r gctarget.Rect) gctarget.Rect {
	return gctarget.Rect{X: r.Y, Y: r.X, Width: r.Height, Height: r.Width, Rotation: r.Rotation}
}

func transposeItem(it gctarget.Item) gctarget.Item {
	it.X, it.Y = it.Y, it.X
	it.Width, it.Height = it.Height, it.Width
	return it
}
