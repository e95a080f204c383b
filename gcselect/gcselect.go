// Package gcselect evaluates marquee selections drawn on the canvas.
package gcselect

import (
	"math"

	"oss.terrastruct.com/gridcanvas/gccollide"
	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/lib/geo"
	"oss.terrastruct.com/gridcanvas/lib/go2"
)

const selectionID = "__selection__"

type Options struct {
	GridUnit geo.Pair
	// A non-positive canvas dimension leaves that axis unbounded.
	CanvasWidth  float64
	CanvasHeight float64

	OnlyEmptySpace bool
	// MinArea defaults to one grid cell when zero. A free grid has no cell, so without
	// MinArea a click with no drag is a valid selection of area 0.
	MinArea float64
}

type Selection struct {
	Rect gctarget.Rect `json:"rect"`

	AreaValid       bool `json:"areaValid"`
	EmptySpaceValid bool `json:"emptySpaceValid"`
	Valid           bool `json:"valid"`

	// Selected is always empty when the selection is restricted to empty space.
	Selected []string `json:"selected,omitempty"`
}

// Evaluate snaps the rectangle spanned by start and current to the grid and checks it
// against l. start is taken as is; current is clamped into the canvas first.
func Evaluate(l gctarget.Layout, start, current geo.Point, opts Options) Selection {
	unit := opts.GridUnit
	current.X = clampAxis(current.X, opts.CanvasWidth)
	current.Y = clampAxis(current.Y, opts.CanvasHeight)

	x0, y0 := geo.SnapToGrid(start.X, unit.X), geo.SnapToGrid(start.Y, unit.Y)
	x1, y1 := geo.SnapToGrid(current.X, unit.X), geo.SnapToGrid(current.Y, unit.Y)

	r := gctarget.NewRect(
		math.Min(x0, x1),
		math.Min(y0, y1),
		math.Max(unit.X, math.Abs(x1-x0)),
		math.Max(unit.Y, math.Abs(y1-y0)),
	)

	minArea := opts.MinArea
	if minArea == 0 {
		minArea = unit.Cell()
	}

	sel := Selection{
		Rect:            r,
		AreaValid:       r.Area() >= minArea,
		EmptySpaceValid: true,
	}
	if opts.OnlyEmptySpace {
		it := r.WithID(selectionID)
		for _, other := range l {
			if gccollide.Overlaps(it, other, geo.Uniform(EMPTY_SPACE_GAP)) {
				sel.EmptySpaceValid = false
				break
			}
		}
	} else {
		sel.Selected = Covered(l, r)
	}
	sel.Valid = sel.AreaValid && sel.EmptySpaceValid
	return sel
}

// Covered lists the items of l whose unrotated area r covers by at least
// ITEM_SELECTION_COVERAGE_THRESHOLD, in layout order.
func Covered(l gctarget.Layout, r gctarget.Rect) []string {
	if !(r.Area() > 0) {
		return nil
	}
	var ids []string
	sb := r.Box()
	for _, it := range l {
		area := it.Width * it.Height
		if !(area > 0) {
			continue
		}
		in := sb.Intersection(it.Box())
		if in == nil {
			continue
		}
		if in.Area()/area >= ITEM_SELECTION_COVERAGE_THRESHOLD {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Started reports whether the pointer has travelled far enough from start for a press
// to count as a selection.
func Started(start, current geo.Point) bool {
	return start.DistanceTo(&current) >= MIN_DRAG_DISTANCE
}

// InCanvas reports whether a selection may begin at p.
func InCanvas(p geo.Point, width, height float64) bool {
	if p.X < 0 || p.Y < 0 {
		return false
	}
	if width > 0 && p.X > width {
		return false
	}
	if height > 0 && p.Y > height {
		return false
	}
	return true
}

func clampAxis(v, max float64) float64 {
	if max <= 0 {
		return math.Max(0, v)
	}
	return go2.Clamp(v, 0, max)
}
