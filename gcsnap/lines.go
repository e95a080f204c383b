package gcsnap

import (
	"fmt"

	"oss.terrastruct.com/gridcanvas/gctarget"
)

// GridLines returns the canvas center guides when grid-center snapping is enabled.
// canvasX and canvasY offset the canvas origin.
func GridLines(width, height float64, b gctarget.SnapBehavior, canvasX, canvasY float64) []gctarget.SnapLine {
	if !b.GridCenter {
		return nil
	}
	return []gctarget.SnapLine{
		{
			ID:          "canvas-center-v-0",
			Orientation: gctarget.Vertical,
			Position:    canvasX + width/2,
			Start:       canvasY,
			End:         canvasY + height,
			Kind:        gctarget.GridCenter,
		},
		{
			ID:          "canvas-center-h-1",
			Orientation: gctarget.Horizontal,
			Position:    canvasY + height/2,
			Start:       canvasX,
			End:         canvasX + width,
			Kind:        gctarget.GridCenter,
		},
	}
}

// ItemLines returns edge and center guides for every item except excludeID.
// Each guide spans its item padded by threshold on both ends.
func ItemLines(items gctarget.Layout, excludeID string, threshold float64, b gctarget.SnapBehavior) []gctarget.SnapLine {
	var lines []gctarget.SnapLine
	n := 0
	add := func(name string, o gctarget.Orientation, pos, start, end float64, kind gctarget.SnapKind, itemID string) {
		lines = append(lines, gctarget.SnapLine{
			ID:          fmt.Sprintf("item-%s-%d", name, n),
			Orientation: o,
			Position:    pos,
			Start:       start,
			End:         end,
			Kind:        kind,
			ItemID:      itemID,
		})
		n++
	}

	for _, it := range items {
		if it.ID == excludeID {
			continue
		}
		r := it.Rect()
		top, bottom := r.Y-threshold, r.Bottom()+threshold
		left, right := r.X-threshold, r.Right()+threshold

		if b.ItemEdges {
			add("v-left", gctarget.Vertical, r.X, top, bottom, gctarget.ItemEdge, it.ID)
			add("v-right", gctarget.Vertical, r.Right(), top, bottom, gctarget.ItemEdge, it.ID)
			add("h-top", gctarget.Horizontal, r.Y, left, right, gctarget.ItemEdge, it.ID)
			add("h-bottom", gctarget.Horizontal, r.Bottom(), left, right, gctarget.ItemEdge, it.ID)
		}
		if b.ItemCenters {
			add("v-center", gctarget.Vertical, r.CenterX(), top, bottom, gctarget.ItemCenter, it.ID)
			add("h-center", gctarget.Horizontal, r.CenterY(), left, right, gctarget.ItemCenter, it.ID)
		}
	}
	return lines
}

// Relevant keeps the lines that one of r's edges or its center already sits on.
func Relevant(lines []gctarget.SnapLine, r gctarget.Rect) []gctarget.SnapLine {
	var out []gctarget.SnapLine
	for _, l := range lines {
		near, far, center := r.X, r.Right(), r.CenterX()
		if l.Orientation == gctarget.Horizontal {
			near, far, center = r.Y, r.Bottom(), r.CenterY()
		}
		if closest(l.Position, near, far, center) <= ALIGNMENT_TOLERANCE {
			out = append(out, l)
		}
	}
	return out
}

// Extend stretches each line so that it also spans r.
func Extend(lines []gctarget.SnapLine, r gctarget.Rect) []gctarget.SnapLine {
	out := make([]gctarget.SnapLine, len(lines))
	for i, l := range lines {
		lo, hi := r.Y, r.Bottom()
		if l.Orientation == gctarget.Horizontal {
			lo, hi = r.X, r.Right()
		}
		if lo < l.Start {
			l.Start = lo
		}
		if hi > l.End {
			l.End = hi
		}
		out[i] = l
	}
	return out
}
