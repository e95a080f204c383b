// Package gczorder manages the paint order of canvas items.
//
// Every operation normalizes first, so zIndex values end up as ranks 0..N-1 that
// respect the previous order, with ties broken by array order. The returned layout
// keeps the input array order; only zIndex values change.
package gczorder

import (
	"sort"

	"oss.terrastruct.com/gridcanvas/gctarget"
)

func Normalize(l gctarget.Layout) gctarget.Layout {
	out := l.Clone()
	for rank, i := range paintOrder(l) {
		out[i].ZIndex = rank
	}
	return out
}

// MoveUp swaps id with the item directly above it.
func MoveUp(l gctarget.Layout, id string) gctarget.Layout {
	return swapNeighbor(l, id, 1)
}

// MoveDown swaps id with the item directly below it.
func MoveDown(l gctarget.Layout, id string) gctarget.Layout {
	return swapNeighbor(l, id, -1)
}

func swapNeighbor(l gctarget.Layout, id string, dir int) gctarget.Layout {
	i, ok := l.Find(id)
	if !ok {
		return l.Clone()
	}
	out := Normalize(l)
	z := out[i].ZIndex + dir
	if z < 0 || z >= len(out) {
		return out
	}
	for j := range out {
		if out[j].ZIndex == z {
			out[j].ZIndex = out[i].ZIndex
			out[i].ZIndex = z
			break
		}
	}
	return out
}

// MoveToTop places id one above the current maximum. Its old rank is left empty
// until the next normalization.
func MoveToTop(l gctarget.Layout, id string) gctarget.Layout {
	out := Normalize(l)
	i, ok := out.Find(id)
	if !ok {
		return out
	}
	out[i].ZIndex = len(out)
	return out
}

// MoveToBottom gives id a zIndex of -1 and shifts every other item up by one.
// Unlike MoveToTop the other items are renumbered, so the two are not mirror images.
func MoveToBottom(l gctarget.Layout, id string) gctarget.Layout {
	out := Normalize(l)
	i, ok := out.Find(id)
	if !ok {
		return out
	}
	for j := range out {
		if j == i {
			out[j].ZIndex = -1
		} else {
			out[j].ZIndex++
		}
	}
	return out
}

// SortByZIndex returns l in paint order, back to front. Ties keep array order.
// This is for rendering and hit testing; it is not a layout mutation.
func SortByZIndex(l gctarget.Layout) gctarget.Layout {
	out := make(gctarget.Layout, 0, len(l))
	for _, i := range paintOrder(l) {
		out = append(out, l[i])
	}
	return out
}

func paintOrder(l gctarget.Layout) []int {
	order := make([]int, len(l))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return l[order[a]].ZIndex < l[order[b]].ZIndex
	})
	return order
}
