// Package gcshift simulates dropping an item onto the canvas. Items in the way are
// pushed aside breadth first; when that cannot work the drop is rejected and the
// dragged item falls back to its last valid placement.
package gcshift

import (
	"context"

	"cdr.dev/slog"

	"oss.terrastruct.com/gridcanvas/gccollide"
	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/lib/geo"
	"oss.terrastruct.com/gridcanvas/lib/go2"
	"oss.terrastruct.com/gridcanvas/lib/log"
)

type Request struct {
	ID string
	// Position is the proposed top-left before grid snapping.
	Position geo.Point
	// Width and Height override the item's size, for resizes. Zero keeps the current size.
	Width  float64
	Height float64

	GridUnit geo.Pair
	// Gap is the minimum clearance between items in pixels.
	Gap geo.Pair

	// A non-positive canvas dimension leaves that axis unbounded.
	CanvasWidth  float64
	CanvasHeight float64

	ShiftOnCollision bool

	// DropZone is the last valid placement of the current gesture, if any.
	DropZone *gctarget.Rect
	// DragStart is where the gesture began. It is the fallback when there is no drop zone yet.
	DragStart *gctarget.Rect

	// TriggerRatio overrides SHIFT_TRIGGER_OVERLAP_RATIO when positive.
	TriggerRatio float64
	// MaxSteps overrides the cascade bound when positive.
	MaxSteps int
}

type Result struct {
	Layout  gctarget.Layout `json:"previewLayout"`
	CanDrop bool            `json:"canDrop"`

	DraggedPreview *gctarget.Rect `json:"draggedPreview,omitempty"`
	DropZone       *gctarget.Rect `json:"dropZone,omitempty"`
	// DropZoneUpdated is set when a free placement differs from the request's drop zone.
	// Gesture owners adopt DropZone as the new last valid placement when it is set.
	DropZoneUpdated bool `json:"dropZoneUpdated"`
	ShowShadow      bool `json:"showShadow"`

	Verdict Verdict `json:"verdict"`
	// Shifted lists the items the cascade relocated, in the order they first moved.
	Shifted []string `json:"shifted,omitempty"`
}

// Simulate never mutates l. The returned layout keeps l's order.
func Simulate(ctx context.Context, l gctarget.Layout, req Request) Result {
	i, ok := l.Find(req.ID)
	if !ok {
		log.Debug(ctx, "shift target not found", slog.F("id", req.ID))
		return Result{Layout: l.Clone(), Verdict: NotFound}
	}
	if l[i].Locked {
		log.Debug(ctx, "shift target is locked", slog.F("id", req.ID))
		return Result{Layout: l.Clone(), Verdict: Locked}
	}

	s := newSimulation(l, i, req)
	res := s.run()
	log.Debug(ctx, "shift simulated",
		slog.F("id", req.ID),
		slog.F("verdict", res.Verdict.String()),
		slog.F("can_drop", res.CanDrop),
		slog.F("shifted", res.Shifted),
	)
	return res
}

type simulation struct {
	layout gctarget.Layout
	index  int
	// dragged is the item at its snapped proposal.
	dragged  gctarget.Item
	fallback *gctarget.Rect

	unit     geo.Pair
	gap      geo.Pair
	trigger  float64
	maxSteps int

	canvasWidth  float64
	canvasHeight float64

	dropZone *gctarget.Rect
	shift    bool
}

func newSimulation(l gctarget.Layout, i int, req Request) *simulation {
	w, h := l[i].Width, l[i].Height
	if req.Width > 0 {
		w = req.Width
	}
	if req.Height > 0 {
		h = req.Height
	}
	dragged := l[i].Place(gctarget.NewRect(
		geo.SnapToGrid(req.Position.X, req.GridUnit.X),
		geo.SnapToGrid(req.Position.Y, req.GridUnit.Y),
		w, h,
	))

	s := &simulation{
		layout:       l,
		index:        i,
		dragged:      dragged,
		unit:         req.GridUnit,
		gap:          req.Gap,
		trigger:      SHIFT_TRIGGER_OVERLAP_RATIO,
		maxSteps:     maxSteps(len(l)),
		canvasWidth:  req.CanvasWidth,
		canvasHeight: req.CanvasHeight,
		dropZone:     req.DropZone,
		shift:        req.ShiftOnCollision,
	}
	if req.TriggerRatio > 0 {
		s.trigger = req.TriggerRatio
	}
	if req.MaxSteps > 0 {
		s.maxSteps = req.MaxSteps
	}
	if req.DropZone != nil {
		s.fallback = go2.Pointer(*req.DropZone)
	} else if req.DragStart != nil {
		s.fallback = go2.Pointer(*req.DragStart)
	}
	return s
}

func (s *simulation) run() Result {
	if s.dragged.DisableCollision {
		return s.accept(Exempt, s.withDragged(s.dragged.Rect()), nil)
	}

	anyOverlap, partial := s.classify()
	switch {
	case !anyOverlap:
		return s.accept(Free, s.withDragged(s.dragged.Rect()), nil)
	case partial:
		return s.reject(Partial)
	case !s.shift:
		return s.reject(Blocked)
	}
	return s.cascade()
}

func (s *simulation) classify() (anyOverlap, partial bool) {
	for _, other := range s.layout {
		if !gccollide.Collides(s.dragged, other, s.gap) {
			continue
		}
		anyOverlap = true
		r := gccollide.OverlapRatio(s.dragged, other)
		if r > 0 && r < s.trigger {
			partial = true
		}
	}
	return anyOverlap, partial
}

func (s *simulation) cascade() Result {
	work := s.layout.Clone()
	work[s.index] = s.dragged

	queue := []int{s.index}
	processed := make([]bool, len(work))
	var shifted []string
	steps := 0

	for len(queue) > 0 {
		ci := queue[0]
		queue = queue[1:]
		steps++
		if steps > s.maxSteps {
			return s.reject(CascadeFailed)
		}

		cur := work[ci]
		for oj := range work {
			if oj == ci || !gccollide.Collides(cur, work[oj], s.gap) {
				continue
			}
			if ci == s.index && gccollide.OverlapRatio(cur, work[oj]) < s.trigger {
				return s.reject(GapConflict)
			}
			moved, ok := s.relocate(work, cur, oj)
			if !ok {
				return s.reject(CascadeFailed)
			}
			work[oj] = moved
			if !go2.Contains(shifted, moved.ID) {
				shifted = append(shifted, moved.ID)
			}
			if !processed[oj] {
				queue = append(queue, oj)
			}
		}
		processed[ci] = true
	}

	return s.accept(Shifted, work, shifted)
}

// relocate finds the first direction in which work[oj] clears cur and every other item.
func (s *simulation) relocate(work gctarget.Layout, cur gctarget.Item, oj int) (gctarget.Item, bool) {
	other := work[oj]
	if other.Locked {
		return other, false
	}
	for _, dir := range shiftDirections {
		var x, y float64
		switch dir {
		case geo.Bottom:
			x, y = other.X, cur.Y+cur.Height+s.gap.Y
		case geo.Right:
			x, y = cur.X+cur.Width+s.gap.X, other.Y
		case geo.Top:
			x, y = other.X, cur.Y-other.Height-s.gap.Y
		case geo.Left:
			x, y = cur.X-other.Width-s.gap.X, other.Y
		}
		candidate := other.MoveTo(
			geo.FloorToGrid(x, s.unit.X),
			geo.FloorToGrid(y, s.unit.Y),
		)
		if !s.inBounds(candidate) {
			continue
		}
		if s.clear(work, oj, candidate) {
			return candidate, true
		}
	}
	return other, false
}

func (s *simulation) inBounds(it gctarget.Item) bool {
	if it.X < 0 || it.Y < 0 {
		return false
	}
	if s.canvasWidth > 0 && it.X+it.Width > s.canvasWidth {
		return false
	}
	if s.canvasHeight > 0 && it.Y+it.Height > s.canvasHeight {
		return false
	}
	return true
}

func (s *simulation) clear(work gctarget.Layout, skip int, candidate gctarget.Item) bool {
	for k := range work {
		if k != skip && gccollide.Collides(candidate, work[k], s.gap) {
			return false
		}
	}
	return true
}

func (s *simulation) withDragged(r gctarget.Rect) gctarget.Layout {
	out := s.layout.Clone()
	out[s.index] = out[s.index].Place(r)
	return out
}

func (s *simulation) accept(v Verdict, l gctarget.Layout, shifted []string) Result {
	r := l[s.index].Rect()
	res := Result{
		Layout:         l,
		CanDrop:        true,
		DraggedPreview: go2.Pointer(r),
		DropZone:       go2.Pointer(r),
		ShowShadow:     true,
		Verdict:        v,
		Shifted:        shifted,
	}
	if v == Free {
		res.DropZoneUpdated = s.dropZone == nil || !sameRect(*s.dropZone, r)
	}
	return res
}

func (s *simulation) reject(v Verdict) Result {
	if s.fallback == nil {
		return Result{
			Layout:  s.withDragged(s.dragged.Rect()),
			Verdict: v,
		}
	}
	return Result{
		Layout:         s.withDragged(*s.fallback),
		DraggedPreview: go2.Pointer(*s.fallback),
		DropZone:       go2.Pointer(*s.fallback),
		ShowShadow:     true,
		Verdict:        v,
	}
}

func sameRect(a, b gctarget.Rect) bool {
	return a.X == b.X && a.Y == b.Y && a.Width == b.Width && a.Height == b.Height
}
