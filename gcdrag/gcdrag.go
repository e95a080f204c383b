// Package gcdrag owns the state of a single move or resize gesture: where it began,
// the last valid placement seen so far, and the size being dragged. Every pointer
// sample runs through the shift simulator; the session only carries what must persist
// between samples.
package gcdrag

import (
	"context"
	"fmt"
	"math"
	"time"

	"cdr.dev/slog"
	"github.com/google/uuid"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/gridcanvas/gcshift"
	"oss.terrastruct.com/gridcanvas/gcsnap"
	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/gctransform"
	"oss.terrastruct.com/gridcanvas/lib/geo"
	"oss.terrastruct.com/gridcanvas/lib/go2"
	"oss.terrastruct.com/gridcanvas/lib/log"
)

type Options struct {
	GridUnit   geo.Pair
	ResizeUnit geo.Pair
	Gap        geo.Pair

	CanvasWidth  float64
	CanvasHeight float64

	ShiftOnCollision bool
	TriggerRatio     float64

	// Snap enables guide snapping for moves when set.
	Snap *gcsnap.Options
	// VelocityLimit gates snapping by pointer speed in px/ms. Zero uses
	// gcsnap.DEFAULT_VELOCITY_LIMIT.
	VelocityLimit float64
}

type Session struct {
	ID     uuid.UUID `json:"id"`
	Kind   Kind      `json:"kind"`
	ItemID string    `json:"itemId"`

	// Start is the item's rectangle when the gesture began, grid snapped for moves.
	Start gctarget.Rect `json:"start"`
	// DropZone is the last valid placement, nil until a move passes DRAG_THRESHOLD.
	DropZone *gctarget.Rect `json:"dropZone,omitempty"`
	// Size is the width and height currently being dragged.
	Size geo.Pair `json:"size"`

	opts   Options
	gate   *gcsnap.Gate
	active bool
	ended  bool
}

// Proposal is one pointer sample.
type Proposal struct {
	// X and Y are the item's proposed top-left.
	X float64
	Y float64
	// Width and Height are the raw proposed size of a resize. Zero keeps the current size.
	Width  float64
	Height float64
	// At timestamps the sample for snap gating. The zero time skips gating.
	At time.Time
}

type Frame struct {
	// Active is false while a move has not passed DRAG_THRESHOLD. Nothing else is set then.
	Active bool           `json:"active"`
	Result gcshift.Result `json:"result"`
	// Preview is the simulated layout with the dragged item under the pointer.
	Preview gctarget.Layout `json:"preview,omitempty"`
	Snap    *gcsnap.Result  `json:"snap,omitempty"`
}

type Commit struct {
	// Committed is false when the gesture reverted to its last valid placement.
	Committed bool            `json:"committed"`
	Rect      gctarget.Rect   `json:"rect"`
	Verdict   gcshift.Verdict `json:"verdict"`
	Shifted   []string        `json:"shifted,omitempty"`
}

func Begin(l gctarget.Layout, id string, kind Kind, opts Options) (_ *Session, err error) {
	defer xdefer.Errorf(&err, "failed to begin %v of %q", kind, id)

	it, ok := l.Get(id)
	if !ok {
		return nil, fmt.Errorf("item %q not found", id)
	}
	if it.Locked {
		return nil, gctransform.ErrLocked
	}

	s := &Session{
		ID:     uuid.New(),
		Kind:   kind,
		ItemID: id,
		Start:  it.Rect(),
		Size:   geo.Pair{X: it.Width, Y: it.Height},
		opts:   opts,
		gate:   gcsnap.NewGate(opts.VelocityLimit),
	}
	switch kind {
	case Move:
		s.Start.X = geo.SnapToGrid(it.X, opts.GridUnit.X)
		s.Start.Y = geo.SnapToGrid(it.Y, opts.GridUnit.Y)
	case Resize:
		s.DropZone = go2.Pointer(it.Rect())
		s.active = true
	default:
		return nil, fmt.Errorf("unknown gesture kind %d", kind)
	}
	return s, nil
}

// Move simulates the drop at p and returns what to show for it.
func (s *Session) Move(ctx context.Context, l gctarget.Layout, p Proposal) Frame {
	if s.ended {
		log.Warn(ctx, "move after gesture ended", slog.F("session", s.ID.String()))
		return Frame{}
	}
	if !s.active {
		if math.Abs(p.X-s.Start.X) < DRAG_THRESHOLD && math.Abs(p.Y-s.Start.Y) < DRAG_THRESHOLD {
			return Frame{}
		}
		s.active = true
		if s.DropZone == nil {
			s.DropZone = go2.Pointer(s.Start)
		}
	}

	s.Size = s.size(p)
	pos, snap := s.position(l, p)

	res := gcshift.Simulate(ctx, l, s.request(pos, s.DropZone))
	if res.DropZoneUpdated && res.DropZone != nil {
		s.DropZone = go2.Pointer(*res.DropZone)
	}

	return Frame{
		Active: true,
		Result: res,
		Preview: res.Layout.Replace(s.ItemID, func(it gctarget.Item) gctarget.Item {
			return it.Place(gctarget.NewRect(p.X, p.Y, s.Size.X, s.Size.Y))
		}),
		Snap: snap,
	}
}

// End simulates the final drop at p and returns the layout to commit. A rejected drop
// puts the item back at the last valid placement. The session is finished afterwards.
func (s *Session) End(ctx context.Context, l gctarget.Layout, p Proposal) (gctarget.Layout, Commit) {
	s.ended = true

	last := s.Start
	if s.DropZone != nil {
		last = *s.DropZone
	}

	s.Size = s.size(p)
	pos, _ := s.position(l, p)

	res := gcshift.Simulate(ctx, l, s.request(pos, &last))
	if !res.CanDrop {
		log.Debug(ctx, "gesture reverted",
			slog.F("session", s.ID.String()),
			slog.F("verdict", res.Verdict.String()),
			slog.F("rect", last.ToString()),
		)
		out := l.Replace(s.ItemID, func(it gctarget.Item) gctarget.Item {
			return it.Place(last)
		})
		return out, Commit{
			Rect:    last,
			Verdict: res.Verdict,
		}
	}

	r := gctarget.NewRect(
		geo.SnapToGrid(pos.X, s.opts.GridUnit.X),
		geo.SnapToGrid(pos.Y, s.opts.GridUnit.Y),
		s.Size.X, s.Size.Y,
	)
	log.Debug(ctx, "gesture committed", slog.F("session", s.ID.String()), slog.F("rect", r.ToString()))
	out := res.Layout.Replace(s.ItemID, func(it gctarget.Item) gctarget.Item {
		return it.Place(r)
	})
	return out, Commit{
		Committed: true,
		Rect:      r,
		Verdict:   res.Verdict,
		Shifted:   res.Shifted,
	}
}

func (s *Session) size(p Proposal) geo.Pair {
	if s.Kind != Resize {
		return s.Size
	}
	w, h := s.Size.X, s.Size.Y
	if p.Width > 0 {
		w = p.Width
	}
	if p.Height > 0 {
		h = p.Height
	}
	w, h = gctransform.SnapSize(w, h, s.opts.ResizeUnit)
	return geo.Pair{X: w, Y: h}
}

// position applies guide snapping to a move when it is enabled and the pointer is
// slow enough.
func (s *Session) position(l gctarget.Layout, p Proposal) (geo.Point, *gcsnap.Result) {
	pos := geo.Point{X: p.X, Y: p.Y}
	if s.Kind != Move || s.opts.Snap == nil {
		return pos, nil
	}
	if !p.At.IsZero() {
		s.gate.Observe(pos, p.At)
		if !s.gate.Allow() {
			return pos, nil
		}
	}
	r := gcsnap.Compute(l, s.ItemID, gctarget.NewRect(p.X, p.Y, s.Size.X, s.Size.Y), *s.opts.Snap)
	return geo.Point{X: r.X, Y: r.Y}, &r
}

func (s *Session) request(pos geo.Point, dropZone *gctarget.Rect) gcshift.Request {
	start := s.Start
	return gcshift.Request{
		ID:               s.ItemID,
		Position:         pos,
		Width:            s.Size.X,
		Height:           s.Size.Y,
		GridUnit:         s.opts.GridUnit,
		Gap:              s.opts.Gap,
		CanvasWidth:      s.opts.CanvasWidth,
		CanvasHeight:     s.opts.CanvasHeight,
		ShiftOnCollision: s.opts.ShiftOnCollision,
		DropZone:         dropZone,
		DragStart:        &start,
		TriggerRatio:     s.opts.TriggerRatio,
	}
}
