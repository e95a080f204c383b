package gccli

import (
	"context"
	"fmt"
	"strings"

	"cdr.dev/slog"

	"oss.terrastruct.com/gridcanvas/gccollide"
	"oss.terrastruct.com/gridcanvas/gcconfig"
	"oss.terrastruct.com/gridcanvas/gcdrag"
	"oss.terrastruct.com/gridcanvas/gcshift"
	"oss.terrastruct.com/gridcanvas/gcsnap"
	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/gctransform"
	"oss.terrastruct.com/gridcanvas/lib/geo"
	"oss.terrastruct.com/gridcanvas/lib/go2"
	"oss.terrastruct.com/gridcanvas/lib/log"
	"oss.terrastruct.com/gridcanvas/lib/xmain"
)

type gesture struct {
	Session *gcdrag.Session `json:"session"`
	Frame   gcdrag.Frame    `json:"frame"`
	Commit  gcdrag.Commit   `json:"commit"`
	Layout  gctarget.Layout `json:"layout"`
}

func simulateCmd(ctx context.Context, ms *xmain.State, cfg gcconfig.Config, f flags, args []string) error {
	if len(args) != 4 && len(args) != 6 {
		return xmain.UsageErrorf("simulate must be passed a layout file, an item id, x and y, and optionally width and height")
	}
	l, err := readLayout(ms, args[0])
	if err != nil {
		return err
	}
	it, ok := l.Get(args[1])
	if !ok {
		return fmt.Errorf("item %q not found", args[1])
	}
	nums, err := parseFloats(args[2:], "x", "y", "width", "height")
	if err != nil {
		return err
	}

	req := cfg.ShiftRequest(it.ID, geo.Point{X: nums[0], Y: nums[1]})
	req.DragStart = go2.Pointer(it.Rect())
	if len(nums) == 4 {
		req.Width, req.Height = gctransform.SnapSize(nums[2], nums[3], cfg.ResizeUnit)
	}

	res := gcshift.Simulate(ctx, l, req)
	log.Info(ctx, "simulated", slog.F("verdict", res.Verdict.String()), slog.F("can_drop", res.CanDrop))
	return writeJSON(ms, *f.out, res)
}

func dropCmd(ctx context.Context, ms *xmain.State, cfg gcconfig.Config, f flags, args []string) error {
	if len(args) != 4 {
		return xmain.UsageErrorf("drop must be passed a layout file, an item id, x and y")
	}
	l, err := readLayout(ms, args[0])
	if err != nil {
		return err
	}
	nums, err := parseFloats(args[2:], "x", "y")
	if err != nil {
		return err
	}

	s, err := gcdrag.Begin(l, args[1], gcdrag.Move, cfg.DragOptions())
	if err != nil {
		return err
	}
	p := gcdrag.Proposal{X: nums[0], Y: nums[1]}
	frame := s.Move(ctx, l, p)
	out, commit := s.End(ctx, l, p)
	logCommit(ctx, ms, commit, blockers(l, s.ItemID, gctarget.NewRect(p.X, p.Y, s.Size.X, s.Size.Y), cfg.Gap))

	return writeJSON(ms, *f.out, gesture{
		Session: s,
		Frame:   frame,
		Commit:  commit,
		Layout:  out,
	})
}

func resizeCmd(ctx context.Context, ms *xmain.State, cfg gcconfig.Config, f flags, args []string) error {
	if len(args) != 5 {
		return xmain.UsageErrorf("resize must be passed a layout file, an item id, a handle, dx and dy")
	}
	l, err := readLayout(ms, args[0])
	if err != nil {
		return err
	}
	it, ok := l.Get(args[1])
	if !ok {
		return fmt.Errorf("item %q not found", args[1])
	}
	handle, err := geo.ParseOrientation(args[2])
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	nums, err := parseFloats(args[3:], "dx", "dy")
	if err != nil {
		return err
	}

	rz, err := gctransform.NewResizer(it, handle)
	if err != nil {
		return err
	}
	r := rz.Resize(nums[0], nums[1])

	s, err := gcdrag.Begin(l, it.ID, gcdrag.Resize, cfg.DragOptions())
	if err != nil {
		return err
	}
	p := gcdrag.Proposal{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	frame := s.Move(ctx, l, p)
	out, commit := s.End(ctx, l, p)
	logCommit(ctx, ms, commit, blockers(l, it.ID, r, cfg.Gap))

	return writeJSON(ms, *f.out, gesture{
		Session: s,
		Frame:   frame,
		Commit:  commit,
		Layout:  out,
	})
}

func logCommit(ctx context.Context, ms *xmain.State, c gcdrag.Commit, blocking []string) {
	if c.Committed {
		log.Info(ctx, "committed", slog.F("rect", c.Rect.ToString()), slog.F("shifted", c.Shifted))
		return
	}
	ms.Log.Warn.Printf("drop rejected (%s): reverted to %s", c.Verdict, c.Rect.ToString())
	if len(blocking) > 0 {
		ms.Log.Warn.Printf("blocked by %s", strings.Join(blocking, ", "))
	}
}

// blockers lists the ids of the items in l that the item id would collide with at r.
func blockers(l gctarget.Layout, id string, r gctarget.Rect, gap geo.Pair) []string {
	it, ok := l.Get(id)
	if !ok {
		return nil
	}
	var ids []string
	for _, other := range gccollide.Colliding(l, it.Place(r), gap) {
		ids = append(ids, other.ID)
	}
	return ids
}

func snapCmd(ctx context.Context, ms *xmain.State, cfg gcconfig.Config, f flags, args []string) error {
	if len(args) != 4 {
		return xmain.UsageErrorf("snap must be passed a layout file, an item id, x and y")
	}
	l, err := readLayout(ms, args[0])
	if err != nil {
		return err
	}
	it, ok := l.Get(args[1])
	if !ok {
		return fmt.Errorf("item %q not found", args[1])
	}
	nums, err := parseFloats(args[2:], "x", "y")
	if err != nil {
		return err
	}

	r := it.Rect()
	r.X, r.Y = nums[0], nums[1]
	res := gcsnap.Compute(l, it.ID, r, cfg.SnapOptions())
	log.Debug(ctx, "snapped", slog.F("x", res.X), slog.F("y", res.Y), slog.F("guides", len(res.Guides)))
	return writeJSON(ms, *f.out, res)
}
