package gccli

import (
	"context"

	"cdr.dev/slog"

	"oss.terrastruct.com/gridcanvas/gcconfig"
	"oss.terrastruct.com/gridcanvas/gcselect"
	"oss.terrastruct.com/gridcanvas/lib/geo"
	"oss.terrastruct.com/gridcanvas/lib/log"
	"oss.terrastruct.com/gridcanvas/lib/xmain"
)

func selectCmd(ctx context.Context, ms *xmain.State, cfg gcconfig.Config, f flags, args []string) error {
	if len(args) != 5 {
		return xmain.UsageErrorf("select must be passed a layout file and x0 y0 x1 y1")
	}
	l, err := readLayout(ms, args[0])
	if err != nil {
		return err
	}
	nums, err := parseFloats(args[1:], "x0", "y0", "x1", "y1")
	if err != nil {
		return err
	}

	start := geo.Point{X: nums[0], Y: nums[1]}
	if !gcselect.InCanvas(start, cfg.CanvasWidth, cfg.CanvasHeight) {
		return xmain.UsageErrorf("selection must start inside the canvas, got %s", start.ToString())
	}
	current := geo.Point{X: nums[2], Y: nums[3]}
	if !gcselect.Started(start, current) {
		ms.Log.Warn.Printf("pointer moved less than %v pixels: a host would treat this as a click", gcselect.MIN_DRAG_DISTANCE)
	}

	sel := gcselect.Evaluate(l, start, current, cfg.SelectOptions())
	log.Debug(ctx, "selection evaluated", slog.F("rect", sel.Rect.ToString()), slog.F("valid", sel.Valid))
	return writeJSON(ms, *f.out, sel)
}
