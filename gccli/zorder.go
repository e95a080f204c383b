package gccli

import (
	"context"

	"cdr.dev/slog"

	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/gczorder"
	"oss.terrastruct.com/gridcanvas/lib/log"
	"oss.terrastruct.com/gridcanvas/lib/xmain"
)

var zorderOps = map[string]func(gctarget.Layout, string) gctarget.Layout{
	"up":     gczorder.MoveUp,
	"down":   gczorder.MoveDown,
	"top":    gczorder.MoveToTop,
	"bottom": gczorder.MoveToBottom,
}

func zorderCmd(ctx context.Context, ms *xmain.State, f flags, args []string) error {
	if len(args) < 2 {
		return xmain.UsageErrorf("zorder must be passed a layout file and an operation")
	}
	l, err := readLayout(ms, args[0])
	if err != nil {
		return err
	}

	var out gctarget.Layout
	switch op := args[1]; op {
	case "normalize", "sort":
		if len(args) != 2 {
			return xmain.UsageErrorf("zorder %s accepts no item id", op)
		}
		if op == "normalize" {
			out = gczorder.Normalize(l)
		} else {
			out = gczorder.SortByZIndex(l)
		}
	default:
		fn, ok := zorderOps[op]
		if !ok {
			return xmain.UsageErrorf("unknown zorder operation %q", op)
		}
		if len(args) != 3 {
			return xmain.UsageErrorf("zorder %s must be passed an item id", op)
		}
		if _, ok := l.Find(args[2]); !ok {
			ms.Log.Warn.Printf("item %q not found", args[2])
		}
		out = fn(l, args[2])
	}
	log.Debug(ctx, "reordered", slog.F("op", args[1]))
	return writeJSON(ms, *f.out, out)
}
