package gccli

import (
	"context"
	mathrand "math/rand"

	"oss.terrastruct.com/gridcanvas/gcchaos"
	"oss.terrastruct.com/gridcanvas/gcconfig"
	"oss.terrastruct.com/gridcanvas/lib/xmain"
)

// chaosCmd prints a random layout. A fixed seed also fixes the item ids so the output
// is reproducible.
func chaosCmd(ctx context.Context, ms *xmain.State, cfg gcconfig.Config, f flags, args []string) error {
	if len(args) != 0 {
		return xmain.UsageErrorf("chaos accepts no arguments")
	}
	if *f.items < 1 {
		return xmain.UsageErrorf("--items must be at least 1, got %d", *f.items)
	}

	opts := gcchaos.DefaultOptions()
	opts.MaxItems = int(*f.items)
	if cfg.GridUnit.X > 0 && cfg.GridUnit.Y > 0 {
		opts.GridUnit = cfg.GridUnit
	}
	if cfg.CanvasWidth > 0 {
		opts.CanvasWidth = cfg.CanvasWidth
	}
	if cfg.CanvasHeight > 0 {
		opts.CanvasHeight = cfg.CanvasHeight
	}

	var r *mathrand.Rand
	seed := *f.seed
	if seed != 0 {
		r = mathrand.New(mathrand.NewSource(seed))
		opts.IDs = gcchaos.Sequential
	} else {
		r, seed = gcchaos.NewRand()
	}
	ms.Log.Info.Printf("seed %d", seed)

	return writeJSON(ms, *f.out, gcchaos.GenLayout(r, opts))
}
