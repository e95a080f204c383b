// Package gccli implements the gridcanvas command: a way to run the engine over layout
// files from a shell, mostly for debugging host integrations.
package gccli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"oss.terrastruct.com/gridcanvas/gcconfig"
	"oss.terrastruct.com/gridcanvas/lib/geo"
	"oss.terrastruct.com/gridcanvas/lib/log"
	"oss.terrastruct.com/gridcanvas/lib/version"
	"oss.terrastruct.com/gridcanvas/lib/xmain"
)

type flags struct {
	out   *string
	seed  *int64
	items *int64
}

func Run(ctx context.Context, ms *xmain.State) (err error) {
	configFlag := ms.Opts.String("GRIDCANVAS_CONFIG", "config", "c", "", "path to a TOML engine config. Built-in defaults are used when unset.")
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	outFlag := ms.Opts.String("", "out", "o", "-", "where to write results. - writes to stdout.")
	canvasWidthFlag, err := ms.Opts.Float64("GRIDCANVAS_CANVAS_WIDTH", "canvas-width", "", 0, "canvas width in pixels. Overrides the config.")
	if err != nil {
		return err
	}
	canvasHeightFlag, err := ms.Opts.Float64("GRIDCANVAS_CANVAS_HEIGHT", "canvas-height", "", 0, "canvas height in pixels. Overrides the config.")
	if err != nil {
		return err
	}
	gridUnitFlag, err := ms.Opts.Float64("GRIDCANVAS_GRID_UNIT", "grid-unit", "g", 0, "grid unit in pixels for both axes. Overrides the config.")
	if err != nil {
		return err
	}
	gapFlag, err := ms.Opts.Float64("GRIDCANVAS_GAP", "gap", "", 0, "minimum clearance between items in pixels. Overrides the config.")
	if err != nil {
		return err
	}
	shiftFlag, err := ms.Opts.Bool("GRIDCANVAS_SHIFT", "shift", "", true, "push colliding items aside on drop. Overrides the config.")
	if err != nil {
		return err
	}
	seedFlag, err := ms.Opts.Int64("GRIDCANVAS_CHAOS_SEED", "seed", "", 0, "seed for the chaos subcommand. 0 seeds from the clock.")
	if err != nil {
		return err
	}
	itemsFlag, err := ms.Opts.Int64("", "items", "n", 12, "maximum number of items the chaos subcommand places")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}
	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	ctx = log.Human(ctx, ms.Stderr, *debugFlag)
	defer log.Sync(ctx)

	cfg := gcconfig.Default()
	if *configFlag != "" {
		cfg, err = gcconfig.Load(*configFlag)
		if err != nil {
			return err
		}
	}
	if ms.Opts.Set("canvas-width") {
		cfg.CanvasWidth = *canvasWidthFlag
	}
	if ms.Opts.Set("canvas-height") {
		cfg.CanvasHeight = *canvasHeightFlag
	}
	if ms.Opts.Set("grid-unit") {
		cfg.GridUnit = geo.Uniform(*gridUnitFlag)
	}
	if ms.Opts.Set("gap") {
		cfg.Gap = geo.Uniform(*gapFlag)
	}
	if ms.Opts.Set("shift") {
		cfg.ShiftOnCollision = *shiftFlag
	}
	if err := cfg.Validate(); err != nil {
		return xmain.UsageErrorf("%v", err)
	}

	f := flags{
		out:   outFlag,
		seed:  seedFlag,
		items: itemsFlag,
	}

	args := ms.Opts.Flags.Args()
	if len(args) == 0 {
		help(ms)
		return xmain.UsageErrorf("a subcommand is required")
	}
	ctx = log.Named(ctx, args[0])
	switch args[0] {
	case "validate":
		return validateCmd(ctx, ms, args[1:])
	case "simulate":
		return simulateCmd(ctx, ms, cfg, f, args[1:])
	case "drop":
		return dropCmd(ctx, ms, cfg, f, args[1:])
	case "resize":
		return resizeCmd(ctx, ms, cfg, f, args[1:])
	case "snap":
		return snapCmd(ctx, ms, cfg, f, args[1:])
	case "select":
		return selectCmd(ctx, ms, cfg, f, args[1:])
	case "zorder":
		return zorderCmd(ctx, ms, f, args[1:])
	case "chaos":
		return chaosCmd(ctx, ms, cfg, f, args[1:])
	case "version":
		if len(args) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	default:
		return xmain.UsageErrorf("unknown subcommand %q", args[0])
	}
}
