package gccli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/gridcanvas/lib/version"
	"oss.terrastruct.com/gridcanvas/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [flags] validate layout.json
  %[1]s [flags] simulate layout.json id x y [width height]
  %[1]s [flags] drop layout.json id x y
  %[1]s [flags] resize layout.json id handle dx dy
  %[1]s [flags] snap layout.json id x y
  %[1]s [flags] select layout.json x0 y0 x1 y1
  %[1]s [flags] zorder layout.json normalize | sort | up id | down id | top id | bottom id
  %[1]s [flags] chaos [--seed=0] [--items=12]

%[1]s runs the canvas layout engine over a layout file and prints the result as JSON.
Layouts are JSON arrays of items, or YAML when the file ends in .yaml or .yml.
Use - to read the layout from stdin.

Flags:
%[3]s

Subcommands:
  %[1]s validate - Checks a layout for duplicate ids, bad sizes and non-finite numbers
  %[1]s simulate - Simulates dropping an item at x, y and prints the preview
  %[1]s drop - Runs a whole move gesture to x, y and prints the committed layout
  %[1]s resize - Drags a resize handle (tl t tr r br b bl l) by dx, dy and prints the committed layout
  %[1]s snap - Prints the snapped position and guides for an item moved to x, y
  %[1]s select - Evaluates a marquee selection from x0, y0 to x1, y1
  %[1]s zorder - Reorders the layout's z-indices
  %[1]s chaos - Prints a random collision free layout
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}
