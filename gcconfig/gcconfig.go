// Package gcconfig holds the engine settings a host usually fixes once per canvas,
// and turns them into the option structs of the individual engine packages.
package gcconfig

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/gridcanvas/gcdrag"
	"oss.terrastruct.com/gridcanvas/gcselect"
	"oss.terrastruct.com/gridcanvas/gcshift"
	"oss.terrastruct.com/gridcanvas/gcsnap"
	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/lib/geo"
)

type Config struct {
	// Zero leaves the axis unbounded.
	CanvasWidth  float64 `toml:"canvas_width" json:"canvasWidth"`
	CanvasHeight float64 `toml:"canvas_height" json:"canvasHeight"`

	GridUnit   geo.Pair `toml:"grid_unit" json:"gridUnit"`
	ResizeUnit geo.Pair `toml:"resize_unit" json:"resizeUnit"`

	// Gap is in pixels.
	Gap geo.Pair `toml:"gap" json:"gap"`

	ShiftOnCollision bool    `toml:"shift_on_collision" json:"shiftOnCollision"`
	TriggerRatio     float64 `toml:"trigger_ratio" json:"triggerRatio"`

	// Guides are turned off through Snap. A zero SnapThreshold means the default.
	Snap          gctarget.SnapBehavior `toml:"snap" json:"snap"`
	SnapThreshold float64               `toml:"snap_threshold" json:"snapThreshold"`

	// Zero derives min(SnapThreshold, 2).
	DistanceSnapThreshold float64 `toml:"distance_snap_threshold" json:"distanceSnapThreshold"`

	VelocityLimit float64 `toml:"velocity_limit" json:"velocityLimit"`

	SelectOnlyEmptySpace bool `toml:"select_only_empty_space" json:"selectOnlyEmptySpace"`

	// Zero means one grid cell.
	MinSelectionArea float64 `toml:"min_selection_area" json:"minSelectionArea"`
}

func Default() Config {
	return Config{
		GridUnit:         geo.Uniform(DEFAULT_GRID_UNIT),
		ResizeUnit:       geo.Uniform(DEFAULT_RESIZE_UNIT),
		ShiftOnCollision: true,
		TriggerRatio:     gcshift.SHIFT_TRIGGER_OVERLAP_RATIO,
		Snap:             gctarget.AllSnaps(),
		SnapThreshold:    gcsnap.DEFAULT_SNAP_THRESHOLD,
		VelocityLimit:    gcsnap.DEFAULT_VELOCITY_LIMIT,
	}
}

// Load reads a TOML file over Default. Unknown keys are an error.
func Load(path string) (_ Config, err error) {
	defer xdefer.Errorf(&err, "failed to load config %q", path)

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(string(b))
}

func Parse(s string) (Config, error) {
	c := Default()
	md, err := toml.Decode(s, &c)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() (err error) {
	defer xdefer.Errorf(&err, "invalid config")

	nonNegative := func(name string, v float64) {
		if !(v >= 0) || math.IsInf(v, 0) {
			err = multierr.Append(err, fmt.Errorf("%s must be a non-negative number, got %v", name, v))
		}
	}
	nonNegative("canvas_width", c.CanvasWidth)
	nonNegative("canvas_height", c.CanvasHeight)
	nonNegative("grid_unit.x", c.GridUnit.X)
	nonNegative("grid_unit.y", c.GridUnit.Y)
	nonNegative("resize_unit.x", c.ResizeUnit.X)
	nonNegative("resize_unit.y", c.ResizeUnit.Y)
	nonNegative("gap.x", c.Gap.X)
	nonNegative("gap.y", c.Gap.Y)
	nonNegative("snap_threshold", c.SnapThreshold)
	nonNegative("distance_snap_threshold", c.DistanceSnapThreshold)
	nonNegative("velocity_limit", c.VelocityLimit)
	nonNegative("min_selection_area", c.MinSelectionArea)
	if !(c.TriggerRatio >= 0 && c.TriggerRatio <= 1) {
		err = multierr.Append(err, fmt.Errorf("trigger_ratio must be within [0, 1], got %v", c.TriggerRatio))
	}
	return err
}

func (c Config) ShiftRequest(id string, pos geo.Point) gcshift.Request {
	return gcshift.Request{
		ID:               id,
		Position:         pos,
		GridUnit:         c.GridUnit,
		Gap:              c.Gap,
		CanvasWidth:      c.CanvasWidth,
		CanvasHeight:     c.CanvasHeight,
		ShiftOnCollision: c.ShiftOnCollision,
		TriggerRatio:     c.TriggerRatio,
	}
}

// SnapOptions resolves both thresholds so the distance threshold never exceeds the
// edge threshold unless distance_snap_threshold says so.
func (c Config) SnapOptions() gcsnap.Options {
	threshold := c.SnapThreshold
	if threshold <= 0 {
		threshold = gcsnap.DEFAULT_SNAP_THRESHOLD
	}
	distance := c.DistanceSnapThreshold
	if distance <= 0 {
		distance = gcsnap.TightThreshold(threshold)
	}
	return gcsnap.Options{
		CanvasWidth:       c.CanvasWidth,
		CanvasHeight:      c.CanvasHeight,
		Behavior:          c.Snap,
		Threshold:         threshold,
		DistanceThreshold: distance,
	}
}

func (c Config) SelectOptions() gcselect.Options {
	return gcselect.Options{
		GridUnit:       c.GridUnit,
		CanvasWidth:    c.CanvasWidth,
		CanvasHeight:   c.CanvasHeight,
		OnlyEmptySpace: c.SelectOnlyEmptySpace,
		MinArea:        c.MinSelectionArea,
	}
}

// DragOptions enables guide snapping only when some snap behavior is on.
func (c Config) DragOptions() gcdrag.Options {
	o := gcdrag.Options{
		GridUnit:         c.GridUnit,
		ResizeUnit:       c.ResizeUnit,
		Gap:              c.Gap,
		CanvasWidth:      c.CanvasWidth,
		CanvasHeight:     c.CanvasHeight,
		ShiftOnCollision: c.ShiftOnCollision,
		TriggerRatio:     c.TriggerRatio,
		VelocityLimit:    c.VelocityLimit,
	}
	if c.Snap.Any() {
		snap := c.SnapOptions()
		o.Snap = &snap
	}
	return o
}
