// Package gcchaos generates random, collision free canvas layouts and random drops
// onto them, for property tests and the CLI.
package gcchaos

import (
	"fmt"
	"math"
	mathrand "math/rand"
	"time"

	"oss.terrastruct.com/xrand"

	"oss.terrastruct.com/gridcanvas/gccollide"
	"oss.terrastruct.com/gridcanvas/gcshift"
	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/lib/env"
	"oss.terrastruct.com/gridcanvas/lib/geo"
)

type Options struct {
	// MaxItems bounds how many items a layout gets. At least one is always placed.
	MaxItems     int
	CanvasWidth  float64
	CanvasHeight float64
	GridUnit     geo.Pair
	// MaxCells bounds item sides in grid units.
	MaxCells int
	// Rotated allows rotated items.
	Rotated bool
	// IDs names item i. Random ids are used when nil.
	IDs func(i int) string
}

func DefaultOptions() Options {
	return Options{
		MaxItems:     12,
		CanvasWidth:  600,
		CanvasHeight: 400,
		GridUnit:     geo.Uniform(10),
		MaxCells:     12,
	}
}

// Sequential names items item-0, item-1 and so on.
func Sequential(i int) string {
	return fmt.Sprintf("item-%d", i)
}

// NewRand seeds from GRIDCANVAS_CHAOS_SEED when it is set and the clock otherwise.
// The seed is returned so failures can be replayed.
func NewRand() (*mathrand.Rand, int64) {
	seed, ok := env.ChaosSeed()
	if !ok {
		seed = time.Now().UnixNano()
	}
	return mathrand.New(mathrand.NewSource(seed)), seed
}

type genState struct {
	rand *mathrand.Rand
	opts Options

	layout gctarget.Layout
	ids    map[string]struct{}
}

// GenLayout places up to opts.MaxItems grid aligned items that do not collide.
// Items that cannot find room after a few tries are skipped.
func GenLayout(r *mathrand.Rand, opts Options) gctarget.Layout {
	gs := &genState{
		rand: r,
		opts: opts,
		ids:  make(map[string]struct{}),
	}
	gs.gen()
	return gs.layout
}

func (gs *genState) gen() {
	maxi := 1
	if gs.opts.MaxItems > 1 {
		maxi = gs.rand.Intn(gs.opts.MaxItems) + 1
	}
	for i := 0; i < maxi; i++ {
		for try := 0; try < 20; try++ {
			it, ok := gs.item(len(gs.layout))
			if !ok {
				continue
			}
			if len(gs.layout) > 0 && !gccollide.Free(gs.layout, it, geo.Pair{}) {
				continue
			}
			gs.layout = append(gs.layout, it)
			break
		}
	}
	for i := range gs.layout {
		gs.layout[i].ZIndex = gs.rand.Intn(len(gs.layout))
	}
}

func (gs *genState) item(i int) (gctarget.Item, bool) {
	unit := gs.opts.GridUnit
	maxCells := gs.opts.MaxCells
	if maxCells < 1 {
		maxCells = 1
	}
	w := unit.X * float64(gs.rand.Intn(maxCells)+1)
	h := unit.Y * float64(gs.rand.Intn(maxCells)+1)

	x, ok := gs.coord(gs.opts.CanvasWidth, w, unit.X)
	if !ok {
		return gctarget.Item{}, false
	}
	y, ok := gs.coord(gs.opts.CanvasHeight, h, unit.Y)
	if !ok {
		return gctarget.Item{}, false
	}

	it := gctarget.Item{
		ID:     gs.id(i),
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	}
	switch gs.roll(70, 10, 10, 10) {
	case 1:
		// 10% chance of a locked item.
		it.Locked = true
	case 2:
		// 10% chance of an item without collisions.
		it.DisableCollision = true
	case 3:
		// 10% chance of a rotated item.
		if gs.opts.Rotated {
			it.Rotation = float64(15 * (gs.rand.Intn(23) + 1))
		}
	}
	return it, true
}

// coord picks a grid aligned offset that keeps size inside extent.
func (gs *genState) coord(extent, size, unit float64) (float64, bool) {
	if unit <= 0 {
		unit = 1
	}
	slots := int(math.Floor((extent-size)/unit)) + 1
	if slots < 1 {
		return 0, false
	}
	return unit * float64(gs.rand.Intn(slots)), true
}

func (gs *genState) id(i int) string {
	if gs.opts.IDs != nil {
		return gs.opts.IDs(i)
	}
	for {
		id := xrand.Base64(8)
		if _, ok := gs.ids[id]; !ok {
			gs.ids[id] = struct{}{}
			return id
		}
	}
}

// GenRequest proposes dropping a random item of l at a random spot on the canvas.
// Items may land partly outside the canvas.
func GenRequest(r *mathrand.Rand, l gctarget.Layout, opts Options) gcshift.Request {
	gs := &genState{rand: r, opts: opts}
	it := l[r.Intn(len(l))]
	req := gcshift.Request{
		ID: it.ID,
		Position: geo.Point{
			X: r.Float64() * opts.CanvasWidth,
			Y: r.Float64() * opts.CanvasHeight,
		},
		GridUnit:         opts.GridUnit,
		CanvasWidth:      opts.CanvasWidth,
		CanvasHeight:     opts.CanvasHeight,
		ShiftOnCollision: gs.roll(25, 75) == 1,
		DragStart:        &gctarget.Rect{X: it.X, Y: it.Y, Width: it.Width, Height: it.Height},
	}
	if gs.roll(75, 25) == 1 {
		// 25% chance of a resize.
		req.Width = it.Width + opts.GridUnit.X*float64(r.Intn(5)-2)
		req.Height = it.Height + opts.GridUnit.Y*float64(r.Intn(5)-2)
	}
	if gs.roll(50, 50) == 1 {
		req.Gap = opts.GridUnit
	}
	return req
}

func (gs *genState) roll(probs ...int) int {
	max := 0
	for _, p := range probs {
		max += p
	}

	n := gs.rand.Intn(max)
	var acc int
	for i, p := range probs {
		if n >= acc && n < acc+p {
			return i
		}
		acc += p
	}

	panic("gcchaos: unreachable")
}
