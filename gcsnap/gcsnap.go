// Package gcsnap computes alignment guides for an item being moved and snaps the item
// onto them: canvas centers, the edges and centers of other items, and equal spacing
// between items.
package gcsnap

import (
	"oss.terrastruct.com/gridcanvas/gctarget"
)

type Options struct {
	CanvasWidth  float64
	CanvasHeight float64
	// CanvasX and CanvasY offset the canvas origin for the center guides.
	CanvasX float64
	CanvasY float64

	Behavior gctarget.SnapBehavior
	// Threshold is the edge and center snap distance. Zero means DEFAULT_SNAP_THRESHOLD.
	Threshold float64
	// DistanceThreshold overrides TightThreshold(Threshold) when positive.
	DistanceThreshold float64
}

func (o Options) threshold() float64 {
	if o.Threshold > 0 {
		return o.Threshold
	}
	return DEFAULT_SNAP_THRESHOLD
}

func (o Options) distanceThreshold() float64 {
	if o.DistanceThreshold > 0 {
		return o.DistanceThreshold
	}
	return TightThreshold(o.threshold())
}

type Result struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Snapped are the lines that moved the item.
	Snapped []gctarget.SnapLine `json:"snapped,omitempty"`
	// Guides are the lines the final position sits on, extended over the item, for display.
	Guides []gctarget.SnapLine `json:"guides,omitempty"`
	// Indicators are the spacing badges around the final position.
	Indicators []gctarget.SnapLine `json:"indicators,omitempty"`
	// DistanceSnapped is set when equal spacing decided an axis.
	DistanceSnapped bool `json:"distanceSnapped,omitempty"`
}

// Lines returns every candidate guide for moving the item id.
func Lines(l gctarget.Layout, id string, opts Options) []gctarget.SnapLine {
	lines := GridLines(opts.CanvasWidth, opts.CanvasHeight, opts.Behavior, opts.CanvasX, opts.CanvasY)
	return append(lines, ItemLines(l, id, opts.threshold(), opts.Behavior)...)
}

// Compute snaps the proposed rectangle of item id. Edge and center guides apply first;
// equal-spacing targets are computed from the proposal and override them per axis.
func Compute(l gctarget.Layout, id string, proposed gctarget.Rect, opts Options) Result {
	lines := Lines(l, id, opts)
	s := Apply(proposed, lines, opts.threshold())
	res := Result{X: s.X, Y: s.Y, Snapped: s.Lines}

	others := l.Others(id)
	if opts.Behavior.ItemDistance {
		t := DistanceTargets(others, proposed, opts.distanceThreshold())
		if t.X != nil {
			res.X = *t.X
			res.DistanceSnapped = true
		}
		if t.Y != nil {
			res.Y = *t.Y
			res.DistanceSnapped = true
		}
	}

	final := proposed
	final.X, final.Y = res.X, res.Y
	res.Guides = Extend(Relevant(lines, final), final)
	if opts.Behavior.ItemDistance {
		res.Indicators = DistanceIndicators(others, final.WithID(id))
	}
	return res
}
