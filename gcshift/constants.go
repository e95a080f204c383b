package gcshift

import "oss.terrastruct.com/gridcanvas/lib/geo"

const (
	// Overlaps with the dragged item whose ratio is positive but below this are
	// treated as accidental and never start a cascade.
	SHIFT_TRIGGER_OVERLAP_RATIO = 0.08
)

// Directions a blocker is pushed, in the order they are tried.
var shiftDirections = []geo.Orientation{
	geo.Bottom,
	geo.Right,
	geo.Top,
	geo.Left,
}

// maxSteps bounds the cascade. Every accepted relocation is collision free, so real
// cascades settle far below this.
func maxSteps(n int) int {
	return 4*n*n + 16
}
