package gcsnap

const (
	DEFAULT_SNAP_THRESHOLD = 5
	// Equal-spacing snaps use a tighter threshold than edges and centers.
	DISTANCE_SNAP_THRESHOLD = 2
	// Lines within this of a dragging rect's edge or center count as aligned for display.
	ALIGNMENT_TOLERANCE = 0.1

	// Pointer speed in px/ms above which callers should ignore snap output.
	DEFAULT_VELOCITY_LIMIT = 0.2

	ROTATION_SNAP_STEP      = 45
	ROTATION_SNAP_THRESHOLD = 5
)
