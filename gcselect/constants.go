package gcselect

const (
	// Fraction of an item's area a selection must cover to select it.
	ITEM_SELECTION_COVERAGE_THRESHOLD = 0.9
	// Pointer travel before a press becomes a selection gesture.
	MIN_DRAG_DISTANCE = 5.0
	// Clearance used when a selection must stay in empty space.
	EMPTY_SPACE_GAP = 1.0
)
