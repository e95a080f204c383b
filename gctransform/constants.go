package gctransform

const (
	// Smallest width or height a handle resize produces.
	MIN_SIZE = 10.0
	// Distance from an item's center to its rotation handle, before the item's own half height.
	ROTATION_HANDLE_DISTANCE = 30.0
)
