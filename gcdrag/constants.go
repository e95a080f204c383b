package gcdrag

const (
	// A move gesture is ignored until the pointer has travelled this far on either axis
	// from where it began.
	DRAG_THRESHOLD = 5.0
)
