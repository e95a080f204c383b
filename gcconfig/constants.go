package gcconfig

const (
	DEFAULT_GRID_UNIT   = 10.0
	DEFAULT_RESIZE_UNIT = 10.0
)
