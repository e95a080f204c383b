package geo

import "math"

func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	if x1 == x2 {
		return math.Abs(y1 - y2)
	} else if y1 == y2 {
		return math.Abs(x1 - x2)
	} else {
		return math.Sqrt((x1-x2)*(x1-x2) + (y1-y2)*(y1-y2))
	}
}

// SnapToGrid rounds v to the nearest multiple of unit, halves rounding up.
// A non-positive unit means free positioning and returns v unchanged.
func SnapToGrid(v, unit float64) float64 {
	if unit <= 0 {
		return v
	}
	return math.Floor(v/unit+0.5) * unit
}

// FloorToGrid moves v down to the nearest multiple of unit.
func FloorToGrid(v, unit float64) float64 {
	if unit <= 0 {
		return v
	}
	return math.Floor(v/unit) * unit
}

func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeDegrees maps deg into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
