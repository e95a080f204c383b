package gcsnap

import (
	"math"

	"oss.terrastruct.com/gridcanvas/lib/geo"
)

// SnapRotation snaps deg to the nearest multiple of ROTATION_SNAP_STEP when it is within
// threshold degrees of it. The result is in [0, 360).
func SnapRotation(deg, threshold float64) float64 {
	deg = geo.NormalizeDegrees(deg)
	target := math.Floor(deg/ROTATION_SNAP_STEP+0.5) * ROTATION_SNAP_STEP
	if math.Abs(deg-target) <= threshold {
		return geo.NormalizeDegrees(target)
	}
	return deg
}
