// Package gctransform turns resize and rotate gestures on a single item into
// rectangles and angles. It knows nothing of other items; callers pass its output to
// gcshift to resolve collisions.
package gctransform

import (
	"errors"
	"math"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/gridcanvas/gcsnap"
	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/lib/geo"
)

var (
	ErrLocked           = errors.New("item is locked")
	ErrRotationDisabled = errors.New("item has rotation disabled")
)

// SnapSize snaps a size to the resize unit, never going below one unit.
func SnapSize(width, height float64, unit geo.Pair) (float64, float64) {
	return math.Max(unit.X, geo.SnapToGrid(width, unit.X)),
		math.Max(unit.Y, geo.SnapToGrid(height, unit.Y))
}

// Resizer follows one handle drag. Deltas are always measured from where the gesture
// began, so Resize is safe to call with any pointer position in any order.
type Resizer struct {
	Handle geo.Orientation

	start gctarget.Rect
	last  gctarget.Rect
}

func NewResizer(it gctarget.Item, handle geo.Orientation) (_ *Resizer, err error) {
	defer xdefer.Errorf(&err, "failed to resize %q", it.ID)

	if it.Locked {
		return nil, ErrLocked
	}
	if handle < geo.TopLeft || handle >= geo.NONE {
		return nil, errors.New("unknown resize handle")
	}
	r := it.Rect()
	return &Resizer{
		Handle: handle,
		start:  r,
		last:   r,
	}, nil
}

// Resize returns the rectangle for a pointer that has moved dx, dy since the gesture
// began. Edges pulled toward the opposite side stop moving once the size would drop
// below MIN_SIZE. Edges pushed outward from the far side clamp at MIN_SIZE.
func (r *Resizer) Resize(dx, dy float64) gctarget.Rect {
	next := r.last

	if r.Handle == geo.TopLeft || r.Handle == geo.Left || r.Handle == geo.BottomLeft {
		if w := r.start.Width - dx; w >= MIN_SIZE {
			next.X = r.start.X + dx
			next.Width = w
		}
	}
	if r.Handle == geo.TopLeft || r.Handle == geo.Top || r.Handle == geo.TopRight {
		if h := r.start.Height - dy; h >= MIN_SIZE {
			next.Y = r.start.Y + dy
			next.Height = h
		}
	}
	if r.Handle == geo.TopRight || r.Handle == geo.Right || r.Handle == geo.BottomRight {
		next.Width = math.Max(MIN_SIZE, r.start.Width+dx)
	}
	if r.Handle == geo.BottomLeft || r.Handle == geo.Bottom || r.Handle == geo.BottomRight {
		next.Height = math.Max(MIN_SIZE, r.start.Height+dy)
	}

	r.last = next
	return next
}

// Last is the most recent rectangle Resize produced, or the starting one.
func (r *Resizer) Last() gctarget.Rect {
	return r.last
}

// Rotator follows a rotation handle drag. The handle sits above the item's center at
// its current rotation; the pointer's offset from the handle is kept for the whole
// gesture so the item does not jump when the drag begins off-center.
type Rotator struct {
	center geo.Point
	offset geo.Vector
	last   float64
}

// NewRotator starts a rotation with the pointer at p. A non-positive handleDistance
// uses ROTATION_HANDLE_DISTANCE.
func NewRotator(it gctarget.Item, p geo.Point, handleDistance float64) (_ *Rotator, err error) {
	defer xdefer.Errorf(&err, "failed to rotate %q", it.ID)

	if it.Locked {
		return nil, ErrLocked
	}
	if it.DisableRotation {
		return nil, ErrRotationDisabled
	}
	if handleDistance <= 0 {
		handleDistance = ROTATION_HANDLE_DISTANCE
	}

	center := geo.Point{X: it.X + it.Width/2, Y: it.Y + it.Height/2}
	rad := geo.DegreesToRadians(it.Rotation) - math.Pi/2
	handle := center.AddVector(geo.NewVector(math.Cos(rad), math.Sin(rad)).Multiply(handleDistance))

	return &Rotator{
		center: center,
		offset: handle.VectorTo(&p),
		last:   geo.NormalizeDegrees(it.Rotation),
	}, nil
}

// Rotate returns the snapped rotation, in [0, 360), for the pointer at p.
func (r *Rotator) Rotate(p geo.Point) float64 {
	target := p.AddVector(r.offset.Multiply(-1))
	deg := r.center.AngleTo(target) + 90
	r.last = gcsnap.SnapRotation(deg, gcsnap.ROTATION_SNAP_THRESHOLD)
	return r.last
}

// Last is the most recent rotation Rotate produced, or the starting one.
func (r *Rotator) Last() float64 {
	return r.last
}
