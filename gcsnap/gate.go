package gcsnap

import (
	"time"

	"oss.terrastruct.com/gridcanvas/lib/geo"
)

// Gate tracks pointer speed during a gesture. Snapping looks jittery during fast drags,
// so callers consult Allow before using snap output. The engine itself never does.
type Gate struct {
	// Limit is the highest speed in px/ms at which snapping is allowed.
	Limit float64

	last   geo.Point
	lastAt time.Time
	speed  float64
	primed bool
}

func NewGate(limit float64) *Gate {
	if limit <= 0 {
		limit = DEFAULT_VELOCITY_LIMIT
	}
	return &Gate{Limit: limit}
}

// Observe records a pointer sample and returns the current speed in px/ms.
// Samples that do not advance the clock keep the previous speed.
func (g *Gate) Observe(p geo.Point, at time.Time) float64 {
	if g.primed {
		dt := at.Sub(g.lastAt).Seconds() * 1000
		if dt > 0 {
			g.speed = g.last.DistanceTo(&p) / dt
		}
	}
	g.last = p
	g.lastAt = at
	g.primed = true
	return g.speed
}

func (g *Gate) Speed() float64 {
	return g.speed
}

func (g *Gate) Allow() bool {
	return g.speed <= g.Limit
}

func (g *Gate) Reset() {
	*g = Gate{Limit: g.Limit}
}
