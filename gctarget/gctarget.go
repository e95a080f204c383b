// Package gctarget holds the data model shared by every canvas engine package:
// items, rectangles, layouts and snap lines.
package gctarget

import (
	"fmt"

	"oss.terrastruct.com/gridcanvas/lib/geo"
)

type Item struct {
	ID string `json:"id" yaml:"id"`

	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`

	// Rotation in degrees, clockwise, about the center.
	Rotation float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`

	Locked           bool `json:"locked,omitempty" yaml:"locked,omitempty"`
	DisableCollision bool `json:"disableCollision,omitempty" yaml:"disableCollision,omitempty"`
	DisableRotation  bool `json:"disableRotation,omitempty" yaml:"disableRotation,omitempty"`

	ZIndex int `json:"zIndex,omitempty" yaml:"zIndex,omitempty"`
}

func (it Item) Rect() Rect {
	return Rect{X: it.X, Y: it.Y, Width: it.Width, Height: it.Height, Rotation: it.Rotation}
}

func (it Item) Box() *geo.Box {
	return geo.NewBox(it.X, it.Y, it.Width, it.Height)
}

func (it Item) Rotated() bool {
	return it.Rotation != 0
}

// Place returns a copy of it moved and sized to r. Rotation and flags are kept.
func (it Item) Place(r Rect) Item {
	it.X = r.X
	it.Y = r.Y
	it.Width = r.Width
	it.Height = r.Height
	return it
}

func (it Item) MoveTo(x, y float64) Item {
	it.X = x
	it.Y = y
	return it
}

func (it Item) ToString() string {
	return fmt.Sprintf("%s%s", it.ID, it.Rect().ToString())
}

type Rect struct {
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Rotation float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func RectFromBox(b *geo.Box) Rect {
	return NewRect(b.TopLeft.X, b.TopLeft.Y, b.Width, b.Height)
}

func (r Rect) Box() *geo.Box {
	return geo.NewBox(r.X, r.Y, r.Width, r.Height)
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// WithID lifts r into an item so the collision predicates can consume it.
func (r Rect) WithID(id string) Item {
	return Item{ID: id, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height, Rotation: r.Rotation}
}

func (r Rect) ToString() string {
	return fmt.Sprintf("[%v,%v %vx%v]", r.X, r.Y, r.Width, r.Height)
}

// Layout is an ordered collection of items. Order is meaningful: it breaks z-order ties
// and decides which neighbor the shift cascade visits first.
type Layout []Item

func (l Layout) Find(id string) (int, bool) {
	for i := range l {
		if l[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (l Layout) Get(id string) (Item, bool) {
	i, ok := l.Find(id)
	if !ok {
		return Item{}, false
	}
	return l[i], true
}

func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Replace returns a copy of l with the item id passed through fn.
func (l Layout) Replace(id string, fn func(Item) Item) Layout {
	out := l.Clone()
	if i, ok := out.Find(id); ok {
		out[i] = fn(out[i])
	}
	return out
}

// Others is every item except id, in layout order.
func (l Layout) Others(id string) Layout {
	out := make(Layout, 0, len(l))
	for _, it := range l {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func (l Layout) IDs() []string {
	ids := make([]string, 0, len(l))
	for _, it := range l {
		ids = append(ids, it.ID)
	}
	return ids
}
