package geo

import (
	"fmt"
	"math"
	"strings"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

type Points []*Point

func (p *Point) ToString() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (points Points) ToString() string {
	strs := make([]string, 0, len(points))
	for _, p := range points {
		strs = append(strs, p.ToString())
	}
	return strings.Join(strs, ", ")
}

func (p1 *Point) DistanceTo(p2 *Point) float64 {
	return EuclideanDistance(p1.X, p1.Y, p2.X, p2.Y)
}

// Rotate returns p rotated clockwise by degrees around center.
// Screen coordinates: y grows downward.
func (p *Point) Rotate(center *Point, degrees float64) *Point {
	if degrees == 0 {
		return p.Copy()
	}
	rad := DegreesToRadians(degrees)
	cos, sin := math.Cos(rad), math.Sin(rad)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return NewPoint(
		center.X+dx*cos-dy*sin,
		center.Y+dx*sin+dy*cos,
	)
}

// AddVector returns p moved by v.
func (p *Point) AddVector(v Vector) *Point {
	return p.ToVector().Add(v).ToPoint()
}

// VectorTo is the displacement from p to to.
func (p *Point) VectorTo(to *Point) Vector {
	return to.ToVector().Minus(p.ToVector())
}

// ToVector is the displacement from the origin to p.
func (p *Point) ToVector() Vector {
	return Vector{X: p.X, Y: p.Y}
}

// AngleTo returns the clockwise angle in degrees from the positive x axis to the ray p -> to.
func (p *Point) AngleTo(to *Point) float64 {
	return math.Atan2(to.Y-p.Y, to.X-p.X) * 180 / math.Pi
}
