package geo

// Vector is a planar displacement. Y grows downward like Point.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (a Vector) Add(b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y}
}

func (a Vector) Minus(b Vector) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y}
}

func (a Vector) Multiply(k float64) Vector {
	return Vector{X: a.X * k, Y: a.Y * k}
}

func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y
}

func (a Vector) ToPoint() *Point {
	return &Point{X: a.X, Y: a.Y}
}

// EdgeNormal is the unit normal to the edge from p1 to p2, turned a quarter toward -y
// when the edge runs along +x. p1 and p2 must differ.
func EdgeNormal(p1, p2 *Point) Vector {
	l := p1.DistanceTo(p2)
	return Vector{X: (p1.Y - p2.Y) / l, Y: (p2.X - p1.X) / l}
}
