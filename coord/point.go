package coord

// Axis identifies one linear machine axis.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// Axes lists the linear axes in word order.
var Axes = []Axis{X, Y, Z}

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return "?"
}

type Point struct{ X, Y, Z float64 }

func (p Point) Equal(b Point) bool {
	return p.X == b.X && p.Y == b.Y && p.Z == b.Z
}

// Get returns the component of p along a.
func (p Point) Get(a Axis) float64 {
	switch a {
	case X:
		return p.X
	case Y:
		return p.Y
	case Z:
		return p.Z
	}
	return 0
}

// Set replaces the component of p along a.
func (p *Point) Set(a Axis, val float64) {
	switch a {
	case X:
		p.X = val
	case Y:
		p.Y = val
	case Z:
		p.Z = val
	}
}

func (p Point) Mul(val float64) Point {
	p.X *= val
	p.Y *= val
	p.Z *= val
	return p
}

// Add will add the target values to p.
func (p Point) Add(target Point) Point {
	p.X += target.X
	p.Y += target.Y
	p.Z += target.Z
	return p
}

// Sub will subtract the target values from p.
func (p Point) Sub(target Point) Point {
	p.X -= target.X
	p.Y -= target.Y
	p.Z -= target.Z
	return p
}
