package geom

import "math"

// Vector is a displacement in canvas space.
type Vector struct {
	X, Y float64
}

func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns a unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vector) Normalized() Vector {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}
	}
	return Vector{X: v.X / m, Y: v.Y / m}
}

func (v Vector) Invert() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Scale multiplies both components by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// MulVec multiplies component-wise.
func (v Vector) MulVec(w Vector) Vector {
	return Vector{X: v.X * w.X, Y: v.Y * w.Y}
}
