package geom

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Translate returns the point moved by v.
func (p Point) Translate(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}
