package sim

import (
	"math"

	"github.com/mklev/gridmesh/internal/geom"
)

// FixedPointer holds the pointer at one position for the whole run.
type FixedPointer struct {
	P geom.Point
}

func (f FixedPointer) Pointer(t float64) (geom.Point, bool) {
	return f.P, true
}

// SweepPointer moves the pointer on a circle, one revolution per Period.
// It exercises the influence field across the whole grid deterministically.
type SweepPointer struct {
	Center geom.Point
	Radius float64
	Period float64
}

func (s SweepPointer) Pointer(t float64) (geom.Point, bool) {
	if s.Period <= 0 {
		return s.Center, true
	}
	a := 2 * math.Pi * t / s.Period
	return geom.NewPoint(
		s.Center.X+s.Radius*math.Cos(a),
		s.Center.Y+s.Radius*math.Sin(a),
	), true
}
