package metrics

import "github.com/mklev/gridmesh/internal/mesh"

// Settle estimates how long the mesh stays visibly perturbed: its value is
// the time of the last observed frame whose mean displacement exceeded the
// epsilon threshold.
type Settle struct {
	epsilon  float64
	lastOver float64
}

func NewSettle(epsilon float64) *Settle {
	return &Settle{epsilon: epsilon}
}

func (s *Settle) Name() string { return "settle_time" }

func (s *Settle) Observe(g *mesh.Grid, t float64) {
	if FrameMean(g) > s.epsilon {
		s.lastOver = t
	}
}

func (s *Settle) Value() float64 { return s.lastOver }

func (s *Settle) Reset() { s.lastOver = 0 }
