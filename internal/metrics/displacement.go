package metrics

import (
	"math"

	"github.com/mklev/gridmesh/internal/mesh"
)

// Metric accumulates a scalar over a run, observed once per frame.
type Metric interface {
	Name() string
	Observe(g *mesh.Grid, t float64)
	Value() float64
	Reset()
}

// MeanDisplacement averages the per-frame mean node offset from rest over
// the whole run. Sentinel row/column nodes are excluded, matching the set
// of animated nodes.
type MeanDisplacement struct {
	total   float64
	samples int
}

func NewMeanDisplacement() *MeanDisplacement { return &MeanDisplacement{} }

func (m *MeanDisplacement) Name() string { return "mean_displacement" }

func (m *MeanDisplacement) Observe(g *mesh.Grid, t float64) {
	m.total += FrameMean(g)
	m.samples++
}

func (m *MeanDisplacement) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanDisplacement) Reset() {
	m.total = 0
	m.samples = 0
}

// MaxDisplacement tracks the largest single-node offset seen during a run.
type MaxDisplacement struct {
	max float64
}

func NewMaxDisplacement() *MaxDisplacement { return &MaxDisplacement{} }

func (m *MaxDisplacement) Name() string { return "max_displacement" }

func (m *MaxDisplacement) Observe(g *mesh.Grid, t float64) {
	for row := 0; row < g.Rows-1; row++ {
		for col := 0; col < g.Cols-1; col++ {
			n := g.At(row, col)
			m.max = math.Max(m.max, n.Pos.Sub(n.Rest).Magnitude())
		}
	}
}

func (m *MaxDisplacement) Value() float64 { return m.max }

func (m *MaxDisplacement) Reset() { m.max = 0 }

// FrameMean returns the mean offset of the animated nodes for one frame.
func FrameMean(g *mesh.Grid) float64 {
	sum, n := 0.0, 0
	for row := 0; row < g.Rows-1; row++ {
		for col := 0; col < g.Cols-1; col++ {
			node := g.At(row, col)
			sum += node.Pos.Sub(node.Rest).Magnitude()
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// FrameMax returns the largest node offset for one frame.
func FrameMax(g *mesh.Grid) float64 {
	max := 0.0
	for row := 0; row < g.Rows-1; row++ {
		for col := 0; col < g.Cols-1; col++ {
			node := g.At(row, col)
			max = math.Max(max, node.Pos.Sub(node.Rest).Magnitude())
		}
	}
	return max
}
