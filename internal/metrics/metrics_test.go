package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mklev/gridmesh/internal/geom"
	"github.com/mklev/gridmesh/internal/mesh"
	"github.com/mklev/gridmesh/internal/palette"
)

func testGrid() *mesh.Grid {
	opt := mesh.Options{
		CellSize:   80,
		StartColor: palette.New(80, 90, 250),
	}
	return mesh.BuildGrid(400, 200, opt, rand.New(rand.NewSource(1)))
}

func offsetAll(g *mesh.Grid, v geom.Vector) {
	for row := 0; row < g.Rows-1; row++ {
		for col := 0; col < g.Cols-1; col++ {
			n := g.At(row, col)
			n.Pos = n.Rest.Translate(v)
		}
	}
}

func TestMeanDisplacement(t *testing.T) {
	g := testGrid()
	m := NewMeanDisplacement()

	m.Observe(g, 0)
	if m.Value() != 0 {
		t.Errorf("expected zero displacement at rest, got %f", m.Value())
	}

	offsetAll(g, geom.NewVector(3, 4))
	m.Observe(g, 1)
	// one frame at 0, one at 5 -> mean 2.5
	if math.Abs(m.Value()-2.5) > 1e-9 {
		t.Errorf("expected 2.5, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestMaxDisplacement(t *testing.T) {
	g := testGrid()
	m := NewMaxDisplacement()

	offsetAll(g, geom.NewVector(3, 4))
	m.Observe(g, 0)

	offsetAll(g, geom.NewVector(1, 0))
	m.Observe(g, 1)

	// max is sticky across frames
	if math.Abs(m.Value()-5) > 1e-9 {
		t.Errorf("expected 5, got %f", m.Value())
	}
}

func TestSettle(t *testing.T) {
	g := testGrid()
	s := NewSettle(0.5)

	offsetAll(g, geom.NewVector(10, 0))
	s.Observe(g, 0.1)

	offsetAll(g, geom.NewVector(1, 0))
	s.Observe(g, 0.2)

	offsetAll(g, geom.NewVector(0.1, 0))
	s.Observe(g, 0.3)

	if s.Value() != 0.2 {
		t.Errorf("expected settle time 0.2, got %f", s.Value())
	}
}

func TestFrameMaxExcludesSentinels(t *testing.T) {
	g := testGrid()

	// displace only a sentinel node; it must not register
	n := g.At(g.Rows-1, g.Cols-1)
	n.Pos = n.Rest.Translate(geom.NewVector(100, 100))

	if FrameMax(g) != 0 {
		t.Errorf("sentinel displacement leaked into metrics: %f", FrameMax(g))
	}
}
