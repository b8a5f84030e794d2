package sim

import (
	"github.com/mklev/gridmesh/internal/geom"
	"github.com/mklev/gridmesh/internal/mesh"
)

// Config drives a headless run. Dt is the nominal frame interval.
type Config struct {
	Dt       float64
	Duration float64
	Seed     int64

	// IdleSkip reproduces the legacy throttle: frames are only animated when
	// the pointer has moved since the last animated frame. The first frame is
	// always animated so the mesh is never left unrendered.
	IdleSkip bool
}

// Observer is notified after every animated frame.
type Observer interface {
	OnFrame(g *mesh.Grid, t float64)
}

// PointerDriver scripts the pointer for a run. Returning false means the
// pointer is absent at time t.
type PointerDriver interface {
	Pointer(t float64) (geom.Point, bool)
}

// Result holds the per-frame displacement traces and final metric values.
type Result struct {
	Frames   int
	Times    []float64
	MeanDisp []float64
	MaxDisp  []float64
	Metrics  map[string]float64
}
