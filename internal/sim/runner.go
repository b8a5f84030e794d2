package sim

import (
	"context"
	"fmt"

	"github.com/mklev/gridmesh/internal/geom"
	"github.com/mklev/gridmesh/internal/mesh"
	"github.com/mklev/gridmesh/internal/metrics"
)

// Runner steps an animator for a fixed duration without a display,
// collecting metrics and notifying observers along the way.
type Runner struct {
	anim      *mesh.Animator
	driver    PointerDriver
	metrics   []metrics.Metric
	observers []Observer
}

func New(anim *mesh.Animator) *Runner {
	return &Runner{anim: anim}
}

func (r *Runner) AddMetric(m metrics.Metric)       { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)           { r.observers = append(r.observers, o) }
func (r *Runner) SetPointerDriver(d PointerDriver) { r.driver = d }

// Run executes Duration/Dt frames, honoring ctx cancellation. The loop is
// explicit and owned by the caller's context; nothing reschedules itself.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:    make([]float64, 0, steps),
		MeanDisp: make([]float64, 0, steps),
		MaxDisp:  make([]float64, 0, steps),
		Metrics:  make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	lastPointer, havePointer := r.pointerAt(0)
	moved := true // force the first frame

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		p, ok := r.pointerAt(t)
		if ok != havePointer || (ok && !p.Equal(lastPointer)) {
			moved = true
		}
		lastPointer, havePointer = p, ok

		if !cfg.IdleSkip || moved {
			if ok {
				r.anim.SetPointer(p)
			} else {
				r.anim.ClearPointer()
			}
			r.anim.Step()
			moved = false

			g := r.anim.Grid()
			for _, m := range r.metrics {
				m.Observe(g, t)
			}
			for _, o := range r.observers {
				o.OnFrame(g, t)
			}
			result.Frames++
			result.Times = append(result.Times, t)
			result.MeanDisp = append(result.MeanDisp, metrics.FrameMean(g))
			result.MaxDisp = append(result.MaxDisp, metrics.FrameMax(g))
		}

		t += cfg.Dt
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) pointerAt(t float64) (p geom.Point, ok bool) {
	if r.driver == nil {
		return p, false
	}
	return r.driver.Pointer(t)
}

func validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
