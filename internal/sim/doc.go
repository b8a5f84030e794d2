// Package sim runs the mesh animation headlessly.
//
// The package provides an explicit, cancellable frame loop for driving an
// animator without a display:
//
//   - [Runner]: steps an animator for a fixed duration under a context
//   - [PointerDriver]: scripts the pointer ([FixedPointer], [SweepPointer])
//   - [Observer]: per-frame hook for recording or streaming state
//   - [Result]: per-frame displacement traces plus final metric values
//
// # Example
//
//	anim := mesh.NewAnimator(1280, 720, opt, seed)
//	r := sim.New(anim)
//	r.SetPointerDriver(sim.SweepPointer{Center: c, Radius: 240, Period: 2})
//	result, _ := r.Run(ctx, sim.Config{Dt: 1.0 / 60, Duration: 5})
//
// Runner instances are not safe for concurrent use; each owns its animator
// for the duration of a run.
package sim
