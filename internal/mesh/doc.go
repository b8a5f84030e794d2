// Package mesh implements the animated node grid.
//
// A [Grid] is a fixed 2D lattice of [Node] values. Each node carries a rest
// position assigned once at construction and an animated current position,
// plus a basis color derived from its upper/left neighbors so that color
// bleeds diagonally across the lattice.
//
// An [Animator] owns one grid and advances it frame by frame:
//
//	a := mesh.NewAnimator(1280, 720, opt, seed)
//	a.SetPointer(geom.NewPoint(x, y))
//	a.Step()
//	quads := a.Frame()
//
// Nodes near the pointer are pulled toward it with quadratic falloff; every
// step also applies a first-order low-pass filter toward the rest position,
// so the lattice settles elastically when the pointer leaves.
package mesh
