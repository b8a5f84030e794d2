package mesh

import (
	"math/rand"

	"github.com/mklev/gridmesh/internal/geom"
	"github.com/mklev/gridmesh/internal/palette"
)

// Quad is one filled cell of the rendered mesh: four corner positions in a
// fixed winding order plus the resolved fill and border colors. Frontends
// consume quads and know nothing about the lattice.
type Quad struct {
	P      [4]geom.Point
	Fill   palette.Color
	Border palette.Color
}

// Animator owns one grid and the pointer state driving it. All mutable
// state lives here rather than in package globals, so multiple independent
// animators can coexist and runs are reproducible from a seed.
type Animator struct {
	grid          *Grid
	opt           Options
	rng           *rand.Rand
	width, height int

	pointer    geom.Point
	hasPointer bool
}

// NewAnimator builds a grid for a width×height canvas and wraps it.
func NewAnimator(width, height int, opt Options, seed int64) *Animator {
	rng := rand.New(rand.NewSource(seed))
	return &Animator{
		grid:   BuildGrid(width, height, opt, rng),
		opt:    opt,
		rng:    rng,
		width:  width,
		height: height,
	}
}

func (a *Animator) Grid() *Grid      { return a.grid }
func (a *Animator) Options() Options { return a.opt }

// Rebuild replaces the grid with a freshly seeded one of the same dimensions.
func (a *Animator) Rebuild(seed int64) {
	a.rng = rand.New(rand.NewSource(seed))
	a.grid = BuildGrid(a.width, a.height, a.opt, a.rng)
}

// SetPointer records the pointer position in canvas coordinates.
func (a *Animator) SetPointer(p geom.Point) {
	a.pointer = p
	a.hasPointer = true
}

// ClearPointer forgets the pointer; nodes settle back to rest.
func (a *Animator) ClearPointer() {
	a.hasPointer = false
}

// Pointer reports the current pointer position, if one has been set.
func (a *Animator) Pointer() (geom.Point, bool) {
	return a.pointer, a.hasPointer
}

// Step advances the lattice by one frame. Every node except the sentinel
// last row/column is displaced toward the pointer with quadratic falloff
// (zero beyond InfluenceRadius), then low-pass filtered toward its rest
// position so the mesh settles when the pointer stops or leaves.
func (a *Animator) Step() {
	w := a.opt.SmoothWeight
	for row := 0; row < a.grid.Rows-1; row++ {
		for col := 0; col < a.grid.Cols-1; col++ {
			n := a.grid.At(row, col)

			if a.hasPointer {
				dir := a.pointer.Sub(n.Rest)
				d := dir.Magnitude()
				k := 1 - (d/a.opt.InfluenceRadius)*(d/a.opt.InfluenceRadius)
				if k > 0 {
					pull := a.opt.PullStrength * k
					n.Pos = n.Rest.Translate(dir.Normalized().MulVec(geom.NewVector(pull, pull)))
				}
			}

			n.Pos = geom.NewPoint(
				(n.Rest.X+n.Pos.X*w)/(w+1),
				(n.Rest.Y+n.Pos.Y*w)/(w+1),
			)
		}
	}
}

// Frame renders the lattice into quads: one per 2x2 block of adjacent nodes,
// the sentinel row/column supplying corners but never a cell of its own.
// Fills are the stored display colors blended toward the configured base tint.
func (a *Animator) Frame() []Quad {
	quads := make([]Quad, 0, (a.grid.Rows-1)*(a.grid.Cols-1))
	for row := 0; row < a.grid.Rows-1; row++ {
		for col := 0; col < a.grid.Cols-1; col++ {
			n := a.grid.At(row, col)
			fill := n.Display.Blend(a.opt.BaseColor, a.opt.BaseOpacity)
			quads = append(quads, Quad{
				P: [4]geom.Point{
					n.Pos,
					a.grid.At(row, col+1).Pos,
					a.grid.At(row+1, col+1).Pos,
					a.grid.At(row+1, col).Pos,
				},
				Fill:   fill,
				Border: a.opt.BorderColor,
			})
		}
	}
	return quads
}
