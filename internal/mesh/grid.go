package mesh

import (
	"math"
	"math/rand"

	"github.com/mklev/gridmesh/internal/geom"
	"github.com/mklev/gridmesh/internal/palette"
)

// overscan rows/cols past the canvas edge so quads cover it fully, and the
// fixed origin shift applied to every nominal cell position.
const (
	overscan    = 5
	originShift = -40.0
)

// Node is one cell of the lattice.
type Node struct {
	Basis   palette.Color // reference color set at construction
	Display palette.Color // color used when rendering
	Rest    geom.Point    // fixed anchor, never mutated after build
	Pos     geom.Point    // animated position
}

// Options are the tuning parameters of the animation. All values have
// sensible defaults in the config package; zero values here are taken
// literally.
type Options struct {
	CellSize           int
	PosJitter          float64 // max positional jitter per axis, in pixels
	StartColor         palette.Color
	StartJitterPercent float64 // jitter applied where a neighbor channel is missing
	DriftPercent       float64 // jitter applied to borrowed neighbor channels
	BaseColor          palette.Color
	BorderColor        palette.Color
	BaseOpacity        float64 // weight of BaseColor in the render-time blend
	InfluenceRadius    float64 // pointer distance at which influence reaches zero
	PullStrength       float64 // max displacement toward the pointer, in pixels
	SmoothWeight       float64 // low-pass weight; each step keeps w/(w+1) of the offset
}

// Grid is the node lattice. Dimensions are fixed at construction.
type Grid struct {
	Rows, Cols int
	nodes      [][]Node
}

// At returns the node at (row, col). The pointer stays valid for the grid's
// lifetime; callers mutate Pos and Display through it.
func (g *Grid) At(row, col int) *Node {
	return &g.nodes[row][col]
}

// BuildGrid allocates and fully populates a lattice covering a width×height
// canvas: ceil(width/cellSize)+5 columns by ceil(height/cellSize)+5 rows.
//
// Each node's rest position is its nominal lattice position shifted by the
// fixed origin offset and jittered independently per axis. Its basis color
// borrows the red channel from the node above, green from the up-left
// diagonal and blue from the node to the left, falling back to StartColor at
// the edges; every borrowed channel is re-jittered so the gradient is not
// perfectly deterministic.
func BuildGrid(width, height int, opt Options, rng *rand.Rand) *Grid {
	cols := int(math.Ceil(float64(width)/float64(opt.CellSize))) + overscan
	rows := int(math.Ceil(float64(height)/float64(opt.CellSize))) + overscan

	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		nodes: make([][]Node, rows),
	}

	for row := 0; row < rows; row++ {
		g.nodes[row] = make([]Node, cols)
		for col := 0; col < cols; col++ {
			pos := geom.NewPoint(
				float64(col*opt.CellSize)+originShift+jitter(rng, opt.PosJitter),
				float64(row*opt.CellSize)+originShift+jitter(rng, opt.PosJitter),
			)

			var r, gc, b int
			if row > 0 {
				r = palette.JitterChannel(rng, g.nodes[row-1][col].Basis.R, opt.DriftPercent)
			} else {
				r = palette.JitterChannel(rng, opt.StartColor.R, opt.StartJitterPercent)
			}
			if row > 0 && col > 0 {
				gc = palette.JitterChannel(rng, g.nodes[row-1][col-1].Basis.G, opt.DriftPercent)
			} else {
				gc = palette.JitterChannel(rng, opt.StartColor.G, opt.StartJitterPercent)
			}
			if col > 0 {
				b = palette.JitterChannel(rng, g.nodes[row][col-1].Basis.B, opt.DriftPercent)
			} else {
				b = palette.JitterChannel(rng, opt.StartColor.B, opt.StartJitterPercent)
			}

			basis := palette.New(r, gc, b)
			g.nodes[row][col] = Node{
				Basis:   basis,
				Display: basis,
				Rest:    pos,
				Pos:     pos,
			}
		}
	}

	return g
}

func jitter(rng *rand.Rand, amp float64) float64 {
	if amp == 0 {
		return 0
	}
	return (rng.Float64()*2 - 1) * amp
}
