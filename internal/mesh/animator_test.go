package mesh

import (
	"math"
	"testing"

	"github.com/mklev/gridmesh/internal/geom"
)

func meanOffset(a *Animator) float64 {
	g := a.Grid()
	sum, n := 0.0, 0
	for row := 0; row < g.Rows-1; row++ {
		for col := 0; col < g.Cols-1; col++ {
			sum += g.At(row, col).Pos.Sub(g.At(row, col).Rest).Magnitude()
			n++
		}
	}
	return sum / float64(n)
}

func displace(a *Animator) {
	g := a.Grid()
	for row := 0; row < g.Rows-1; row++ {
		for col := 0; col < g.Cols-1; col++ {
			n := g.At(row, col)
			n.Pos = n.Rest.Translate(geom.NewVector(15, -10))
		}
	}
}

func TestStepMonotonicSettling(t *testing.T) {
	a := NewAnimator(400, 200, testOptions(), 1)
	displace(a)

	prev := meanOffset(a)
	for i := 0; i < 10; i++ {
		a.Step()
		cur := meanOffset(a)
		if cur >= prev {
			t.Fatalf("step %d: offset %f did not shrink from %f", i, cur, prev)
		}
		prev = cur
	}
}

func TestStepConvergesToRest(t *testing.T) {
	a := NewAnimator(400, 200, testOptions(), 2)
	displace(a)

	// w/(w+1) decay reaches sub-epsilon offsets within a few hundred steps
	for i := 0; i < 600; i++ {
		a.Step()
	}
	if off := meanOffset(a); off > 1e-3 {
		t.Errorf("expected convergence to rest, mean offset %f", off)
	}
}

func TestStepPointerAtRestIsStable(t *testing.T) {
	a := NewAnimator(400, 200, testOptions(), 3)
	n := a.Grid().At(2, 2)

	a.SetPointer(n.Rest)
	a.Step()

	off := n.Pos.Sub(n.Rest).Magnitude()
	if math.IsNaN(n.Pos.X) || math.IsNaN(n.Pos.Y) {
		t.Fatal("pointer at rest position produced NaN")
	}
	if off != 0 {
		t.Errorf("expected zero displacement, got %f", off)
	}
}

func TestStepPullsTowardPointer(t *testing.T) {
	opt := testOptions()
	a := NewAnimator(400, 200, opt, 4)
	n := a.Grid().At(2, 2)

	ptr := n.Rest.Translate(geom.NewVector(100, 0))
	a.SetPointer(ptr)
	a.Step()

	if n.Pos.X <= n.Rest.X {
		t.Errorf("expected pull in +x, rest %v pos %v", n.Rest, n.Pos)
	}
	if n.Pos.Y != n.Rest.Y {
		t.Errorf("pull along x must not displace y: rest %v pos %v", n.Rest, n.Pos)
	}

	// displacement is the pull scaled by the smoothing filter
	d := 100.0
	k := 1 - (d/opt.InfluenceRadius)*(d/opt.InfluenceRadius)
	want := opt.PullStrength * k * opt.SmoothWeight / (opt.SmoothWeight + 1)
	if got := n.Pos.X - n.Rest.X; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected displacement %f, got %f", want, got)
	}
}

func TestStepNoInfluenceBeyondRadius(t *testing.T) {
	opt := testOptions()
	a := NewAnimator(400, 200, opt, 5)
	n := a.Grid().At(2, 2)

	a.SetPointer(n.Rest.Translate(geom.NewVector(opt.InfluenceRadius+1, 0)))
	a.Step()

	if !n.Pos.Equal(n.Rest) {
		t.Errorf("node beyond influence radius moved: rest %v pos %v", n.Rest, n.Pos)
	}
}

func TestStepRestNeverMutates(t *testing.T) {
	a := NewAnimator(400, 200, testOptions(), 6)
	g := a.Grid()

	rests := make([]geom.Point, 0, g.Rows*g.Cols)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			rests = append(rests, g.At(row, col).Rest)
		}
	}

	a.SetPointer(geom.NewPoint(200, 100))
	for i := 0; i < 50; i++ {
		a.Step()
	}

	i := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if !g.At(row, col).Rest.Equal(rests[i]) {
				t.Fatalf("rest position of (%d,%d) changed", row, col)
			}
			i++
		}
	}
}

func TestFrameQuadLayout(t *testing.T) {
	a := NewAnimator(400, 200, testOptions(), 7)
	g := a.Grid()

	quads := a.Frame()
	want := (g.Rows - 1) * (g.Cols - 1)
	if len(quads) != want {
		t.Fatalf("expected %d quads, got %d", want, len(quads))
	}

	// first quad connects the four top-left nodes in winding order
	q := quads[0]
	if !q.P[0].Equal(g.At(0, 0).Pos) || !q.P[1].Equal(g.At(0, 1).Pos) ||
		!q.P[2].Equal(g.At(1, 1).Pos) || !q.P[3].Equal(g.At(1, 0).Pos) {
		t.Error("first quad corners out of winding order")
	}
}

func TestFrameFillBlendsTowardBase(t *testing.T) {
	opt := testOptions()
	a := NewAnimator(400, 200, opt, 8)

	q := a.Frame()[0]
	want := a.Grid().At(0, 0).Display.Blend(opt.BaseColor, opt.BaseOpacity)
	if q.Fill != want {
		t.Errorf("expected fill %v, got %v", want, q.Fill)
	}
	if q.Border != opt.BorderColor {
		t.Errorf("expected border %v, got %v", opt.BorderColor, q.Border)
	}
}

func TestRebuildResizesNothing(t *testing.T) {
	a := NewAnimator(400, 200, testOptions(), 9)
	rows, cols := a.Grid().Rows, a.Grid().Cols

	a.Rebuild(10)
	if a.Grid().Rows != rows || a.Grid().Cols != cols {
		t.Errorf("rebuild changed dimensions: %dx%d -> %dx%d",
			rows, cols, a.Grid().Rows, a.Grid().Cols)
	}
}
