package geom_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mklev/gridmesh/internal/geom"
)

var _ = Describe("Vector", func() {
	It("normalizes non-zero vectors to unit length", func() {
		vectors := []geom.Vector{
			{X: 3, Y: 4},
			{X: -1, Y: 0},
			{X: 0.001, Y: -0.002},
			{X: 420, Y: 420},
		}
		for _, v := range vectors {
			Expect(v.Normalized().Magnitude()).To(BeNumerically("~", 1.0, 1e-12))
		}
	})

	It("normalizes the zero vector to the zero vector", func() {
		n := geom.Vector{}.Normalized()
		Expect(n.X).To(BeZero())
		Expect(n.Y).To(BeZero())
		Expect(math.IsNaN(n.X)).To(BeFalse())
	})

	It("computes magnitude", func() {
		Expect(geom.Vector{X: 3, Y: 4}.Magnitude()).To(Equal(5.0))
	})

	It("inverts", func() {
		Expect(geom.Vector{X: 2, Y: -3}.Invert()).To(Equal(geom.Vector{X: -2, Y: 3}))
	})

	It("scales and multiplies component-wise", func() {
		Expect(geom.Vector{X: 1, Y: -2}.Scale(3)).To(Equal(geom.Vector{X: 3, Y: -6}))
		Expect(geom.Vector{X: 2, Y: 3}.MulVec(geom.Vector{X: 4, Y: -1})).To(Equal(geom.Vector{X: 8, Y: -3}))
	})
})

var _ = Describe("Point", func() {
	It("derives a vector from the difference of two points", func() {
		a := geom.NewPoint(10, 20)
		b := geom.NewPoint(4, 25)
		Expect(a.Sub(b)).To(Equal(geom.Vector{X: 6, Y: -5}))
	})

	It("translates by a vector", func() {
		p := geom.NewPoint(1, 1).Translate(geom.Vector{X: 2, Y: -3})
		Expect(p).To(Equal(geom.NewPoint(3, -2)))
	})

	It("round-trips translate and sub", func() {
		p := geom.NewPoint(7, -2)
		v := geom.Vector{X: -3.5, Y: 9}
		Expect(p.Translate(v).Sub(p)).To(Equal(v))
	})
})
