package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mklev/gridmesh/internal/geom"
	"github.com/mklev/gridmesh/internal/palette"
)

func vec2(p geom.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func rlColor(c palette.Color) rl.Color {
	return rl.NewColor(uint8(c.R), uint8(c.G), uint8(c.B), 255)
}

func (a *App) drawMesh() {
	for _, q := range a.Anim.Frame() {
		// fan wants counter-clockwise vertices; the quad winding is
		// clockwise in screen space, so walk it backwards
		fan := []rl.Vector2{vec2(q.P[0]), vec2(q.P[3]), vec2(q.P[2]), vec2(q.P[1])}
		rl.DrawTriangleFan(fan, rlColor(q.Fill))

		if a.Borders {
			border := rlColor(q.Border)
			for i := 0; i < 4; i++ {
				rl.DrawLineV(vec2(q.P[i]), vec2(q.P[(i+1)%4]), border)
			}
		}
	}
}
