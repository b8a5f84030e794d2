package export

import (
	"fmt"
	"strings"

	"github.com/mklev/gridmesh/internal/mesh"
)

// FrameToSVG renders one frame of the mesh as an SVG document: one polygon
// per quad, filled and stroked with the quad's resolved colors. It needs no
// display surface, which also makes it the reference renderer for tests.
func FrameToSVG(quads []mesh.Quad, width, height int, borders bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, q := range quads {
		sb.WriteString(`<polygon points="`)
		for i, p := range q.P {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
		}
		if borders {
			sb.WriteString(fmt.Sprintf(`" fill="%s" stroke="%s" stroke-width="1"/>`, q.Fill.Hex(), q.Border.Hex()))
		} else {
			sb.WriteString(fmt.Sprintf(`" fill="%s"/>`, q.Fill.Hex()))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("</svg>")
	return sb.String()
}
