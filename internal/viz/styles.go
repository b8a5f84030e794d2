package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(38)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	sparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	sparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	sparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// Sparkline renders a mini chart of values fitted to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			result.WriteString(sparkHigh.Render(c))
		case norm > 0.3:
			result.WriteString(sparkMid.Render(c))
		default:
			result.WriteString(sparkLow.Render(c))
		}
	}

	return result.String()
}
