package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mklev/gridmesh/internal/config"
	"github.com/mklev/gridmesh/internal/geom"
	"github.com/mklev/gridmesh/internal/mesh"
	"github.com/mklev/gridmesh/internal/metrics"
)

const historyCapacity = 600

type TickMsg time.Time

// Model drives the animation in a terminal: each mesh cell becomes a
// two-character colored block, and terminal mouse motion stands in for the
// canvas pointer.
type Model struct {
	anim    *mesh.Animator
	cfg     *config.Config
	seed    int64
	t       float64
	running bool
	borders bool

	meanHistory []float64
}

func NewModel(cfg *config.Config, seed int64) Model {
	return Model{
		anim:        mesh.NewAnimator(cfg.Width, cfg.Height, cfg.MeshOptions(), seed),
		cfg:         cfg,
		seed:        seed,
		running:     true,
		meanHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.seed = time.Now().UnixNano()
			m.anim.Rebuild(m.seed)
		case "b":
			m.borders = !m.borders
		}

	case tea.MouseMsg:
		if p, ok := m.pointerFromCell(msg.X, msg.Y); ok {
			m.anim.SetPointer(p)
		}

	case TickMsg:
		if m.running {
			m.anim.Step()
			m.t += 1.0 / float64(m.cfg.FPS)
			m.meanHistory = append(m.meanHistory, metrics.FrameMean(m.anim.Grid()))
			if len(m.meanHistory) > historyCapacity {
				m.meanHistory = m.meanHistory[1:]
			}
		}
		return m, m.tick()
	}

	return m, nil
}

// pointerFromCell maps a terminal cell back to canvas coordinates: each
// drawn cell is two characters wide and maps to one mesh quad, whose center
// is the pointer target. The canvas padding offset is subtracted first.
func (m Model) pointerFromCell(x, y int) (geom.Point, bool) {
	col := (x - 2) / 2
	row := y - 1
	g := m.anim.Grid()
	if row < 0 || col < 0 || row >= g.Rows-1 || col >= g.Cols-1 {
		return geom.Point{}, false
	}
	cell := float64(m.cfg.EffectiveCellSize())
	return geom.NewPoint(
		(float64(col)+0.5)*cell - 40,
		(float64(row)+0.5)*cell - 40,
	), true
}

func (m Model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.renderCells()),
		statsStyle.Render(m.renderStats()),
	)
}

// renderCells draws one colored block per mesh quad.
func (m Model) renderCells() string {
	quads := m.anim.Frame()
	g := m.anim.Grid()
	cols := g.Cols - 1

	var sb strings.Builder
	for i, q := range quads {
		if i > 0 && i%cols == 0 {
			sb.WriteByte('\n')
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(q.Fill.Hex()))
		if m.borders {
			style = style.Background(lipgloss.Color(q.Border.Hex()))
		}
		sb.WriteString(style.Render("██"))
	}
	return sb.String()
}

func (m Model) renderStats() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("gridmesh"))
	sb.WriteByte('\n')

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(valueStyle.Render(value))
		sb.WriteByte('\n')
	}

	g := m.anim.Grid()
	row("grid", fmt.Sprintf("%dx%d", g.Cols, g.Rows))
	row("seed", fmt.Sprintf("%d", m.seed))
	row("time", fmt.Sprintf("%.1fs", m.t))
	row("mean disp", fmt.Sprintf("%.2f", metrics.FrameMean(g)))
	row("max disp", fmt.Sprintf("%.2f", metrics.FrameMax(g)))
	if ptr, ok := m.anim.Pointer(); ok {
		row("pointer", fmt.Sprintf("%.0f,%.0f", ptr.X, ptr.Y))
	}

	if !m.running {
		sb.WriteString(pausedStyle.Render("paused"))
		sb.WriteByte('\n')
	}

	if len(m.meanHistory) > 1 {
		sb.WriteByte('\n')
		sb.WriteString(Sparkline(m.meanHistory, 30))
		sb.WriteByte('\n')
	}

	sb.WriteString(helpStyle.Render("move mouse to stir\nspace pause · r reseed · b borders · q quit"))
	return sb.String()
}

// SettlePlot renders the recorded mean displacement history as an ascii
// graph, shown after the live session ends.
func SettlePlot(history []float64) string {
	if len(history) < 2 {
		return ""
	}
	return asciigraph.Plot(history,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("mean displacement"),
	)
}

// History exposes the recorded displacement trace.
func (m Model) History() []float64 { return m.meanHistory }
