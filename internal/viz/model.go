package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

const (
	frameRate   = 60
	chartWidth  = 60
	chartHeight = 6
	stripWidth  = 60
)

type TickMsg time.Time

// Model holds the parameters being edited, the last good trajectory and the
// playback cursor into it.
type Model struct {
	name     string
	params   vibration.Parameters
	traj     *vibration.Trajectory
	energy   []float64
	err      error
	stale    bool
	keys     []string
	selected int
	cursor   int
	running  bool
	maxAbsX  float64
	stride   int
	quitting bool
}

// NewModel simulates p once; an invalid p is reported in the view and the
// user can edit it.
func NewModel(name string, p vibration.Parameters) Model {
	m := Model{
		name:    name,
		params:  p,
		keys:    vibration.ParameterNames(),
		running: true,
	}
	m.recompute()
	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input events and advances playback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r", "enter":
			m.recompute()
		case "[":
			m.scrub(-10)
		case "]":
			m.scrub(10)
		case "tab":
			m.selected = (m.selected + 1) % len(m.keys)
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "0":
			m.setParam(0)
		}
	case TickMsg:
		if m.running && m.traj != nil {
			m.cursor += m.stride
			if m.cursor >= m.traj.Len()-1 {
				m.cursor = m.traj.Len() - 1
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) adjustParam(factor float64) {
	val, _ := m.params.Get(m.keys[m.selected])
	switch {
	case val == 0 && factor > 1:
		val = 0.1
	default:
		val *= factor
	}
	m.setParam(val)
}

func (m *Model) setParam(val float64) {
	p, err := m.params.With(m.keys[m.selected], val)
	if err != nil {
		m.err = err
		return
	}
	m.params = p
	m.stale = true
}

// recompute runs Simulate with the edited parameters. On failure the last
// good trajectory stays in place.
func (m *Model) recompute() {
	tr, err := vibration.Simulate(m.params)
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.stale = false
	m.traj = tr
	m.energy = tr.Energy(m.params)
	m.cursor = 0
	m.running = true

	m.maxAbsX = 0
	for _, x := range tr.X {
		m.maxAbsX = math.Max(m.maxAbsX, math.Abs(x))
	}

	m.stride = int(math.Round(1.0 / frameRate / m.params.TimeStep))
	if m.stride < 1 {
		m.stride = 1
	}
}

func (m *Model) scrub(delta int) {
	if m.traj == nil {
		return
	}
	m.running = false
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > m.traj.Len()-1 {
		m.cursor = m.traj.Len() - 1
	}
}

// Params returns the parameters as currently edited.
func (m Model) Params() vibration.Parameters { return m.params }

// Trajectory returns the last successfully computed trajectory.
func (m Model) Trajectory() *vibration.Trajectory { return m.traj }

func (m Model) Cursor() int { return m.cursor }

func (m Model) Err() error { return m.err }

func (m Model) Stale() bool { return m.stale }

// View renders the TUI interface.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var left strings.Builder
	left.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")

	if m.traj != nil {
		t, x, v := m.traj.Sample(m.cursor)
		left.WriteString(drawSpring(x, m.maxAbsX, stripWidth) + "\n\n")

		// asciigraph needs at least two points to interpolate
		if end := max(m.cursor, 1) + 1; end <= m.traj.Len() {
			xs := downsample(m.traj.X[:end], chartWidth)
			vs := downsample(m.traj.V[:end], chartWidth)
			left.WriteString(graphStyle.Render(asciigraph.Plot(xs,
				asciigraph.Height(chartHeight), asciigraph.Width(chartWidth),
				asciigraph.Caption("Displacement (m)"))) + "\n")
			left.WriteString(graphStyle.Render(asciigraph.Plot(vs,
				asciigraph.Height(chartHeight), asciigraph.Width(chartWidth),
				asciigraph.Caption("Velocity (m/s)"))) + "\n")
		}

		left.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", t)) + "\n")
		left.WriteString(labelStyle.Render("x") + valueStyle.Render(fmt.Sprintf("%+.4f", x)) + "\n")
		left.WriteString(labelStyle.Render("v") + valueStyle.Render(fmt.Sprintf("%+.4f", v)) + "\n")
		left.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4f", m.energy[m.cursor])) + "\n")
	}

	var right strings.Builder
	if m.running {
		right.WriteString(statusRunning.Render("PLAYING") + "\n\n")
	} else {
		right.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	}

	right.WriteString("PARAMETERS\n")
	for i, k := range m.keys {
		val, _ := m.params.Get(k)
		line := fmt.Sprintf("%-5s %10.4g", k, val)
		if i == m.selected {
			right.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			right.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	if m.stale {
		right.WriteString("\n" + statusPaused.Render("edited: press r to recompute") + "\n")
	}
	if m.err != nil {
		right.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	right.WriteString(helpStyle.Render("─────────────────────\nSP:Pause R:Recompute Q:Quit\nTab:Select ↑↓:Tune 0:Zero\n[ ]:Scrub"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left.String(), panelStyle.Render(right.String()))
}

// drawSpring renders a wall, a spring and the mass on one line with the
// equilibrium position in the middle.
func drawSpring(x, maxAbs float64, width int) string {
	if maxAbs == 0 {
		maxAbs = 1
	}
	center := width / 2
	pos := center + int(x/maxAbs*float64(width/2-4))
	if pos < 2 {
		pos = 2
	}
	if pos > width-2 {
		pos = width - 2
	}

	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	row[0] = '▌'
	for i := 1; i < pos-1; i++ {
		if i%2 == 0 {
			row[i] = '/'
		} else {
			row[i] = '\\'
		}
	}
	row[pos-1] = '['
	row[pos] = '■'
	row[pos+1] = ']'
	row[center] = replaceBlank(row[center], '┊')
	return string(row)
}

func replaceBlank(r, with rune) rune {
	if r == ' ' {
		return with
	}
	return r
}

// downsample picks at most n evenly spaced samples, always keeping the last.
func downsample(data []float64, n int) []float64 {
	if len(data) <= n {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = data[i*(len(data)-1)/(n-1)]
	}
	return out
}

// Run starts the interactive view in the alternate screen and returns the
// parameters as they were when the user quit.
func Run(name string, p vibration.Parameters) (vibration.Parameters, error) {
	final, err := tea.NewProgram(NewModel(name, p), tea.WithAltScreen()).Run()
	if err != nil {
		return p, err
	}
	if m, ok := final.(Model); ok {
		return m.Params(), nil
	}
	return p, nil
}
