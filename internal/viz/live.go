package viz

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jskelin/physlab/internal/dynamo"
	"github.com/jskelin/physlab/internal/physics"
)

const (
	liveWidth       = 56
	liveHeight      = 18
	historyCapacity = 400
	stepsPerFrame   = 4
)

type TickMsg time.Time

// LiveModel animates the driven pendulum in the terminal: the bob on a
// braille canvas, a theta trace, and gamma adjustable live to watch the
// attractor change character.
type LiveModel struct {
	pendulum     *physics.DrivenPendulum
	integrator   dynamo.Integrator
	state        dynamo.State
	initialState dynamo.State
	t, dt        float64
	canvas       *Canvas
	history      []float64
	running      bool
}

func NewLiveModel(p *physics.DrivenPendulum, integ dynamo.Integrator, x0 dynamo.State, dt float64) LiveModel {
	return LiveModel{
		pendulum:     p,
		integrator:   integ,
		state:        x0.Clone(),
		initialState: x0.Clone(),
		dt:           dt,
		canvas:       NewCanvas(liveWidth, liveHeight),
		history:      make([]float64, 0, historyCapacity),
		running:      true,
	}
}

func (m LiveModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.initialState.Clone()
			m.t = 0
			m.history = m.history[:0]
		case "up", "k":
			m.pendulum.Gamma *= 1.05
		case "down", "j":
			m.pendulum.Gamma *= 0.95
		}
		return m, nil

	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerFrame; i++ {
				m.state = m.integrator.Step(m.pendulum, m.state, m.t, m.dt)
				m.t += m.dt
			}
			if len(m.history) >= historyCapacity {
				m.history = m.history[1:]
			}
			m.history = append(m.history, physics.WrapAngle(m.state[0]))
		}
		return m, tick()
	}

	return m, nil
}

func (m LiveModel) View() string {
	m.canvas.Clear()

	// Pivot at canvas center; rod length fills most of the view.
	cx := liveWidth
	cy := liveHeight * 2
	rod := float64(liveHeight*4)/2 - 4

	theta := m.state[0]
	bx := cx + int(rod*math.Sin(theta))
	by := cy + int(rod*math.Cos(theta))
	m.canvas.DrawLine(cx, cy, bx, by)
	m.canvas.Set(bx, by)
	m.canvas.Set(bx+1, by)
	m.canvas.Set(bx, by+1)
	m.canvas.Set(bx+1, by+1)

	status := "running"
	if !m.running {
		status = "paused"
	}

	stats := fmt.Sprintf("%s\n\n%s %s\n%s %8.3f\n%s %8.3f\n%s %8.3f\n%s %8.3f",
		HeaderStyle.Render("driven pendulum"),
		LabelStyle.Render("status"), ValueStyle.Render(status),
		LabelStyle.Render("t"), m.t,
		LabelStyle.Render("theta"), physics.WrapAngle(m.state[0]),
		LabelStyle.Render("omega"), m.state[1],
		LabelStyle.Render("gamma"), m.pendulum.Gamma,
	)

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		CanvasStyle.Render(m.canvas.String()),
		StatsStyle.Render(stats),
	)

	trace := ""
	if len(m.history) > 1 {
		trace = Line(m.history, "theta (wrapped)", 70, 8)
	}

	help := HelpStyle.Render("space pause · r reset · up/down gamma · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, main, trace, help)
}
