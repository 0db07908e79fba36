package viz

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/patterns"
	"github.com/san-kum/lifesim/internal/sim"
)

const (
	historyCapacity = 240
	// gridTop is the number of lines above the board in View.
	gridTop     = 2
	orbitStep   = 0.12
	speedFactor = 1.25
)

// StepMsg reports that the session advanced on its own timer.
type StepMsg struct{}

// StepNotifier is a session observer that wakes the TUI. Notifications
// coalesce, so a slow renderer never blocks the session.
type StepNotifier struct {
	ch chan struct{}
}

func NewStepNotifier() *StepNotifier {
	return &StepNotifier{ch: make(chan struct{}, 1)}
}

func (n *StepNotifier) OnStep(generation, live int) {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// Wait returns a command that delivers the next StepMsg.
func (n *StepNotifier) Wait() tea.Cmd {
	return func() tea.Msg {
		<-n.ch
		return StepMsg{}
	}
}

// LiveModel is the interactive session view: a 2D board with a cursor and
// mouse painting, or a rotating braille projection of a 3D lattice.
type LiveModel struct {
	session  *sim.Session
	notifier *StepNotifier
	history  *metrics.History
	camera   *Camera
	theme    Theme
	styles   Styles

	curR, curC    int
	patternIdx    int
	ruleIdx       int
	painting      bool
	width, height int
	flash         string
	showHelp      bool
}

// NewLiveModel wires a model to s. It registers its own observers.
func NewLiveModel(s *sim.Session) *LiveModel {
	m := &LiveModel{
		session:  s,
		notifier: NewStepNotifier(),
		history:  metrics.NewHistory(historyCapacity),
		camera:   NewCamera(),
		theme:    Themes[0],
		width:    100,
		height:   40,
	}
	m.styles = NewStyles(m.theme)
	s.AddObserver(m.notifier)
	s.AddObserver(m.history)
	m.centerCursor()
	return m
}

func (m *LiveModel) Init() tea.Cmd {
	return m.notifier.Wait()
}

func (m *LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StepMsg:
		return m, m.notifier.Wait()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *LiveModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.flash = ""
	snap := m.session.Snapshot()
	is3D := snap.Mode == config.Mode3D

	switch msg.String() {
	case "q", "ctrl+c":
		m.session.Pause()
		return tea.Quit
	case " ":
		m.session.Toggle()
	case "n", ".":
		if err := m.session.Step(); errors.Is(err, sim.ErrRunning) {
			m.flash = "pause before stepping"
		}
	case "r":
		m.session.Randomize()
		m.history.Reset()
	case "c":
		m.session.Clear()
		m.history.Reset()
	case "tab":
		m.patternIdx++
	case "p":
		m.applyPattern(is3D)
	case "R":
		m.cycleRule(snap.Mode)
	case "1", "2", "3":
		name := config.LevelOrder[msg.String()[0]-'1']
		m.setLevel(name)
	case "m":
		m.toggleMode(is3D)
	case "]":
		m.adjustSpeed(snap.StepsPerSecond * speedFactor)
	case "[":
		m.adjustSpeed(snap.StepsPerSecond / speedFactor)
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = NewStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	case "up", "k":
		if is3D {
			m.camera.Orbit(0, -orbitStep)
		} else {
			m.moveCursor(-1, 0, snap)
		}
	case "down", "j":
		if is3D {
			m.camera.Orbit(0, orbitStep)
		} else {
			m.moveCursor(1, 0, snap)
		}
	case "left", "h":
		if is3D {
			m.camera.Orbit(-orbitStep, 0)
		} else {
			m.moveCursor(0, -1, snap)
		}
	case "right", "l":
		if is3D {
			m.camera.Orbit(orbitStep, 0)
		} else {
			m.moveCursor(0, 1, snap)
		}
	case "x", "enter":
		m.session.ToggleCell(m.curR, m.curC)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	}
	return nil
}

// handleMouse toggles on press and paints live cells while dragging.
func (m *LiveModel) handleMouse(msg tea.MouseMsg) {
	if m.session.Mode() != config.Mode2D {
		return
	}
	snap := m.session.Snapshot()
	r, c, ok := CellAt(msg.X, msg.Y-gridTop, snap.Rows, snap.Cols)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.painting = true
		if ok {
			m.session.ToggleCell(r, c)
			m.curR, m.curC = r, c
		}
	case tea.MouseActionMotion:
		if m.painting && ok {
			m.session.Paint(r, c, true)
			m.curR, m.curC = r, c
		}
	case tea.MouseActionRelease:
		m.painting = false
	}
}

func (m *LiveModel) applyPattern(is3D bool) {
	names := patterns.Names2D()
	if is3D {
		names = patterns.Names3D()
	}
	name := names[m.patternIdx%len(names)]
	m.session.ApplyPattern(name)
	m.history.Reset()
	m.flash = "applied " + name
}

func (m *LiveModel) cycleRule(mode string) {
	names := config.ListRules(mode)
	if len(names) == 0 {
		return
	}
	m.ruleIdx = (m.ruleIdx + 1) % len(names)
	m.session.SetRule(names[m.ruleIdx])
	m.flash = "rule " + names[m.ruleIdx]
}

func (m *LiveModel) setLevel(name string) {
	if err := m.session.SetLevel(name); err != nil {
		m.flash = err.Error()
		return
	}
	m.history.Reset()
	m.centerCursor()
}

func (m *LiveModel) toggleMode(is3D bool) {
	next := config.Mode3D
	if is3D {
		next = config.Mode2D
	}
	if err := m.session.SetMode(next); err != nil {
		m.flash = err.Error()
		return
	}
	m.ruleIdx = 0
	m.history.Reset()
	m.centerCursor()
}

func (m *LiveModel) adjustSpeed(sps float64) {
	sps = max(0.5, min(sps, 60))
	if err := m.session.SetSpeed(sps); err != nil {
		m.flash = err.Error()
	}
}

func (m *LiveModel) moveCursor(dr, dc int, snap sim.Snapshot) {
	m.curR = max(0, min(snap.Rows-1, m.curR+dr))
	m.curC = max(0, min(snap.Cols-1, m.curC+dc))
}

func (m *LiveModel) centerCursor() {
	snap := m.session.Snapshot()
	m.curR, m.curC = snap.Rows/2, snap.Cols/2
}

func (m *LiveModel) View() string {
	snap := m.session.Snapshot()

	status := m.styles.Paused.Render("PAUSED")
	if snap.Running {
		status = m.styles.Running.Render("RUNNING")
	}
	header := m.styles.Header.Render(fmt.Sprintf("LIFE %s · %s", strings.ToUpper(snap.Mode), snap.Level))
	top := header + "\n" + status + "  " + m.styles.Label.UnsetWidth().Render(m.flash)

	var board string
	if snap.Mode == config.Mode3D {
		board = m.view3D(snap)
	} else {
		board = GridView(snap.Cells, snap.Rows, snap.Cols, m.curR, m.curC, m.styles)
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, board, m.styles.Panel.Render(m.panel(snap)))
	if m.showHelp {
		return top + "\n" + main + "\n" + m.styles.Help.Render(liveHelp)
	}
	return top + "\n" + main
}

func (m *LiveModel) view3D(snap sim.Snapshot) string {
	w := max(20, min(m.width-48, 90))
	h := max(10, min(m.height-4, 40))
	canvas := NewCanvas(w, h)
	RenderVoxels(canvas, snap.Cells, snap.Size, m.camera)
	return m.styles.Alive.Render(strings.TrimRight(canvas.String(), "\n"))
}

func (m *LiveModel) panel(snap sim.Snapshot) string {
	var s strings.Builder
	row := func(label, value string) {
		s.WriteString(m.styles.Label.Render(label) + m.styles.Value.Render(value) + "\n")
	}

	row("Generation", fmt.Sprintf("%d", snap.Generation))
	row("Live", fmt.Sprintf("%d", snap.Live))
	row("Rule", snap.Rule)
	row("Speed", fmt.Sprintf("%.1f/s", snap.StepsPerSecond))
	row("Wrap", fmt.Sprintf("%t", snap.Wrap))
	if snap.Mode == config.Mode3D {
		row("Lattice", fmt.Sprintf("%d³", snap.Size))
		row("Zoom", fmt.Sprintf("%.2f", m.camera.Zoom))
	} else {
		row("Board", fmt.Sprintf("%d x %d", snap.Rows, snap.Cols))
		row("Cursor", fmt.Sprintf("%d,%d", m.curR, m.curC))
	}

	names := patterns.Names2D()
	if snap.Mode == config.Mode3D {
		names = patterns.Names3D()
	}
	row("Pattern", names[m.patternIdx%len(names)])
	row("Theme", m.theme.Name)

	if chart := PopulationChart(m.history.Values(), 30, 5, "population"); chart != "" {
		s.WriteString(m.styles.Graph.Render(chart) + "\n")
	}
	s.WriteString(m.styles.Help.Render("SP:run N:step R:rand C:clear\nTAB/P:pattern 1-3:level M:mode\n[ ]:speed ?:help Q:quit"))
	return s.String()
}

const liveHelp = `space  start / pause        n  single step (paused)
r      randomize             c  clear
tab    next pattern          p  apply pattern
R      next rule preset      1-3 level
m      switch 2D / 3D        [ ] slower / faster
arrows move cursor (2D), orbit (3D)
x      toggle cell (2D)      + - zoom (3D)
mouse  click toggles, drag paints (2D)
t      theme                 q  quit`
