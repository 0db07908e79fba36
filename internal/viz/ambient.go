package viz

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/lifesim/internal/ambient"
)

// ambientTickMsg carries the epoch it was scheduled in. Ticks from an older
// epoch are dropped, which is how pausing and cadence changes cancel the
// pending timer.
type ambientTickMsg struct {
	epoch int
}

// AmbientModel renders the self-sustaining field one cell per braille dot.
// It stops ticking while the terminal reports lost focus.
type AmbientModel struct {
	field   *ambient.Field
	styles  Styles
	epoch   int
	visible bool
	reduced bool
	status  bool
	canvas  *Canvas

	width, height int
	last          ambient.TickReport
	history       []float64
}

// NewAmbientModel builds a field for an initial terminal size. The cell size
// is forced to one dot.
func NewAmbientModel(cfg ambient.Config, rng *rand.Rand, width, height int) *AmbientModel {
	cfg.CellSize = 1
	m := &AmbientModel{
		styles:  NewStyles(Themes[0]),
		visible: true,
		reduced: cfg.ReducedMotion,
		status:  true,
		width:   max(1, width),
		height:  max(2, height),
	}
	m.field = ambient.New(cfg, m.dotWidth(), m.dotHeight(), rng)
	m.canvas = NewCanvas(m.width, m.boardLines())
	return m
}

func (m *AmbientModel) Field() *ambient.Field { return m.field }
func (m *AmbientModel) Epoch() int            { return m.epoch }
func (m *AmbientModel) Visible() bool         { return m.visible }

func (m *AmbientModel) boardLines() int {
	if m.status {
		return max(1, m.height-1)
	}
	return m.height
}

func (m *AmbientModel) dotWidth() int  { return m.width * 2 }
func (m *AmbientModel) dotHeight() int { return m.boardLines() * 4 }

func (m *AmbientModel) Init() tea.Cmd {
	return m.schedule()
}

func (m *AmbientModel) schedule() tea.Cmd {
	if !m.visible {
		return nil
	}
	epoch := m.epoch
	return tea.Tick(m.field.Interval(m.reduced), func(time.Time) tea.Msg {
		return ambientTickMsg{epoch: epoch}
	})
}

// restart invalidates the pending tick and schedules a fresh one.
func (m *AmbientModel) restart() tea.Cmd {
	m.epoch++
	return m.schedule()
}

func (m *AmbientModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ambientTickMsg:
		if msg.epoch != m.epoch || !m.visible {
			return m, nil
		}
		m.last = m.field.Tick()
		m.history = append(m.history, float64(m.last.Live))
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
		return m, m.schedule()
	case tea.WindowSizeMsg:
		m.width, m.height = max(1, msg.Width), max(2, msg.Height)
		m.resize()
		return m, m.restart()
	case tea.FocusMsg:
		m.visible = true
		return m, m.restart()
	case tea.BlurMsg:
		m.visible = false
		m.epoch++
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "m":
			m.reduced = !m.reduced
			return m, m.restart()
		case "s":
			m.status = !m.status
			m.resize()
			return m, m.restart()
		}
	}
	return m, nil
}

func (m *AmbientModel) resize() {
	m.field.Resize(m.dotWidth(), m.dotHeight())
	m.canvas = NewCanvas(m.width, m.boardLines())
	m.history = m.history[:0]
	m.last = ambient.TickReport{Live: m.field.Grid().Live()}
}

func (m *AmbientModel) View() string {
	g := m.field.Grid()
	m.canvas.Clear()
	cells := g.Cells()
	cols := g.Cols()
	for i, v := range cells {
		if v != 0 {
			m.canvas.Set(i%cols, i/cols)
		}
	}

	board := m.styles.Alive.Render(strings.TrimRight(m.canvas.String(), "\n"))
	if !m.status {
		return board
	}

	cadence := "normal"
	if m.reduced {
		cadence = "reduced motion"
	}
	if !m.visible {
		cadence = "paused"
	}
	line := fmt.Sprintf("gen %d · live %d · %s · m:motion s:status q:quit ", g.Generation(), g.Live(), cadence)
	spark := m.styles.Sparkline(m.history, max(0, m.width-len([]rune(line))))
	return board + "\n" + m.styles.Help.UnsetMarginTop().Render(line) + spark
}
