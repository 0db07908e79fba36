package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Alive, Dead, Cursor lipgloss.Style
	Header, Label, Value lipgloss.Style
	Running, Paused      lipgloss.Style
	Help, Panel, Graph   lipgloss.Style
	sparkHigh, sparkMid  lipgloss.Style
	sparkLow             lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Alive:  lipgloss.NewStyle().Foreground(t.Alive),
		Dead:   lipgloss.NewStyle().Foreground(t.Dead),
		Cursor: lipgloss.NewStyle().Foreground(t.Cursor).Bold(true),
		Header: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		Value:  lipgloss.NewStyle().Foreground(t.Text),
		Running: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Success),
		Paused: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Warning),
		Help: lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 2).
			Width(44),
		Graph:     lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		sparkHigh: lipgloss.NewStyle().Foreground(t.Success),
		sparkMid:  lipgloss.NewStyle().Foreground(t.Accent),
		sparkLow:  lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Sparkline renders a mini sparkline of the last width values.
func (s Styles) Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(0, width))
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range values {
		norm := (v - lo) / span
		c := string(chars[min(len(chars)-1, int(norm*float64(len(chars)-1)))])
		switch {
		case norm > 0.7:
			b.WriteString(s.sparkHigh.Render(c))
		case norm > 0.3:
			b.WriteString(s.sparkMid.Render(c))
		default:
			b.WriteString(s.sparkLow.Render(c))
		}
	}
	return b.String()
}
