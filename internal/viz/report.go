package viz

import (
	"github.com/guptarohit/asciigraph"
)

// PopulationChart plots population over generations. It returns an empty
// string when there are fewer than two samples.
func PopulationChart(values []float64, width, height int, caption string) string {
	if len(values) < 2 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(max(1, height)),
		asciigraph.Width(max(2, width)),
		asciigraph.Precision(0),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(values, opts...)
}

// Ints converts a population series for charting.
func Ints(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// MultiPopulationChart overlays several runs on one chart.
func MultiPopulationChart(series [][]float64, width, height int, caption string) string {
	var data [][]float64
	for _, s := range series {
		if len(s) >= 2 {
			data = append(data, s)
		}
	}
	if len(data) == 0 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(max(1, height)),
		asciigraph.Width(max(2, width)),
		asciigraph.Precision(0),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	if len(data) > 1 {
		colors := []asciigraph.AnsiColor{asciigraph.Green, asciigraph.Cyan, asciigraph.Yellow, asciigraph.Magenta, asciigraph.Red, asciigraph.Blue}
		seriesColors := make([]asciigraph.AnsiColor, len(data))
		for i := range data {
			seriesColors[i] = colors[i%len(colors)]
		}
		opts = append(opts, asciigraph.SeriesColors(seriesColors...))
	}
	return asciigraph.PlotMany(data, opts...)
}
