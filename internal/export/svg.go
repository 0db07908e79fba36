package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/lifesim/internal/viz"
)

const (
	background = "#0a0a0a"
	foreground = "#7bd88f"
)

func svgHeader(sb *strings.Builder, width, height float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

// CanvasToSVG converts a Braille canvas to SVG, one circle per lit dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	var sb strings.Builder
	svgHeader(&sb, float64(canvas.DotWidth())*scale, float64(canvas.DotHeight())*scale)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", foreground)

	r := scale * 0.4
	for y := 0; y < canvas.DotHeight(); y++ {
		for x := 0; x < canvas.DotWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, r)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// BoardToSVG draws a row-major 2D board, one square per live cell.
func BoardToSVG(cells []uint8, rows, cols int, scale float64) string {
	if rows <= 0 || cols <= 0 || len(cells) < rows*cols {
		return ""
	}

	var sb strings.Builder
	svgHeader(&sb, float64(cols)*scale, float64(rows)*scale)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", foreground)

	side := max(scale-1, scale*0.9)
	for i, v := range cells[:rows*cols] {
		if v == 0 {
			continue
		}
		x := float64(i%cols) * scale
		y := float64(i/cols) * scale
		fmt.Fprintf(&sb, "<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\"/>\n", x, y, side, side)
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PopulationToSVG plots a population series as a polyline. It needs at
// least two samples.
func PopulationToSVG(values []int, width, height int, strokeColor string) string {
	if len(values) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := float64(hi - lo)
	if span == 0 {
		span = 1
	}
	pad := 0.1 * float64(height)
	plotH := float64(height) - 2*pad

	var sb strings.Builder
	svgHeader(&sb, float64(width), float64(height))
	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor)

	for i, v := range values {
		x := float64(i) / float64(len(values)-1) * float64(width)
		y := float64(height) - pad - float64(v-lo)/span*plotH
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
