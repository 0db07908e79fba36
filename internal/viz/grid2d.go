package viz

import "strings"

// CellWidth is the number of terminal columns a GridView cell takes.
const CellWidth = 2

const (
	aliveGlyph  = "██"
	deadGlyph   = " ·"
	cursorGlyph = "[]"
)

// GridView renders a row-major rows x cols board two characters per cell.
// A cursor outside the board is not drawn.
func GridView(cells []uint8, rows, cols, curR, curC int, st Styles) string {
	var b strings.Builder
	var run strings.Builder
	runStyle := -1

	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch runStyle {
		case 0:
			b.WriteString(st.Dead.Render(run.String()))
		case 1:
			b.WriteString(st.Alive.Render(run.String()))
		}
		run.Reset()
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == curR && c == curC {
				flush()
				style := st.Cursor
				if cells[r*cols+c] != 0 {
					style = style.Reverse(true)
				}
				b.WriteString(style.Render(cursorGlyph))
				runStyle = -1
				continue
			}
			s, glyph := 0, deadGlyph
			if cells[r*cols+c] != 0 {
				s, glyph = 1, aliveGlyph
			}
			if s != runStyle {
				flush()
				runStyle = s
			}
			run.WriteString(glyph)
		}
		flush()
		runStyle = -1
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// CellAt maps a terminal position relative to the top-left of a GridView to
// a board cell. ok is false outside the board.
func CellAt(x, y, rows, cols int) (r, c int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	r, c = y, x/CellWidth
	return r, c, r < rows && c < cols
}
