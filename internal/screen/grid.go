package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	ch      rune
	reverse bool
}

// Grid is an in-memory Terminal. It keeps the painted characters so they
// can be inspected or rendered as a single string.
type Grid struct {
	width, height int
	cells         [][]cell

	row, col      int
	reverse       bool
	cursorVisible bool
}

func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:         width,
		height:        height,
		cells:         make([][]cell, height),
		cursorVisible: true,
	}
	for r := range g.cells {
		g.cells[r] = blankRow(width)
	}
	return g
}

func blankRow(width int) []cell {
	row := make([]cell, width)
	for i := range row {
		row[i] = cell{ch: ' '}
	}
	return row
}

func (g *Grid) MoveTo(row, col int) {
	g.row, g.col = row, col
}

func (g *Grid) ClearLine() {
	if g.row < 0 || g.row >= g.height {
		return
	}
	g.cells[g.row] = blankRow(g.width)
}

func (g *Grid) ShowCursor() { g.cursorVisible = true }

func (g *Grid) HideCursor() { g.cursorVisible = false }

func (g *Grid) SetReverse(on bool) { g.reverse = on }

// Write paints text at the cursor and advances it. Characters falling
// outside the grid are dropped.
func (g *Grid) Write(text string) {
	for _, r := range text {
		if g.row >= 0 && g.row < g.height && g.col >= 0 && g.col < g.width {
			g.cells[g.row][g.col] = cell{ch: r, reverse: g.reverse}
		}
		g.col++
	}
}

func (g *Grid) Flush() error { return nil }

// Cursor returns the cursor position and whether it is shown.
func (g *Grid) Cursor() (row, col int, visible bool) {
	return g.row, g.col, g.cursorVisible
}

// Line returns the text of a row, padded to the grid width.
func (g *Grid) Line(row int) string {
	if row < 0 || row >= g.height {
		return ""
	}
	var b strings.Builder
	for _, c := range g.cells[row] {
		b.WriteRune(c.ch)
	}
	return b.String()
}

// Reversed reports whether the cell at row, col is painted in reverse video.
func (g *Grid) Reversed(row, col int) bool {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return false
	}
	return g.cells[row][col].reverse
}

// String returns all rows with trailing spaces trimmed.
func (g *Grid) String() string {
	lines := make([]string, g.height)
	for r := range lines {
		lines[r] = strings.TrimRight(g.Line(r), " ")
	}
	return strings.Join(lines, "\n")
}

// RenderLines draws each row with reverse cells in the reverse style and,
// when the cursor is shown, the cell under it in the cursor style.
func (g *Grid) RenderLines(reverse, cursor lipgloss.Style) []string {
	lines := make([]string, g.height)
	for r, row := range g.cells {
		var b strings.Builder
		var run strings.Builder
		runReverse := false

		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runReverse {
				b.WriteString(reverse.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}

		for c, ce := range row {
			if g.cursorVisible && r == g.row && c == g.col {
				flush()
				b.WriteString(cursor.Render(string(ce.ch)))
				continue
			}
			if ce.reverse != runReverse {
				flush()
				runReverse = ce.reverse
			}
			run.WriteRune(ce.ch)
		}
		flush()
		lines[r] = b.String()
	}
	return lines
}
