package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	hiddenGlyph = " "
	flagGlyph   = "F"
)

func glyph(b Board, x, y int, revealAll bool) string {
	if revealAll {
		return b.Value(x, y).String()
	}
	switch b.Visibility(x, y) {
	case mines.Revealed:
		return b.Value(x, y).String()
	case mines.Flagged:
		return flagGlyph
	default:
		return hiddenGlyph
	}
}

// Text draws b as a table: column indices on top, row indices on the left,
// cells separated by bars and padded to the widest entry of their column.
// With revealAll every cell shows its true value, which is how the console
// game prints the board once the game is over.
func Text(b Board, revealAll bool) string {
	width, height := b.Size()

	cells := make([][]string, height)
	colWidth := make([]int, width)
	for x := range width {
		colWidth[x] = len(strconv.Itoa(x))
	}
	for y := range height {
		cells[y] = make([]string, width)
		for x := range width {
			g := glyph(b, x, y, revealAll)
			cells[y][x] = g
			colWidth[x] = max(colWidth[x], len(g))
		}
	}
	labelWidth := len(strconv.Itoa(height - 1))

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", labelWidth+2))
	for x := range width {
		if x > 0 {
			header.WriteString("  ")
		}
		fmt.Fprintf(&header, "%-*d", colWidth[x], x)
	}

	rows := make([]string, height)
	for y := range height {
		var row strings.Builder
		fmt.Fprintf(&row, "%*d |", labelWidth, y)
		for x := range width {
			fmt.Fprintf(&row, "%-*s |", colWidth[x], cells[y][x])
		}
		rows[y] = row.String()
	}

	rule := strings.Repeat("-", len(rows[0]))

	var out strings.Builder
	out.WriteString(strings.TrimRight(header.String(), " "))
	out.WriteString("\n")
	out.WriteString(rule)
	out.WriteString("\n")
	for _, row := range rows {
		out.WriteString(row)
		out.WriteString("\n")
	}
	out.WriteString(rule)
	return out.String()
}
