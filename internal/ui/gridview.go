package ui

import (
	"fmt"
	"strings"
)

// RenderGrid draws the last rows of a grid of count squares, width squares
// per row. When the grid is taller than rows, a summary line replaces the
// hidden top rows.
func RenderGrid(count int64, glyph string, width, rows int, styles Styles) string {
	if count <= 0 || width <= 0 || rows <= 0 {
		return ""
	}

	w := int64(width)
	totalRows := (count + w - 1) / w
	partial := count % w

	visible := min(int64(rows), totalRows)
	hidden := totalRows - visible
	if hidden > 0 && visible > 1 {
		// Keep a line for the summary
		visible--
		hidden++
	}

	var lines []string
	if hidden > 0 {
		lines = append(lines, styles.Faint.Render(fmt.Sprintf("… %d rows above (%d squares)", hidden, hidden*w)))
	}

	full := styles.Square.Render(strings.Repeat(glyph, width))
	for i := int64(0); i < visible; i++ {
		last := i == visible-1
		if last && partial > 0 {
			lines = append(lines, styles.Square.Render(strings.Repeat(glyph, int(partial))))
			continue
		}
		lines = append(lines, full)
	}

	return strings.Join(lines, "\n")
}
