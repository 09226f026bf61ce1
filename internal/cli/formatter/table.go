package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders a simple aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// maximum width found in each column across both headers and rows.
func RenderTable(headers []string, rows [][]string) string {
	return RenderTableAligned(headers, rows, nil)
}

// RenderTableAligned is RenderTable with the listed column indices
// right-aligned, for numeric columns.
func RenderTableAligned(headers []string, rows [][]string, rightCols []int) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	right := make(map[int]bool, len(rightCols))
	for _, c := range rightCols {
		right[c] = true
	}

	// Compute max width per column, accounting for ANSI escape sequences
	// by measuring visible width.
	widths := make([]int, cols)
	for i, h := range headers {
		w := lipgloss.Width(h)
		if w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			w := lipgloss.Width(row[i])
			if w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	// Render header row.
	for i, h := range headers {
		writeCell(&b, StyleHeader.Render(h), widths[i]-lipgloss.Width(h), right[i], i < cols-1)
	}
	b.WriteString("\n")

	// Render separator line.
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	// Render data rows.
	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(&b, cell, widths[i]-lipgloss.Width(cell), right[i], i < cols-1)
		}
		b.WriteString("\n")
	}

	return b.String()
}

const colGap = 2

// writeCell pads cell to its column width. Trailing padding is skipped on
// the last column unless the cell is right-aligned.
func writeCell(b *strings.Builder, cell string, pad int, alignRight, notLast bool) {
	if pad < 0 {
		pad = 0
	}
	if alignRight {
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(cell)
		if notLast {
			b.WriteString(strings.Repeat(" ", colGap))
		}
		return
	}
	b.WriteString(cell)
	if notLast {
		b.WriteString(strings.Repeat(" ", pad+colGap))
	}
}
