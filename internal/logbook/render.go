package logbook

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const minSeparatorWidth = 3

// renderTable lays out header, separator and rows with every column padded to
// its widest cell. Column right is right-aligned and marked so in the
// separator; every other column is left-aligned.
func renderTable(header []string, rows [][]string, right int) []string {
	widths := make([]int, len(header))
	measure := func(cells []string) {
		for i, cell := range cells {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}

	out := make([]string, 0, len(rows)+2)
	out = append(out, formatRow(header, widths, right), separatorRow(widths, right))
	for _, row := range rows {
		out = append(out, formatRow(row, widths, right))
	}
	return out
}

func formatRow(cells []string, widths []int, right int) string {
	var b strings.Builder
	b.WriteByte('|')
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteByte(' ')
		if i == right {
			b.WriteString(runewidth.FillLeft(cell, w))
		} else {
			b.WriteString(runewidth.FillRight(cell, w))
		}
		b.WriteString(" |")
	}
	return b.String()
}

func separatorRow(widths []int, right int) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		w = max(w, minSeparatorWidth)
		if i == right {
			cells[i] = strings.Repeat("-", w-1) + ":"
		} else {
			cells[i] = strings.Repeat("-", w)
		}
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// totalsRow builds the bold summary row placed under a time table. In tables
// too narrow to hold every field the later fields win.
func totalsRow(width int, date, weekday string, minutes int) []string {
	cells := make([]string, width)
	cells[0] = boldOrBlank(date)
	if width > 1 {
		cells[1] = boldOrBlank(weekday)
	}
	if width > 2 {
		cells[2] = bold(totalsLabel)
	}
	cells[width-1] = bold(FormatMinutes(minutes))
	return cells
}
