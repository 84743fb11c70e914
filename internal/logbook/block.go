package logbook

import "strings"

// tableBlock is a table found in the document, together with the totals
// artifacts a previous run left under it.
type tableBlock struct {
	start int
	// end is the index of the first line after the table and its artifacts.
	end       int
	processed bool

	// header excludes any existing Duration column.
	header  []string
	timeIdx int
	rows    []tableRow
}

type tableRow struct {
	// line is the 0-based index of the row in the document.
	line  int
	cells []string
}

// extractTable delimits the table whose header is lines[start]. The caller
// has already checked that lines[start+1] is a separator.
func extractTable(lines []string, start int) tableBlock {
	n := len(lines)
	end := start + 2
	for end < n && isTableRow(lines[end]) {
		end++
	}

	header := splitRow(lines[start])
	if columnIndex(header, "time") < 0 {
		return tableBlock{start: start, end: end}
	}

	durationIdx := columnIndex(header, "duration")
	header = dropColumn(header, durationIdx)

	next := end
	if next < n && isLegacyTotalsLine(lines[next]) {
		next++
		if next < n && isBlank(lines[next]) {
			next++
		}
	}
	if next < n && isTableRow(lines[next]) && isTotalsRow(splitRow(lines[next]), len(header)) {
		next++
		if next < n && isBlank(lines[next]) {
			next++
		}
	}

	body := lines[start+2 : end]
	for len(body) > 0 && isSeparator(body[len(body)-1]) {
		body = body[:len(body)-1]
	}
	if len(body) > 0 && isTotalsRow(splitRow(body[len(body)-1]), len(header)) {
		body = body[:len(body)-1]
	}

	rows := make([]tableRow, 0, len(body))
	for i, line := range body {
		if isSeparator(line) {
			continue
		}
		cells := dropColumn(splitRow(line), durationIdx)
		rows = append(rows, tableRow{
			line:  start + 2 + i,
			cells: fitCells(cells, len(header)),
		})
	}

	return tableBlock{
		start:     start,
		end:       next,
		processed: true,
		header:    header,
		timeIdx:   columnIndex(header, "time"),
		rows:      rows,
	}
}

func dropColumn(cells []string, idx int) []string {
	if idx < 0 || idx >= len(cells) {
		return cells
	}
	out := make([]string, 0, len(cells)-1)
	out = append(out, cells[:idx]...)
	return append(out, cells[idx+1:]...)
}

// fitCells pads short rows with empty cells and drops cells past the header
// width. The result has spare capacity for the Duration cell.
func fitCells(cells []string, width int) []string {
	out := make([]string, width, width+1)
	copy(out, cells)
	return out
}

// tableTitle returns the nearest non-blank line above the table, unless that
// line belongs to another table or is a fence.
func tableTitle(lines []string, start int) string {
	for p := start - 1; p >= 0; p-- {
		s := strings.TrimSpace(lines[p])
		if s == "" {
			continue
		}
		if strings.HasPrefix(s, "|") || strings.HasPrefix(s, "```") {
			return ""
		}
		return s
	}
	return ""
}
