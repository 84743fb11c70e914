package logbook

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	totalsLabel     = "Total working time"
	taskTotalsTitle = "Task Totals"
	// Older versions wrote a plain "Total duration: H:MM" line under each table.
	legacyTotalsPrefix = "total duration:"
)

var fencePattern = regexp.MustCompile("^\\s*```")

func isFence(line string) bool {
	return fencePattern.MatchString(line)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isTableRow(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "|")
}

// isSeparator reports whether line is a header separator such as "|---|:--:|".
func isSeparator(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "|") {
		return false
	}
	core := strings.NewReplacer("|", "", " ", "").Replace(s)
	if core == "" || !strings.Contains(core, "-") {
		return false
	}
	return strings.Trim(core, "-:") == ""
}

// isTaskTotalsTitle matches the heading of a previously generated Task Totals
// section, whatever its level or case.
func isTaskTotalsTitle(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "#") {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(strings.TrimLeft(s, "#")), taskTotalsTitle)
}

func isLegacyTotalsLine(line string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), legacyTotalsPrefix)
}

// splitRow returns the trimmed cells of a table row.
func splitRow(line string) []string {
	inner := strings.Trim(strings.TrimSpace(line), "|")
	cells := strings.Split(inner, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// isTotalsRow recognizes the totals row a previous run placed under a table
// whose header, without Duration, has width cells. Its third cell carries the
// totals label. Tables with fewer than three columns of their own have no room
// for the label, so there the totals row is the one spanning the header plus
// Duration with every cell bold.
func isTotalsRow(cells []string, width int) bool {
	if len(cells) >= 3 && strings.ToLower(unbold(cells[2])) == strings.ToLower(totalsLabel) {
		return true
	}
	if width >= 3 || len(cells) != width+1 {
		return false
	}
	for _, cell := range cells {
		if !isBold(cell) {
			return false
		}
	}
	return true
}

func bold(s string) string {
	return "**" + s + "**"
}

// boldOrBlank renders a placeholder that still reads as bold when s is empty.
func boldOrBlank(s string) string {
	if s == "" {
		return "** **"
	}
	return bold(s)
}

func isBold(cell string) bool {
	return len(cell) >= 4 && strings.HasPrefix(cell, "**") && strings.HasSuffix(cell, "**")
}

func unbold(cell string) string {
	return strings.TrimSpace(strings.Trim(cell, "*"))
}

// columnIndex returns the index of the first cell named name, ignoring case.
func columnIndex(cells []string, name string) int {
	for i, cell := range cells {
		if strings.EqualFold(strings.TrimSpace(cell), name) {
			return i
		}
	}
	return -1
}

func splitLines(input string) ([]string, bool) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	// Split leaves an empty element behind when the input ends with a newline.
	trailingNewline := false
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
		trailingNewline = true
	}
	return lines, trailingNewline
}

func joinLines(lines []string, trailingNewline bool) string {
	content := strings.Join(lines, "\n")
	if trailingNewline && len(lines) > 0 {
		content += "\n"
	}
	return content
}
