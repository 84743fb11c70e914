package logbook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var spanPattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})\s*$`)

// ParseSpan parses a "H:MM-H:MM" cell. An end before the start is read as
// crossing midnight. Cells in any other shape report false.
func ParseSpan(cell string) (Span, bool) {
	m := spanPattern.FindStringSubmatch(cell)
	if m == nil {
		return Span{}, false
	}

	var parts [4]int
	for i := range parts {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Span{}, false
		}
		parts[i] = v
	}

	start := parts[0]*60 + parts[1]
	end := parts[2]*60 + parts[3]
	if end < start {
		end += minutesPerDay
	}
	return Span{Raw: strings.TrimSpace(cell), Start: start, End: end}, true
}

// FormatMinutes renders minutes as H:MM. Hours are not capped at 24.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
