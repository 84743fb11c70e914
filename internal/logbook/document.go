package logbook

import (
	"regexp"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Process rewrites every Markdown table with a Time column: it adds a Duration
// column and a totals row, and appends a Task Totals section summing minutes
// per task over the whole document. Output from a previous run is recognized
// and regenerated, so processing the result again yields the same text.
//
// Overlapping spans within one table abort processing with an *OverlapError
// and no result.
func Process(text string) (*Result, error) {
	lines, trailingNewline := splitLines(text)

	s := &scanner{
		lines: lines,
		out:   make([]string, 0, len(lines)),
		tasks: NewTaskTotals(),
	}
	if err := s.scan(); err != nil {
		return nil, err
	}

	out := s.out
	if s.tasks.Total() > 0 {
		if len(out) > 0 && !isBlank(out[len(out)-1]) {
			out = append(out, "")
		}
		out = append(out, s.tasks.Render()...)
	}

	return &Result{
		Text:   joinLines(out, trailingNewline),
		Tables: s.tables,
		Tasks:  s.tasks.Sorted(),
	}, nil
}

type scanner struct {
	lines  []string
	out    []string
	inCode bool
	tasks  *TaskTotals
	tables []TableTotal
}

func (s *scanner) scan() error {
	for i := 0; i < len(s.lines); {
		line := s.lines[i]
		switch {
		case isFence(line):
			s.inCode = !s.inCode
			s.out = append(s.out, line)
			i++
		case s.inCode:
			s.out = append(s.out, line)
			i++
		case isTaskTotalsTitle(line):
			i = skipTaskTotals(s.lines, i)
		case isTableRow(line) && i+1 < len(s.lines) && isSeparator(s.lines[i+1]):
			next, err := s.table(i)
			if err != nil {
				return err
			}
			i = next
		default:
			s.out = append(s.out, line)
			i++
		}
	}
	return nil
}

// table rewrites the table starting at start and returns the index after it.
func (s *scanner) table(start int) (int, error) {
	block := extractTable(s.lines, start)
	if !block.processed {
		s.out = append(s.out, s.lines[block.start:block.end]...)
		return block.end, nil
	}

	date, weekday := titleDate(tableTitle(s.lines, start))

	var (
		spans []Span
		rows  = make([][]string, 0, len(block.rows)+1)
		total int
	)
	for _, row := range block.rows {
		duration := ""
		if span, ok := ParseSpan(row.cells[block.timeIdx]); ok {
			span.Line = row.line + 1
			spans = append(spans, span)
			total += span.Minutes()
			duration = FormatMinutes(span.Minutes())
			if len(row.cells) > 1 {
				s.tasks.Add(strings.TrimSpace(row.cells[1]), span.Minutes())
			}
		}
		rows = append(rows, append(row.cells, duration))
	}

	if err := checkOverlaps(spans, date); err != nil {
		return 0, err
	}

	header := append(append([]string{}, block.header...), "Duration")
	durationIdx := len(header) - 1
	rows = append(rows, totalsRow(len(header), date, weekday, total))
	rendered := renderTable(header, rows, durationIdx)
	s.out = append(s.out, rendered...)

	s.tables = append(s.tables, TableTotal{
		Line:    start + 1,
		Date:    date,
		Weekday: weekday,
		Rows:    len(block.rows),
		Minutes: total,
		Lines:   rendered,
	})
	return block.end, nil
}

// titleDate extracts the first YYYY-MM-DD in title. The weekday is left empty
// when the match is not a real calendar date.
func titleDate(title string) (string, string) {
	date := datePattern.FindString(title)
	if date == "" {
		return "", ""
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date, ""
	}
	return date, parsed.Weekday().String()
}
