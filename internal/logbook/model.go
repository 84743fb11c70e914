package logbook

// Span is a parsed "H:MM-H:MM" cell. End is always >= Start; spans crossing
// midnight have 1440 added to End.
type Span struct {
	Raw   string
	Line  int
	Start int
	End   int
}

// Minutes returns the elapsed time covered by the span.
func (s Span) Minutes() int {
	return s.End - s.Start
}

// TableTotal summarizes one processed time table.
type TableTotal struct {
	// Line is the 1-based line number of the table header in the input.
	Line    int
	Date    string
	Weekday string
	Rows    int
	Minutes int
	// Lines is the rewritten table, header through totals row.
	Lines   []string
}

// TaskTotal is one row of the Task Totals section.
type TaskTotal struct {
	Task    string
	Minutes int
}

// Result holds the rewritten document together with the totals computed while
// producing it.
type Result struct {
	Text   string
	Tables []TableTotal
	Tasks  []TaskTotal
}

// TotalMinutes sums the minutes of every processed table.
func (r *Result) TotalMinutes() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, table := range r.Tables {
		total += table.Minutes
	}
	return total
}
