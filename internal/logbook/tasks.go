package logbook

import (
	"cmp"
	"slices"
	"strings"
)

// TaskTotals accumulates minutes per task label across every table of a
// document. Labels are case-sensitive.
type TaskTotals struct {
	minutes map[string]int
}

// NewTaskTotals returns an empty accumulator.
func NewTaskTotals() *TaskTotals {
	return &TaskTotals{minutes: make(map[string]int)}
}

// Add credits minutes to task.
func (t *TaskTotals) Add(task string, minutes int) {
	t.minutes[task] += minutes
}

// Total returns the minutes of all tasks together.
func (t *TaskTotals) Total() int {
	total := 0
	for _, m := range t.minutes {
		total += m
	}
	return total
}

// Sorted lists the tasks ordered by label, ignoring case.
func (t *TaskTotals) Sorted() []TaskTotal {
	out := make([]TaskTotal, 0, len(t.minutes))
	for task, m := range t.minutes {
		out = append(out, TaskTotal{Task: task, Minutes: m})
	}
	slices.SortFunc(out, func(a, b TaskTotal) int {
		if c := cmp.Compare(strings.ToLower(a.Task), strings.ToLower(b.Task)); c != 0 {
			return c
		}
		return cmp.Compare(a.Task, b.Task)
	})
	return out
}

// Render produces the Task Totals heading and table.
func (t *TaskTotals) Render() []string {
	sorted := t.Sorted()
	rows := make([][]string, 0, len(sorted)+1)
	for _, task := range sorted {
		rows = append(rows, []string{task.Task, FormatMinutes(task.Minutes)})
	}
	rows = append(rows, []string{bold("Total"), bold(FormatMinutes(t.Total()))})

	lines := []string{"## " + taskTotalsTitle, ""}
	return append(lines, renderTable([]string{"Task", "Total"}, rows, 1)...)
}

// skipTaskTotals returns the index just past the Task Totals section starting
// at lines[start]: the heading, the blank lines after it and one table.
func skipTaskTotals(lines []string, start int) int {
	i := start + 1
	for i < len(lines) && isBlank(lines[i]) {
		i++
	}
	for i < len(lines) && isTableRow(lines[i]) {
		i++
	}
	return i
}
