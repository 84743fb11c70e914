package logbook

import (
	"cmp"
	"slices"
)

// checkOverlaps fails on the first pair of spans that intersect. Spans are
// half-open, so one ending at 10:00 and the next starting at 10:00 are fine.
func checkOverlaps(spans []Span, date string) error {
	if len(spans) < 2 {
		return nil
	}

	sorted := slices.Clone(spans)
	slices.SortStableFunc(sorted, func(a, b Span) int {
		return cmp.Compare(a.Start, b.Start)
	})

	// latest is the span reaching furthest among those already visited.
	latest := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start < latest.End {
			return &OverlapError{Date: date, First: latest, Second: next}
		}
		if next.End > latest.End {
			latest = next
		}
	}
	return nil
}
