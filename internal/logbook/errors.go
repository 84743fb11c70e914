package logbook

import (
	"errors"
	"fmt"
)

// ErrOverlap is matched by every *OverlapError.
var ErrOverlap = errors.New("overlapping time spans")

// OverlapError reports two spans of the same table that intersect.
type OverlapError struct {
	Date   string
	First  Span
	Second Span
}

func (e *OverlapError) Error() string {
	msg := fmt.Sprintf("overlapping time spans %q (line %d) and %q (line %d)",
		e.First.Raw, e.First.Line, e.Second.Raw, e.Second.Line)
	if e.Date != "" {
		msg += " in table dated " + e.Date
	}
	return msg
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlap
}
