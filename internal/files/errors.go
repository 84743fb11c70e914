package files

import "errors"

// ErrMonthNotFound is returned when no logbook file exists for the requested month.
var ErrMonthNotFound = errors.New("no logbook for month")
