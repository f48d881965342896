package services

import (
	"errors"
	"fmt"
)

// ErrOutOfRangeRow indicates a row outside the timetable body.
var ErrOutOfRangeRow = errors.New("row outside timetable body")

// ErrMalformedWeekSpec indicates a week range whose endpoint is not a number.
var ErrMalformedWeekSpec = errors.New("malformed week spec")

// ErrUnparsableHeaderCell indicates a header cell that cannot name a group.
var ErrUnparsableHeaderCell = errors.New("unparsable header cell")

// ErrEmptyGrid indicates a workbook without a readable sheet.
var ErrEmptyGrid = errors.New("empty or unreadable grid")

// RowError describes a timetable row that could not be fully parsed.
type RowError struct {
	Group string
	Row   int
	Raw   string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("group %q row %d (%q): %v", e.Group, e.Row, e.Raw, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
