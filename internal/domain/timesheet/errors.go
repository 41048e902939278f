package timesheet

import "errors"

var (
	ErrEntryNotFound       = errors.New("time entry not found")
	ErrInvalidOvertimeKind = errors.New("overtime kind must be diurna or nocturna")
)
