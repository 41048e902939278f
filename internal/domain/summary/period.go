package summary

import (
	"fmt"
	"time"
)

// Half enum - which half of the month a biweekly period covers
type Half int

const (
	FirstHalf  Half = 1
	SecondHalf Half = 2
)

// Period is one biweekly payroll period (quincena): the 1st through
// the 15th, or the 16th through the last day of the month. Both bounds
// are inclusive.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod builds the quincena for the given year, month and half.
func NewPeriod(year int, month time.Month, half Half) Period {
	if half == FirstHalf {
		return Period{
			Start: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, month, 15, 0, 0, 0, 0, time.UTC),
		}
	}
	// Day zero of the next month is the last day of this one
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return Period{
		Start: time.Date(year, month, 16, 0, 0, 0, 0, time.UTC),
		End:   lastDay,
	}
}

// PeriodOf returns the quincena containing the given date.
func PeriodOf(date time.Time) Period {
	half := FirstHalf
	if date.Day() > 15 {
		half = SecondHalf
	}
	return NewPeriod(date.Year(), date.Month(), half)
}

// Half reports which half of the month the period covers.
func (p Period) Half() Half {
	if p.Start.Day() <= 15 {
		return FirstHalf
	}
	return SecondHalf
}

// Contains reports whether the date falls inside the period. Only the
// calendar day matters; time-of-day components are ignored.
func (p Period) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(p.Start) && !d.After(p.End)
}

// String formats the period as "YYYY-MM-DD / YYYY-MM-DD".
func (p Period) String() string {
	return fmt.Sprintf("%s / %s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}
