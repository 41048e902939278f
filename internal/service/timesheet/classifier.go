package timesheet

import (
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/timesheet"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/validator"
)

// Rule selects how a non-overtime shift is tested for night work.
type Rule int

const (
	// RuleRegistration looks only at the start hour. Used when a shift
	// is first recorded.
	RuleRegistration Rule = iota

	// RuleCalendar treats the shift as night work when either endpoint
	// falls inside the night window. Used when a shift is edited.
	RuleCalendar
)

// Night window bounds, in whole hours
const (
	nightStartHour = 21
	nightEndHour   = 6
)

type Classifier struct {
}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// ShiftInput carries the classified facts of one shift.
type ShiftInput struct {
	Start        validator.Clock
	End          validator.Clock
	IsHoliday    bool
	IsOvertime   bool
	OvertimeKind timesheet.OvertimeKind
}

// Classify assigns the surcharge category for a shift. Overtime shifts
// are categorized from the declared kind and the holiday flag alone;
// ordinary shifts depend on the clock endpoints per the chosen rule.
func (c *Classifier) Classify(in ShiftInput, rule Rule) timesheet.Category {
	if in.IsOvertime {
		night := in.OvertimeKind == timesheet.OvertimeKindNight
		if in.IsHoliday {
			if night {
				return timesheet.CategoryHolidayOvertimeNight
			}
			return timesheet.CategoryHolidayOvertimeDay
		}
		if night {
			return timesheet.CategoryOvertimeNight
		}
		return timesheet.CategoryOvertimeDay
	}

	night := isNightHour(in.Start.NormalizedHour())
	if rule == RuleCalendar {
		night = night || isNightHour(in.End.NormalizedHour())
	}

	if in.IsHoliday {
		if night {
			return timesheet.CategoryHolidayNight
		}
		return timesheet.CategoryHolidayDay
	}
	if night {
		return timesheet.CategoryNightSurcharge
	}
	return timesheet.CategoryNormal
}

// Duration returns the worked hours between two clock times at minute
// resolution. An end before the start rolls over to the next day; an
// end equal to the start is a zero-length shift.
func (c *Classifier) Duration(start, end validator.Clock) float64 {
	s := start.Minutes()
	e := end.Minutes()
	if e < s {
		e += 24 * 60
	}
	return float64(e-s) / 60
}

func isNightHour(hour int) bool {
	return hour >= nightStartHour || hour < nightEndHour
}
