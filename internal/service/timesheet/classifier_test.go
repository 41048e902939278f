package timesheet

import (
	"testing"

	"github.com/ramosacevedo/nomina-backend-go/internal/domain/timesheet"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, s string) validator.Clock {
	c, ok := validator.ParseClock(s)
	require.True(t, ok, "bad clock literal %q", s)
	return c
}

func TestClassifier_Classify_OrdinaryShifts(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name      string
		start     string
		end       string
		isHoliday bool
		rule      Rule
		want      timesheet.Category
	}{
		{"office hours", "08:00", "17:00", false, RuleRegistration, timesheet.CategoryNormal},
		{"late evening", "22:00", "23:00", false, RuleRegistration, timesheet.CategoryNightSurcharge},
		{"early morning start", "05:00", "07:00", false, RuleRegistration, timesheet.CategoryNightSurcharge},
		{"starts at night window open", "21:00", "23:00", false, RuleRegistration, timesheet.CategoryNightSurcharge},
		{"ends just before night window", "18:00", "20:59", false, RuleRegistration, timesheet.CategoryNormal},
		{"holiday daytime", "08:00", "17:00", true, RuleRegistration, timesheet.CategoryHolidayDay},
		{"holiday at night", "22:00", "23:00", true, RuleRegistration, timesheet.CategoryHolidayNight},
		{"midnight end counts as night", "23:00", "24:00", false, RuleCalendar, timesheet.CategoryNightSurcharge},
		{"midnight start counts as night", "24:00", "08:00", false, RuleRegistration, timesheet.CategoryNightSurcharge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(ShiftInput{
				Start:     clock(t, tt.start),
				End:       clock(t, tt.end),
				IsHoliday: tt.isHoliday,
			}, tt.rule)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A shift starting during the day but running into the night is normal
// under the registration rule and night work under the calendar rule.
func TestClassifier_Classify_RuleDisagreement(t *testing.T) {
	c := NewClassifier()
	in := ShiftInput{Start: clock(t, "08:00"), End: clock(t, "22:00")}

	assert.Equal(t, timesheet.CategoryNormal, c.Classify(in, RuleRegistration))
	assert.Equal(t, timesheet.CategoryNightSurcharge, c.Classify(in, RuleCalendar))

	in.IsHoliday = true
	assert.Equal(t, timesheet.CategoryHolidayDay, c.Classify(in, RuleRegistration))
	assert.Equal(t, timesheet.CategoryHolidayNight, c.Classify(in, RuleCalendar))
}

func TestClassifier_Classify_Overtime(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name      string
		kind      timesheet.OvertimeKind
		isHoliday bool
		want      timesheet.Category
	}{
		{"day overtime", timesheet.OvertimeKindDay, false, timesheet.CategoryOvertimeDay},
		{"night overtime", timesheet.OvertimeKindNight, false, timesheet.CategoryOvertimeNight},
		{"holiday day overtime", timesheet.OvertimeKindDay, true, timesheet.CategoryHolidayOvertimeDay},
		{"holiday night overtime", timesheet.OvertimeKindNight, true, timesheet.CategoryHolidayOvertimeNight},
		{"missing kind defaults to day", "", false, timesheet.CategoryOvertimeDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(ShiftInput{
				// Clock endpoints must not matter for overtime
				Start:        clock(t, "22:00"),
				End:          clock(t, "23:00"),
				IsHoliday:    tt.isHoliday,
				IsOvertime:   true,
				OvertimeKind: tt.kind,
			}, RuleRegistration)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifier_Duration(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		start string
		end   string
		want  float64
	}{
		{"08:00", "17:00", 9},
		{"23:00", "01:00", 2},
		{"23:00", "24:00", 1},
		{"22:00", "06:00", 8},
		{"09:00", "09:00", 0},
		{"08:30", "10:00", 1.5},
		{"00:00", "24:00", 24},
		{"24:00", "08:00", 8},
	}

	for _, tt := range tests {
		got := c.Duration(clock(t, tt.start), clock(t, tt.end))
		assert.Equal(t, tt.want, got, "%s-%s", tt.start, tt.end)
	}
}
