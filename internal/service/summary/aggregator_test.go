package summary

import (
	"errors"
	"testing"
	"time"

	"github.com/ramosacevedo/nomina-backend-go/internal/domain/adjustment"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/employee"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/summary"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee() employee.Employee {
	return employee.Employee{
		Name:                     "LUISA FERNANDA GARZON",
		JobTitle:                 "AUXILIAR OPERATIVA",
		DailyRate:                decimal.NewFromInt(47433),
		HourlyRate:               decimal.NewFromInt(5929),
		OvertimeDayRate:          decimal.NewFromInt(7411),
		NightSurchargeRate:       decimal.NewFromInt(2075),
		OvertimeNightRate:        decimal.NewFromInt(9190),
		HolidayDayRate:           decimal.NewFromInt(10376),
		HolidayOvertimeDayRate:   decimal.NewFromInt(11858),
		HolidayNightRate:         decimal.NewFromInt(12451),
		HolidayOvertimeNightRate: decimal.NewFromInt(13934),
	}
}

func testEntry(emp employee.Employee, day int, start, end string) timesheet.Entry {
	return timesheet.Entry{
		ID:           "entry-1",
		EmployeeName: emp.Name,
		Date:         time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC),
		StartTime:    start,
		EndTime:      end,
	}
}

func TestAggregator_BuildSummary_DayShift(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()
	p := summary.NewPeriod(2026, time.March, summary.FirstHalf)

	entries := []timesheet.Entry{testEntry(emp, 10, "08:00", "18:00")}

	s, err := a.BuildSummary(emp, p, entries, adjustment.Adjustment{})
	require.NoError(t, err)

	assert.Equal(t, 10.0, s.Hours.Normal)
	assert.Equal(t, 0.0, s.Hours.NightSurcharge)
	// 10h * 5929 + 100000 transport
	assert.Equal(t, "159290", s.TotalEarned.String())
	assert.Equal(t, "159290", s.TotalPayable.String())
}

func TestAggregator_BuildSummary_NightShift(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()
	p := summary.NewPeriod(2026, time.March, summary.FirstHalf)

	entries := []timesheet.Entry{testEntry(emp, 3, "21:00", "06:00")}

	s, err := a.BuildSummary(emp, p, entries, adjustment.Adjustment{})
	require.NoError(t, err)

	assert.Equal(t, 9.0, s.Hours.NightSurcharge)
	assert.Equal(t, 0.0, s.Hours.Normal)
	// Night hours earn the base rate plus the night surcharge:
	// 9*5929 + 9*2075 + 100000
	assert.Equal(t, "172036", s.TotalEarned.String())
}

func TestAggregator_BuildSummary_ShiftStraddlingMidnight(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()
	p := summary.NewPeriod(2026, time.March, summary.FirstHalf)

	entries := []timesheet.Entry{testEntry(emp, 5, "23:00", "07:00")}

	s, err := a.BuildSummary(emp, p, entries, adjustment.Adjustment{})
	require.NoError(t, err)

	assert.Equal(t, 7.0, s.Hours.NightSurcharge)
	assert.Equal(t, 1.0, s.Hours.Normal)
}

func TestAggregator_BuildSummary_OvertimeSubtractedBeforeSplit(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()
	p := summary.NewPeriod(2026, time.March, summary.FirstHalf)

	entry := testEntry(emp, 4, "08:00", "16:00")
	entry.IsOvertime = true
	entry.OvertimeKind = timesheet.OvertimeKindNight
	entry.OvertimeHours = 3

	s, err := a.BuildSummary(emp, p, []timesheet.Entry{entry}, adjustment.Adjustment{})
	require.NoError(t, err)

	assert.Equal(t, 3.0, s.Hours.OvertimeNight)
	assert.Equal(t, 5.0, s.Hours.Normal)
	// 5*5929 + 3*9190 + 100000
	assert.Equal(t, "157215", s.TotalEarned.String())
}

func TestAggregator_BuildSummary_HolidayShift(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()
	p := summary.NewPeriod(2026, time.March, summary.FirstHalf)

	entry := testEntry(emp, 8, "08:00", "12:00")
	entry.IsHoliday = true

	s, err := a.BuildSummary(emp, p, []timesheet.Entry{entry}, adjustment.Adjustment{})
	require.NoError(t, err)

	assert.Equal(t, 4.0, s.Hours.HolidayDay)
	assert.Equal(t, 0.0, s.Hours.Normal)
	// Holiday hours earn base plus holiday surcharge:
	// 4*5929 + 4*10376 + 100000
	assert.Equal(t, "165220", s.TotalEarned.String())
}

func TestAggregator_BuildSummary_IgnoresForeignAndOutOfPeriodEntries(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()
	p := summary.NewPeriod(2026, time.March, summary.FirstHalf)

	other := testEntry(emp, 10, "08:00", "18:00")
	other.EmployeeName = "SOMEBODY ELSE"
	late := testEntry(emp, 20, "08:00", "18:00") // second half

	s, err := a.BuildSummary(emp, p, []timesheet.Entry{other, late}, adjustment.Adjustment{})
	require.NoError(t, err)

	assert.Equal(t, summary.HourBuckets{}, s.Hours)
	// Transport allowance is paid even with no recorded shifts
	assert.Equal(t, "100000", s.TotalEarned.String())
}

func TestAggregator_BuildSummary_AppliesAdjustments(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()
	p := summary.NewPeriod(2026, time.March, summary.FirstHalf)

	adj := adjustment.Adjustment{
		EmployeeName:      emp.Name,
		SocialSecurity:    decimal.NewFromInt(30000),
		Insurance:         decimal.NewFromInt(12000),
		PayrollAdvance:    decimal.NewFromInt(50000),
		OtherDeductions:   decimal.NewFromInt(8000),
		ProductivityBonus: decimal.NewFromInt(20000),
		IncapacityDays:    2,
	}

	s, err := a.BuildSummary(emp, p, nil, adj)
	require.NoError(t, err)

	// 100000 transport + 2*47433 incapacity
	assert.Equal(t, "194866", s.TotalEarned.String())
	assert.Equal(t, "100000", s.TotalDeductions.String())
	// earned + 20000 bonus - 100000 deductions
	assert.Equal(t, "114866", s.TotalPayable.String())
}

func TestAggregator_BuildSummary_NegativePayableNotClamped(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()
	p := summary.NewPeriod(2026, time.March, summary.FirstHalf)

	adj := adjustment.Adjustment{PayrollAdvance: decimal.NewFromInt(300000)}

	s, err := a.BuildSummary(emp, p, nil, adj)
	require.NoError(t, err)

	assert.True(t, s.TotalPayable.IsNegative())
	assert.Equal(t, "-200000", s.TotalPayable.String())
}

func TestAggregator_BuildSummary_Idempotent(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()
	p := summary.NewPeriod(2026, time.March, summary.FirstHalf)

	entries := []timesheet.Entry{
		testEntry(emp, 2, "08:00", "18:00"),
		testEntry(emp, 3, "21:00", "06:00"),
	}
	adj := adjustment.Adjustment{SocialSecurity: decimal.NewFromInt(15000)}

	first, err := a.BuildSummary(emp, p, entries, adj)
	require.NoError(t, err)
	second, err := a.BuildSummary(emp, p, entries, adj)
	require.NoError(t, err)

	assert.Equal(t, first.Hours, second.Hours)
	assert.True(t, first.TotalEarned.Equal(second.TotalEarned))
	assert.True(t, first.TotalPayable.Equal(second.TotalPayable))
}

func TestAggregator_BuildSummary_RejectsDoubleBoundaryShifts(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()
	p := summary.NewPeriod(2026, time.March, summary.FirstHalf)

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"crosses dawn and dusk", "05:00", "22:00"},
		{"crosses dusk and next dawn", "20:00", "07:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []timesheet.Entry{testEntry(emp, 10, tt.start, tt.end)}
			_, err := a.BuildSummary(emp, p, entries, adjustment.Adjustment{})
			assert.ErrorIs(t, err, summary.ErrUnsupportedSplit)
		})
	}
}

func TestAggregator_BuildSummary_MalformedClock(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()
	p := summary.NewPeriod(2026, time.March, summary.FirstHalf)

	entries := []timesheet.Entry{testEntry(emp, 10, "9am", "17:00")}

	_, err := a.BuildSummary(emp, p, entries, adjustment.Adjustment{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, summary.ErrUnsupportedSplit))
}

func TestAggregator_RecomputeTotals(t *testing.T) {
	a := NewAggregator()
	emp := testEmployee()

	s := summary.PeriodSummary{
		EmployeeName: emp.Name,
		Hours: summary.HourBuckets{
			Normal:         10,
			NightSurcharge: 2,
			OvertimeDay:    1,
		},
		TransportAllowance: decimal.NewFromInt(100000),
		IncapacityDays:     1,
		ProductivityBonus:  decimal.NewFromInt(5000),
		Deductions: summary.Deductions{
			SocialSecurity: decimal.NewFromInt(10000),
		},
	}

	got := a.RecomputeTotals(s, emp)

	// Base pay counts normal and night hours at the plain rate:
	// 12*5929 + 1*7411 + 100000 + 1*47433
	assert.Equal(t, "225992", got.TotalEarned.String())
	assert.Equal(t, "10000", got.TotalDeductions.String())
	assert.Equal(t, "220992", got.TotalPayable.String())
}
