package summary

import (
	"fmt"

	"github.com/ramosacevedo/nomina-backend-go/internal/domain/adjustment"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/employee"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/summary"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/timesheet"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// DefaultTransportAllowance is the flat transport subsidy added to
// every biweekly summary regardless of hours worked.
var DefaultTransportAllowance = decimal.NewFromInt(100000)

// Day window bounds for the ordinary-hours split, in whole hours
const (
	dayWindowStart = 6
	dayWindowEnd   = 21
)

type Aggregator struct {
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// BuildSummary computes the biweekly payroll summary for one employee
// from their recorded shifts and standing adjustments. Entries outside
// the period or belonging to other employees are ignored, so the
// result depends only on the inputs and repeated calls agree.
func (a *Aggregator) BuildSummary(
	emp employee.Employee,
	p summary.Period,
	entries []timesheet.Entry,
	adj adjustment.Adjustment,
) (summary.PeriodSummary, error) {
	var hours summary.HourBuckets

	for _, entry := range entries {
		if entry.EmployeeName != emp.Name || !p.Contains(entry.Date) {
			continue
		}
		if err := a.accumulate(&hours, entry); err != nil {
			return summary.PeriodSummary{}, err
		}
	}

	s := summary.PeriodSummary{
		EmployeeName:       emp.Name,
		JobTitle:           emp.JobTitle,
		PeriodStart:        p.Start,
		PeriodEnd:          p.End,
		Hours:              hours,
		HourlyRate:         emp.HourlyRate,
		DailyRate:          emp.DailyRate,
		TransportAllowance: DefaultTransportAllowance,
		IncapacityDays:     adj.IncapacityDays,
		ProductivityBonus:  adj.ProductivityBonus,
		Deductions: summary.Deductions{
			SocialSecurity: adj.SocialSecurity,
			Insurance:      adj.Insurance,
			PayrollAdvance: adj.PayrollAdvance,
			Other:          adj.OtherDeductions,
		},
	}

	s.TotalEarned = a.totalEarned(emp, hours, s.TransportAllowance, s.IncapacityDays)
	s.TotalDeductions = s.Deductions.Total()
	s.TotalPayable = s.TotalEarned.Add(s.ProductivityBonus).Sub(s.TotalDeductions)

	return s, nil
}

// RecomputeTotals rebuilds the derived monetary fields of a summary
// after its hour buckets or adjustments were edited by hand. The base
// pay for the period counts normal and night-surcharge hours at the
// plain hourly rate; the stored transport allowance is kept as-is.
func (a *Aggregator) RecomputeTotals(s summary.PeriodSummary, emp employee.Employee) summary.PeriodSummary {
	base := decimal.NewFromFloat(s.Hours.Normal + s.Hours.NightSurcharge).Mul(emp.HourlyRate)

	earned := base.
		Add(decimal.NewFromFloat(s.Hours.OvertimeDay).Mul(emp.OvertimeDayRate)).
		Add(decimal.NewFromFloat(s.Hours.OvertimeNight).Mul(emp.OvertimeNightRate)).
		Add(decimal.NewFromFloat(s.Hours.HolidayDay).Mul(emp.HolidayDayRate)).
		Add(decimal.NewFromFloat(s.Hours.HolidayOvertimeDay).Mul(emp.HolidayOvertimeDayRate)).
		Add(decimal.NewFromFloat(s.Hours.HolidayNight).Mul(emp.HolidayNightRate)).
		Add(decimal.NewFromFloat(s.Hours.HolidayOvertimeNight).Mul(emp.HolidayOvertimeNightRate)).
		Add(s.TransportAllowance).
		Add(decimal.NewFromInt(int64(s.IncapacityDays)).Mul(emp.DailyRate))

	s.TotalEarned = earned
	s.TotalDeductions = s.Deductions.Total()
	s.TotalPayable = s.TotalEarned.Add(s.ProductivityBonus).Sub(s.TotalDeductions)
	return s
}

// accumulate folds one shift into the hour buckets. Declared overtime
// hours go straight to the matching overtime bucket and are subtracted
// from the shift before the remainder is split across the day and
// night windows.
func (a *Aggregator) accumulate(hours *summary.HourBuckets, entry timesheet.Entry) error {
	start, ok := validator.ParseClock(entry.StartTime)
	if !ok {
		return fmt.Errorf("entry %s has malformed start time %q", entry.ID, entry.StartTime)
	}
	end, ok := validator.ParseClock(entry.EndTime)
	if !ok {
		return fmt.Errorf("entry %s has malformed end time %q", entry.ID, entry.EndTime)
	}

	total := duration(start, end)

	if entry.IsOvertime && entry.OvertimeHours > 0 {
		if entry.IsHoliday {
			if entry.OvertimeKind == timesheet.OvertimeKindNight {
				hours.HolidayOvertimeNight += entry.OvertimeHours
			} else {
				hours.HolidayOvertimeDay += entry.OvertimeHours
			}
		} else {
			if entry.OvertimeKind == timesheet.OvertimeKindNight {
				hours.OvertimeNight += entry.OvertimeHours
			} else {
				hours.OvertimeDay += entry.OvertimeHours
			}
		}
		total -= entry.OvertimeHours
	}

	if total <= 0 {
		return nil
	}

	day, night, err := splitOrdinary(start, end, total)
	if err != nil {
		return fmt.Errorf("entry %s (%s-%s): %w", entry.ID, entry.StartTime, entry.EndTime, err)
	}

	if entry.IsHoliday {
		hours.HolidayDay += day
		hours.HolidayNight += night
	} else {
		hours.Normal += day
		hours.NightSurcharge += night
	}
	return nil
}

// splitOrdinary divides the remaining hours of a shift between the day
// window [06:00, 21:00) and the night hours around it, looking at the
// whole start and end hours. A shift that crosses both window
// boundaries cannot be split this way and is rejected.
func splitOrdinary(start, end validator.Clock, total float64) (day, night float64, err error) {
	if crossesBothBoundaries(start, end) {
		return 0, 0, summary.ErrUnsupportedSplit
	}

	startHour := start.NormalizedHour()
	endHour := end.NormalizedHour()
	startInDay := startHour >= dayWindowStart && startHour < dayWindowEnd
	endInDay := endHour >= dayWindowStart && endHour < dayWindowEnd

	switch {
	case startInDay && endInDay:
		return total, 0, nil
	case !startInDay && !endInDay:
		return 0, total, nil
	case startInDay:
		// Runs from the day window into the night
		day = float64(dayWindowEnd - startHour)
		return day, total - day, nil
	default:
		// Starts at night and runs into the day window
		if startHour < dayWindowStart {
			night = float64(dayWindowStart - startHour)
		} else {
			night = float64(24 - startHour + dayWindowStart)
		}
		return total - night, night, nil
	}
}

// crossesBothBoundaries reports whether the worked interval passes
// through more than one day/night boundary instant (06:00 or 21:00,
// on either calendar day the shift touches).
func crossesBothBoundaries(start, end validator.Clock) bool {
	s := start.Minutes()
	e := end.Minutes()
	if e < s {
		e += 24 * 60
	}

	boundaries := []int{
		dayWindowStart * 60,
		dayWindowEnd * 60,
		(24 + dayWindowStart) * 60,
		(24 + dayWindowEnd) * 60,
	}
	crossings := 0
	for _, b := range boundaries {
		if s < b && b < e {
			crossings++
		}
	}
	return crossings >= 2
}

// duration mirrors the entry classifier's length rule: an end before
// the start rolls over to the next day.
func duration(start, end validator.Clock) float64 {
	s := start.Minutes()
	e := end.Minutes()
	if e < s {
		e += 24 * 60
	}
	return float64(e-s) / 60
}

// totalEarned folds the hour buckets into money. Ordinary hours in all
// four non-overtime buckets earn the plain hourly rate; each surcharge
// bucket additionally earns its own rate, since the rate table stores
// surcharges as add-ons.
func (a *Aggregator) totalEarned(
	emp employee.Employee,
	hours summary.HourBuckets,
	transportAllowance decimal.Decimal,
	incapacityDays int,
) decimal.Decimal {
	baseHours := hours.Normal + hours.NightSurcharge + hours.HolidayDay + hours.HolidayNight

	return decimal.NewFromFloat(baseHours).Mul(emp.HourlyRate).
		Add(decimal.NewFromFloat(hours.OvertimeDay).Mul(emp.OvertimeDayRate)).
		Add(decimal.NewFromFloat(hours.NightSurcharge).Mul(emp.NightSurchargeRate)).
		Add(decimal.NewFromFloat(hours.OvertimeNight).Mul(emp.OvertimeNightRate)).
		Add(decimal.NewFromFloat(hours.HolidayDay).Mul(emp.HolidayDayRate)).
		Add(decimal.NewFromFloat(hours.HolidayOvertimeDay).Mul(emp.HolidayOvertimeDayRate)).
		Add(decimal.NewFromFloat(hours.HolidayNight).Mul(emp.HolidayNightRate)).
		Add(decimal.NewFromFloat(hours.HolidayOvertimeNight).Mul(emp.HolidayOvertimeNightRate)).
		Add(transportAllowance).
		Add(decimal.NewFromInt(int64(incapacityDays)).Mul(emp.DailyRate))
}
