package summary

import (
	"time"

	"github.com/shopspring/decimal"
)

// HourBuckets - Hours worked in the period, split by surcharge
// category. Stored as fractional hours.
type HourBuckets struct {
	Normal               float64
	OvertimeDay          float64
	NightSurcharge       float64
	OvertimeNight        float64
	HolidayDay           float64
	HolidayOvertimeDay   float64
	HolidayNight         float64
	HolidayOvertimeNight float64
}

// Deductions - Amounts withheld from one employee in the period.
type Deductions struct {
	SocialSecurity decimal.Decimal
	Insurance      decimal.Decimal
	PayrollAdvance decimal.Decimal
	Other          decimal.Decimal
}

// Total returns the sum of all deduction fields.
func (d Deductions) Total() decimal.Decimal {
	return d.SocialSecurity.Add(d.Insurance).Add(d.PayrollAdvance).Add(d.Other)
}

// PeriodSummary - Computed payroll result for one employee and one
// biweekly period. TotalPayable may be negative when deductions exceed
// earnings; nothing is clamped.
type PeriodSummary struct {
	ID           string
	EmployeeName string
	JobTitle     string
	PeriodStart  time.Time
	PeriodEnd    time.Time

	Hours HourBuckets

	HourlyRate         decimal.Decimal
	DailyRate          decimal.Decimal
	TransportAllowance decimal.Decimal
	IncapacityDays     int
	ProductivityBonus  decimal.Decimal
	Deductions         Deductions

	TotalEarned     decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalPayable    decimal.Decimal

	SavedAt   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Period returns the summary's quincena.
func (s PeriodSummary) Period() Period {
	return Period{Start: s.PeriodStart, End: s.PeriodEnd}
}
