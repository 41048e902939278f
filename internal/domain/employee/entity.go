package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee - Payroll rate card for one worker. The name is the natural
// key used by time entries and summaries.
type Employee struct {
	ID         string
	Name       string
	JobTitle   string
	NationalID string

	BaseSalary decimal.Decimal
	DailyRate  decimal.Decimal
	HourlyRate decimal.Decimal

	// Hourly rates per surcharge category
	OvertimeDayRate          decimal.Decimal
	NightSurchargeRate       decimal.Decimal
	OvertimeNightRate        decimal.Decimal
	HolidayDayRate           decimal.Decimal
	HolidayOvertimeDayRate   decimal.Decimal
	HolidayNightRate         decimal.Decimal
	HolidayOvertimeNightRate decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Roster is the set of employees known to payroll.
type Roster []Employee
