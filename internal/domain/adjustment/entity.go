package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment - Standing per-employee payroll overrides applied every
// time a period summary is built: withheld amounts, the productivity
// bonus and registered incapacity days.
type Adjustment struct {
	ID           string
	EmployeeName string

	SocialSecurity    decimal.Decimal
	Insurance         decimal.Decimal
	PayrollAdvance    decimal.Decimal
	OtherDeductions   decimal.Decimal
	ProductivityBonus decimal.Decimal
	IncapacityDays    int

	CreatedAt time.Time
	UpdatedAt time.Time
}
