package adjustment

import (
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertAdjustmentRequest struct {
	EmployeeName string `json:"-"`

	SocialSecurity    *decimal.Decimal `json:"social_security,omitempty"`
	Insurance         *decimal.Decimal `json:"insurance,omitempty"`
	PayrollAdvance    *decimal.Decimal `json:"payroll_advance,omitempty"`
	OtherDeductions   *decimal.Decimal `json:"other_deductions,omitempty"`
	ProductivityBonus *decimal.Decimal `json:"productivity_bonus,omitempty"`
	IncapacityDays    *int             `json:"incapacity_days,omitempty"`
}

func (r *UpsertAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	amountFields := map[string]*decimal.Decimal{
		"social_security":  r.SocialSecurity,
		"insurance":        r.Insurance,
		"payroll_advance":  r.PayrollAdvance,
		"other_deductions": r.OtherDeductions,
	}
	for field, value := range amountFields {
		if value != nil && value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.IncapacityDays != nil && *r.IncapacityDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "incapacity_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentResponse struct {
	EmployeeName      string          `json:"employee_name"`
	SocialSecurity    decimal.Decimal `json:"social_security"`
	Insurance         decimal.Decimal `json:"insurance"`
	PayrollAdvance    decimal.Decimal `json:"payroll_advance"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`
	ProductivityBonus decimal.Decimal `json:"productivity_bonus"`
	IncapacityDays    int             `json:"incapacity_days"`
}

func ToResponse(a Adjustment) AdjustmentResponse {
	return AdjustmentResponse{
		EmployeeName:      a.EmployeeName,
		SocialSecurity:    a.SocialSecurity,
		Insurance:         a.Insurance,
		PayrollAdvance:    a.PayrollAdvance,
		OtherDeductions:   a.OtherDeductions,
		ProductivityBonus: a.ProductivityBonus,
		IncapacityDays:    a.IncapacityDays,
	}
}
