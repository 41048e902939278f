package summary

import (
	"time"

	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PERIOD DTOs ==========

type PeriodRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Half  int `json:"half"` // 1 = 1st-15th, 2 = 16th-end of month
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Half != int(FirstHalf) && r.Half != int(SecondHalf) {
		errs = append(errs, validator.ValidationError{Field: "half", Message: "must be 1 or 2"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the quincena the request describes. Call Validate first.
func (r *PeriodRequest) Period() Period {
	return NewPeriod(r.Year, time.Month(r.Month), Half(r.Half))
}

// ========== SUMMARY DTOs ==========

type SaveSummaryRequest struct {
	EmployeeName string `json:"employee_name"`
	PeriodRequest
}

func (r *SaveSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "is required"})
	}
	if err := r.PeriodRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EditSummaryRequest struct {
	ID string

	NormalHours               *float64 `json:"normal_hours,omitempty"`
	OvertimeDayHours          *float64 `json:"overtime_day_hours,omitempty"`
	NightSurchargeHours       *float64 `json:"night_surcharge_hours,omitempty"`
	OvertimeNightHours        *float64 `json:"overtime_night_hours,omitempty"`
	HolidayDayHours           *float64 `json:"holiday_day_hours,omitempty"`
	HolidayOvertimeDayHours   *float64 `json:"holiday_overtime_day_hours,omitempty"`
	HolidayNightHours         *float64 `json:"holiday_night_hours,omitempty"`
	HolidayOvertimeNightHours *float64 `json:"holiday_overtime_night_hours,omitempty"`

	SocialSecurity    *decimal.Decimal `json:"social_security,omitempty"`
	Insurance         *decimal.Decimal `json:"insurance,omitempty"`
	PayrollAdvance    *decimal.Decimal `json:"payroll_advance,omitempty"`
	OtherDeductions   *decimal.Decimal `json:"other_deductions,omitempty"`
	ProductivityBonus *decimal.Decimal `json:"productivity_bonus,omitempty"`
	IncapacityDays    *int             `json:"incapacity_days,omitempty"`
}

func (r *EditSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	hourFields := map[string]*float64{
		"normal_hours":                 r.NormalHours,
		"overtime_day_hours":           r.OvertimeDayHours,
		"night_surcharge_hours":        r.NightSurchargeHours,
		"overtime_night_hours":         r.OvertimeNightHours,
		"holiday_day_hours":            r.HolidayDayHours,
		"holiday_overtime_day_hours":   r.HolidayOvertimeDayHours,
		"holiday_night_hours":          r.HolidayNightHours,
		"holiday_overtime_night_hours": r.HolidayOvertimeNightHours,
	}
	for field, value := range hourFields {
		if value != nil && *value < 0 {
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

type HourBucketsResponse struct {
	Normal               float64 `json:"normal"`
	OvertimeDay          float64 `json:"overtime_day"`
	NightSurcharge       float64 `json:"night_surcharge"`
	OvertimeNight        float64 `json:"overtime_night"`
	HolidayDay           float64 `json:"holiday_day"`
	HolidayOvertimeDay   float64 `json:"holiday_overtime_day"`
	HolidayNight         float64 `json:"holiday_night"`
	HolidayOvertimeNight float64 `json:"holiday_overtime_night"`
}

type DeductionsResponse struct {
	SocialSecurity decimal.Decimal `json:"social_security"`
	Insurance      decimal.Decimal `json:"insurance"`
	PayrollAdvance decimal.Decimal `json:"payroll_advance"`
	Other          decimal.Decimal `json:"other"`
}

type SummaryResponse struct {
	ID           string `json:"id,omitempty"`
	EmployeeName string `json:"employee_name"`
	JobTitle     string `json:"job_title"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`

	Hours HourBucketsResponse `json:"hours"`

	HourlyRate         decimal.Decimal    `json:"hourly_rate"`
	DailyRate          decimal.Decimal    `json:"daily_rate"`
	TransportAllowance decimal.Decimal    `json:"transport_allowance"`
	IncapacityDays     int                `json:"incapacity_days"`
	ProductivityBonus  decimal.Decimal    `json:"productivity_bonus"`
	Deductions         DeductionsResponse `json:"deductions"`

	TotalEarned     decimal.Decimal `json:"total_earned"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalPayable    decimal.Decimal `json:"total_payable"`

	SavedAt *string `json:"saved_at,omitempty"`
}

func ToSummaryResponse(s PeriodSummary) SummaryResponse {
	var savedAt *string
	if !s.SavedAt.IsZero() {
		str := s.SavedAt.Format(time.RFC3339)
		savedAt = &str
	}

	return SummaryResponse{
		ID:           s.ID,
		EmployeeName: s.EmployeeName,
		JobTitle:     s.JobTitle,
		PeriodStart:  s.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    s.PeriodEnd.Format("2006-01-02"),
		Hours: HourBucketsResponse{
			Normal:               s.Hours.Normal,
			OvertimeDay:          s.Hours.OvertimeDay,
			NightSurcharge:       s.Hours.NightSurcharge,
			OvertimeNight:        s.Hours.OvertimeNight,
			HolidayDay:           s.Hours.HolidayDay,
			HolidayOvertimeDay:   s.Hours.HolidayOvertimeDay,
			HolidayNight:         s.Hours.HolidayNight,
			HolidayOvertimeNight: s.Hours.HolidayOvertimeNight,
		},
		HourlyRate:         s.HourlyRate,
		DailyRate:          s.DailyRate,
		TransportAllowance: s.TransportAllowance,
		IncapacityDays:     s.IncapacityDays,
		ProductivityBonus:  s.ProductivityBonus,
		Deductions: DeductionsResponse{
			SocialSecurity: s.Deductions.SocialSecurity,
			Insurance:      s.Deductions.Insurance,
			PayrollAdvance: s.Deductions.PayrollAdvance,
			Other:          s.Deductions.Other,
		},
		TotalEarned:     s.TotalEarned,
		TotalDeductions: s.TotalDeductions,
		TotalPayable:    s.TotalPayable,
		SavedAt:         savedAt,
	}
}
