package timesheet

import (
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/validator"
)

// ========== ENTRY DTOs ==========

type CreateEntryRequest struct {
	EmployeeName  string  `json:"employee_name"`
	Date          string  `json:"date"` // "YYYY-MM-DD"
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	IsHoliday     bool    `json:"is_holiday"`
	IsOvertime    bool    `json:"is_overtime"`
	OvertimeKind  string  `json:"overtime_kind,omitempty"` // "diurna" or "nocturna"
	OvertimeHours float64 `json:"overtime_hours,omitempty"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a valid time between 00:00 and 24:00"})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a valid time between 00:00 and 24:00"})
	}
	if r.IsOvertime {
		if r.OvertimeKind != "" && r.OvertimeKind != string(OvertimeKindDay) && r.OvertimeKind != string(OvertimeKindNight) {
			errs = append(errs, validator.ValidationError{Field: "overtime_kind", Message: "must be 'diurna' or 'nocturna'"})
		}
		if r.OvertimeHours < 0 {
			errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizedOvertimeKind returns the declared overtime kind, defaulting
// to day work when the field was left blank.
func (r *CreateEntryRequest) NormalizedOvertimeKind() OvertimeKind {
	if r.OvertimeKind == string(OvertimeKindNight) {
		return OvertimeKindNight
	}
	return OvertimeKindDay
}

type UpdateEntryRequest struct {
	ID            string
	EmployeeName  string  `json:"employee_name"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	IsHoliday     bool    `json:"is_holiday"`
	IsOvertime    bool    `json:"is_overtime"`
	OvertimeKind  string  `json:"overtime_kind,omitempty"`
	OvertimeHours float64 `json:"overtime_hours,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	create := CreateEntryRequest{
		EmployeeName:  r.EmployeeName,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		IsHoliday:     r.IsHoliday,
		IsOvertime:    r.IsOvertime,
		OvertimeKind:  r.OvertimeKind,
		OvertimeHours: r.OvertimeHours,
	}
	return create.Validate()
}

func (r *UpdateEntryRequest) NormalizedOvertimeKind() OvertimeKind {
	if r.OvertimeKind == string(OvertimeKindNight) {
		return OvertimeKindNight
	}
	return OvertimeKindDay
}

type EntryResponse struct {
	ID            string  `json:"id"`
	EmployeeName  string  `json:"employee_name"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	IsHoliday     bool    `json:"is_holiday"`
	IsOvertime    bool    `json:"is_overtime"`
	OvertimeKind  string  `json:"overtime_kind,omitempty"`
	OvertimeHours float64 `json:"overtime_hours,omitempty"`
	Category      string  `json:"category"`
	CategoryLabel string  `json:"category_label"`
	TotalHours    float64 `json:"total_hours"`
}

func ToEntryResponse(e Entry) EntryResponse {
	resp := EntryResponse{
		ID:            e.ID,
		EmployeeName:  e.EmployeeName,
		Date:          e.Date.Format("2006-01-02"),
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		IsHoliday:     e.IsHoliday,
		IsOvertime:    e.IsOvertime,
		OvertimeHours: e.OvertimeHours,
		Category:      string(e.Category),
		CategoryLabel: e.Category.Label(),
		TotalHours:    e.TotalHours,
	}
	if e.IsOvertime {
		resp.OvertimeKind = string(e.OvertimeKind)
	}
	return resp
}

// EntryFilter narrows entry listings to a date range and optionally
// one employee.
type EntryFilter struct {
	EmployeeName *string `json:"employee_name,omitempty"`
	From         *string `json:"from,omitempty"` // "YYYY-MM-DD", inclusive
	To           *string `json:"to,omitempty"`   // "YYYY-MM-DD", inclusive
}

func (f *EntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != nil {
		if _, ok := validator.IsValidDate(*f.From); !ok {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a valid date in YYYY-MM-DD format"})
		}
	}
	if f.To != nil {
		if _, ok := validator.IsValidDate(*f.To); !ok {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a valid date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
