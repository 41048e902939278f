package employee

import "github.com/shopspring/decimal"

type EmployeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	JobTitle   string `json:"job_title"`
	NationalID string `json:"national_id"`

	BaseSalary decimal.Decimal `json:"base_salary"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	OvertimeDayRate          decimal.Decimal `json:"overtime_day_rate"`
	NightSurchargeRate       decimal.Decimal `json:"night_surcharge_rate"`
	OvertimeNightRate        decimal.Decimal `json:"overtime_night_rate"`
	HolidayDayRate           decimal.Decimal `json:"holiday_day_rate"`
	HolidayOvertimeDayRate   decimal.Decimal `json:"holiday_overtime_day_rate"`
	HolidayNightRate         decimal.Decimal `json:"holiday_night_rate"`
	HolidayOvertimeNightRate decimal.Decimal `json:"holiday_overtime_night_rate"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                       e.ID,
		Name:                     e.Name,
		JobTitle:                 e.JobTitle,
		NationalID:               e.NationalID,
		BaseSalary:               e.BaseSalary,
		DailyRate:                e.DailyRate,
		HourlyRate:               e.HourlyRate,
		OvertimeDayRate:          e.OvertimeDayRate,
		NightSurchargeRate:       e.NightSurchargeRate,
		OvertimeNightRate:        e.OvertimeNightRate,
		HolidayDayRate:           e.HolidayDayRate,
		HolidayOvertimeDayRate:   e.HolidayOvertimeDayRate,
		HolidayNightRate:         e.HolidayNightRate,
		HolidayOvertimeNightRate: e.HolidayOvertimeNightRate,
	}
}
