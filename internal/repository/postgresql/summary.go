package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/summary"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/database"
)

type summaryRepository struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) summary.SummaryRepository {
	return &summaryRepository{db: db}
}

const summaryColumns = `
	id, employee_name, job_title, period_start, period_end,
	normal_hours, overtime_day_hours, night_surcharge_hours, overtime_night_hours,
	holiday_day_hours, holiday_overtime_day_hours, holiday_night_hours, holiday_overtime_night_hours,
	hourly_rate, daily_rate, transport_allowance, incapacity_days, productivity_bonus,
	social_security, insurance, payroll_advance, other_deductions,
	total_earned, total_deductions, total_payable,
	saved_at, created_at, updated_at
`

func scanSummary(row pgx.Row) (summary.PeriodSummary, error) {
	var s summary.PeriodSummary
	err := row.Scan(
		&s.ID, &s.EmployeeName, &s.JobTitle, &s.PeriodStart, &s.PeriodEnd,
		&s.Hours.Normal, &s.Hours.OvertimeDay, &s.Hours.NightSurcharge, &s.Hours.OvertimeNight,
		&s.Hours.HolidayDay, &s.Hours.HolidayOvertimeDay, &s.Hours.HolidayNight, &s.Hours.HolidayOvertimeNight,
		&s.HourlyRate, &s.DailyRate, &s.TransportAllowance, &s.IncapacityDays, &s.ProductivityBonus,
		&s.Deductions.SocialSecurity, &s.Deductions.Insurance, &s.Deductions.PayrollAdvance, &s.Deductions.Other,
		&s.TotalEarned, &s.TotalDeductions, &s.TotalPayable,
		&s.SavedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func summaryArgs(s summary.PeriodSummary) []interface{} {
	return []interface{}{
		s.EmployeeName, s.JobTitle, s.PeriodStart, s.PeriodEnd,
		s.Hours.Normal, s.Hours.OvertimeDay, s.Hours.NightSurcharge, s.Hours.OvertimeNight,
		s.Hours.HolidayDay, s.Hours.HolidayOvertimeDay, s.Hours.HolidayNight, s.Hours.HolidayOvertimeNight,
		s.HourlyRate, s.DailyRate, s.TransportAllowance, s.IncapacityDays, s.ProductivityBonus,
		s.Deductions.SocialSecurity, s.Deductions.Insurance, s.Deductions.PayrollAdvance, s.Deductions.Other,
		s.TotalEarned, s.TotalDeductions, s.TotalPayable, s.SavedAt,
	}
}

func (r *summaryRepository) Save(ctx context.Context, s summary.PeriodSummary) (summary.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	// One summary per employee and period; saving again replaces it
	query := `
		INSERT INTO period_summaries (
			id, employee_name, job_title, period_start, period_end,
			normal_hours, overtime_day_hours, night_surcharge_hours, overtime_night_hours,
			holiday_day_hours, holiday_overtime_day_hours, holiday_night_hours, holiday_overtime_night_hours,
			hourly_rate, daily_rate, transport_allowance, incapacity_days, productivity_bonus,
			social_security, insurance, payroll_advance, other_deductions,
			total_earned, total_deductions, total_payable, saved_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)
		ON CONFLICT (employee_name, period_start) DO UPDATE SET
			job_title = EXCLUDED.job_title,
			period_end = EXCLUDED.period_end,
			normal_hours = EXCLUDED.normal_hours,
			overtime_day_hours = EXCLUDED.overtime_day_hours,
			night_surcharge_hours = EXCLUDED.night_surcharge_hours,
			overtime_night_hours = EXCLUDED.overtime_night_hours,
			holiday_day_hours = EXCLUDED.holiday_day_hours,
			holiday_overtime_day_hours = EXCLUDED.holiday_overtime_day_hours,
			holiday_night_hours = EXCLUDED.holiday_night_hours,
			holiday_overtime_night_hours = EXCLUDED.holiday_overtime_night_hours,
			hourly_rate = EXCLUDED.hourly_rate,
			daily_rate = EXCLUDED.daily_rate,
			transport_allowance = EXCLUDED.transport_allowance,
			incapacity_days = EXCLUDED.incapacity_days,
			productivity_bonus = EXCLUDED.productivity_bonus,
			social_security = EXCLUDED.social_security,
			insurance = EXCLUDED.insurance,
			payroll_advance = EXCLUDED.payroll_advance,
			other_deductions = EXCLUDED.other_deductions,
			total_earned = EXCLUDED.total_earned,
			total_deductions = EXCLUDED.total_deductions,
			total_payable = EXCLUDED.total_payable,
			saved_at = EXCLUDED.saved_at,
			updated_at = NOW()
		RETURNING ` + summaryColumns

	saved, err := scanSummary(q.QueryRow(ctx, query, summaryArgs(s)...))
	if err != nil {
		return summary.PeriodSummary{}, fmt.Errorf("failed to save period summary: %w", err)
	}

	return saved, nil
}

func (r *summaryRepository) GetByID(ctx context.Context, id string) (summary.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + summaryColumns + ` FROM period_summaries WHERE id = $1`

	s, err := scanSummary(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.PeriodSummary{}, summary.ErrSummaryNotFound
		}
		return summary.PeriodSummary{}, fmt.Errorf("failed to get period summary: %w", err)
	}

	return s, nil
}

func (r *summaryRepository) ListByPeriod(ctx context.Context, p summary.Period) ([]summary.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM period_summaries
		WHERE period_start = $1 AND period_end = $2
		ORDER BY employee_name
	`

	rows, err := q.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list period summaries: %w", err)
	}
	defer rows.Close()

	return collectSummaries(rows)
}

func collectSummaries(rows pgx.Rows) ([]summary.PeriodSummary, error) {
	var summaries []summary.PeriodSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read period summaries: %w", err)
	}
	return summaries, nil
}

func (r *summaryRepository) Update(ctx context.Context, s summary.PeriodSummary) (summary.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE period_summaries SET
			normal_hours = $2, overtime_day_hours = $3, night_surcharge_hours = $4,
			overtime_night_hours = $5, holiday_day_hours = $6, holiday_overtime_day_hours = $7,
			holiday_night_hours = $8, holiday_overtime_night_hours = $9,
			transport_allowance = $10, incapacity_days = $11, productivity_bonus = $12,
			social_security = $13, insurance = $14, payroll_advance = $15, other_deductions = $16,
			total_earned = $17, total_deductions = $18, total_payable = $19,
			saved_at = $20, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + summaryColumns

	updated, err := scanSummary(q.QueryRow(ctx, query,
		s.ID,
		s.Hours.Normal, s.Hours.OvertimeDay, s.Hours.NightSurcharge,
		s.Hours.OvertimeNight, s.Hours.HolidayDay, s.Hours.HolidayOvertimeDay,
		s.Hours.HolidayNight, s.Hours.HolidayOvertimeNight,
		s.TransportAllowance, s.IncapacityDays, s.ProductivityBonus,
		s.Deductions.SocialSecurity, s.Deductions.Insurance, s.Deductions.PayrollAdvance, s.Deductions.Other,
		s.TotalEarned, s.TotalDeductions, s.TotalPayable,
		s.SavedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.PeriodSummary{}, summary.ErrSummaryNotFound
		}
		return summary.PeriodSummary{}, fmt.Errorf("failed to update period summary: %w", err)
	}

	return updated, nil
}

func (r *summaryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM period_summaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete period summary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return summary.ErrSummaryNotFound
	}
	return nil
}
