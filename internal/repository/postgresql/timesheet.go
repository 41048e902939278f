package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/timesheet"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/database"
)

type entryRepository struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) timesheet.EntryRepository {
	return &entryRepository{db: db}
}

const entryColumns = `
	id, employee_name, date, start_time, end_time, is_holiday,
	is_overtime, overtime_kind, overtime_hours, category, total_hours,
	created_at, updated_at
`

func scanEntry(row pgx.Row) (timesheet.Entry, error) {
	var e timesheet.Entry
	var overtimeKind *string
	err := row.Scan(
		&e.ID, &e.EmployeeName, &e.Date, &e.StartTime, &e.EndTime, &e.IsHoliday,
		&e.IsOvertime, &overtimeKind, &e.OvertimeHours, &e.Category, &e.TotalHours,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if overtimeKind != nil {
		e.OvertimeKind = timesheet.OvertimeKind(*overtimeKind)
	}
	return e, err
}

func (r *entryRepository) Create(ctx context.Context, entry timesheet.Entry) (timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			id, employee_name, date, start_time, end_time, is_holiday,
			is_overtime, overtime_kind, overtime_hours, category, total_hours
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + entryColumns

	created, err := scanEntry(q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeName, entry.Date, entry.StartTime, entry.EndTime, entry.IsHoliday,
		entry.IsOvertime, nullableKind(entry), entry.OvertimeHours, entry.Category, entry.TotalHours,
	))
	if err != nil {
		return timesheet.Entry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return created, nil
}

func (r *entryRepository) GetByID(ctx context.Context, id string) (timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id = $1`

	entry, err := scanEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Entry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.Entry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return entry, nil
}

func (r *entryRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM time_entries
		WHERE date BETWEEN $1 AND $2
		ORDER BY date DESC, employee_name
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (r *entryRepository) ListByEmployee(ctx context.Context, employeeName string, from, to time.Time) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM time_entries
		WHERE employee_name = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeName, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (r *entryRepository) Update(ctx context.Context, entry timesheet.Entry) (timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET employee_name = $2, date = $3, start_time = $4, end_time = $5,
			is_holiday = $6, is_overtime = $7, overtime_kind = $8,
			overtime_hours = $9, category = $10, total_hours = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + entryColumns

	updated, err := scanEntry(q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeName, entry.Date, entry.StartTime, entry.EndTime,
		entry.IsHoliday, entry.IsOvertime, nullableKind(entry),
		entry.OvertimeHours, entry.Category, entry.TotalHours,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Entry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.Entry{}, fmt.Errorf("failed to update time entry: %w", err)
	}

	return updated, nil
}

func (r *entryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}
	return nil
}

func collectEntries(rows pgx.Rows) ([]timesheet.Entry, error) {
	var entries []timesheet.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time entries: %w", err)
	}
	return entries, nil
}

func nullableKind(entry timesheet.Entry) *string {
	if !entry.IsOvertime || entry.OvertimeKind == "" {
		return nil
	}
	kind := string(entry.OvertimeKind)
	return &kind
}
