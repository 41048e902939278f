package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/employee"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, name, job_title, national_id, base_salary, daily_rate, hourly_rate,
	overtime_day_rate, night_surcharge_rate, overtime_night_rate,
	holiday_day_rate, holiday_overtime_day_rate, holiday_night_rate,
	holiday_overtime_night_rate, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.JobTitle, &e.NationalID, &e.BaseSalary, &e.DailyRate, &e.HourlyRate,
		&e.OvertimeDayRate, &e.NightSurchargeRate, &e.OvertimeNightRate,
		&e.HolidayDayRate, &e.HolidayOvertimeDayRate, &e.HolidayNightRate,
		&e.HolidayOvertimeNightRate, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, job_title, national_id, base_salary, daily_rate, hourly_rate,
			overtime_day_rate, night_surcharge_rate, overtime_night_rate,
			holiday_day_rate, holiday_overtime_day_rate, holiday_night_rate,
			holiday_overtime_night_rate
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.Name, emp.JobTitle, emp.NationalID, emp.BaseSalary, emp.DailyRate, emp.HourlyRate,
		emp.OvertimeDayRate, emp.NightSurchargeRate, emp.OvertimeNightRate,
		emp.HolidayDayRate, emp.HolidayOvertimeDayRate, emp.HolidayNightRate,
		emp.HolidayOvertimeNightRate,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_name") {
			return employee.Employee{}, employee.ErrEmployeeNameExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByName(ctx context.Context, name string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE name = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) SeedDefaults(ctx context.Context, roster employee.Roster) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO employees (
				id, name, job_title, national_id, base_salary, daily_rate, hourly_rate,
				overtime_day_rate, night_surcharge_rate, overtime_night_rate,
				holiday_day_rate, holiday_overtime_day_rate, holiday_night_rate,
				holiday_overtime_night_rate
			) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (name) DO NOTHING
		`
		for _, emp := range roster {
			_, err := tx.Exec(ctx, query,
				emp.Name, emp.JobTitle, emp.NationalID, emp.BaseSalary, emp.DailyRate, emp.HourlyRate,
				emp.OvertimeDayRate, emp.NightSurchargeRate, emp.OvertimeNightRate,
				emp.HolidayDayRate, emp.HolidayOvertimeDayRate, emp.HolidayNightRate,
				emp.HolidayOvertimeNightRate,
			)
			if err != nil {
				return fmt.Errorf("failed to seed employee %s: %w", emp.Name, err)
			}
		}
		return nil
	})
}
