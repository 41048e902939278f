package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/adjustment"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

const adjustmentColumns = `
	id, employee_name, social_security, insurance, payroll_advance,
	other_deductions, productivity_bonus, incapacity_days, created_at, updated_at
`

func scanAdjustment(row pgx.Row) (adjustment.Adjustment, error) {
	var a adjustment.Adjustment
	err := row.Scan(
		&a.ID, &a.EmployeeName, &a.SocialSecurity, &a.Insurance, &a.PayrollAdvance,
		&a.OtherDeductions, &a.ProductivityBonus, &a.IncapacityDays, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *adjustmentRepository) Upsert(ctx context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adjustments (
			id, employee_name, social_security, insurance, payroll_advance,
			other_deductions, productivity_bonus, incapacity_days
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_name) DO UPDATE SET
			social_security = EXCLUDED.social_security,
			insurance = EXCLUDED.insurance,
			payroll_advance = EXCLUDED.payroll_advance,
			other_deductions = EXCLUDED.other_deductions,
			productivity_bonus = EXCLUDED.productivity_bonus,
			incapacity_days = EXCLUDED.incapacity_days,
			updated_at = NOW()
		RETURNING ` + adjustmentColumns

	saved, err := scanAdjustment(q.QueryRow(ctx, query,
		adj.EmployeeName, adj.SocialSecurity, adj.Insurance, adj.PayrollAdvance,
		adj.OtherDeductions, adj.ProductivityBonus, adj.IncapacityDays,
	))
	if err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("failed to upsert adjustment: %w", err)
	}

	return saved, nil
}

func (r *adjustmentRepository) GetByEmployee(ctx context.Context, employeeName string) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + ` FROM adjustments WHERE employee_name = $1`

	adj, err := scanAdjustment(q.QueryRow(ctx, query, employeeName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.Adjustment{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.Adjustment{}, fmt.Errorf("failed to get adjustment: %w", err)
	}

	return adj, nil
}

func (r *adjustmentRepository) List(ctx context.Context) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + ` FROM adjustments ORDER BY employee_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	return collectAdjustments(rows)
}

func collectAdjustments(rows pgx.Rows) ([]adjustment.Adjustment, error) {
	var adjustments []adjustment.Adjustment
	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, adj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read adjustments: %w", err)
	}
	return adjustments, nil
}

func (r *adjustmentRepository) Delete(ctx context.Context, employeeName string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM adjustments WHERE employee_name = $1`, employeeName)
	if err != nil {
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAdjustmentNotFound
	}
	return nil
}
