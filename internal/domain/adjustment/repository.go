package adjustment

import "context"

// AdjustmentRepository defines data access methods for per-employee
// payroll overrides. One row exists per employee name.
type AdjustmentRepository interface {
	Upsert(ctx context.Context, adj Adjustment) (Adjustment, error)
	GetByEmployee(ctx context.Context, employeeName string) (Adjustment, error)
	List(ctx context.Context) ([]Adjustment, error)
	Delete(ctx context.Context, employeeName string) error
}
