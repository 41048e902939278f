package adjustment

import "context"

// AdjustmentService defines business logic for standing payroll overrides
type AdjustmentService interface {
	// GetByEmployee returns the stored overrides for an employee, or a
	// zero-valued adjustment when none have been saved
	GetByEmployee(ctx context.Context, employeeName string) (AdjustmentResponse, error)

	// Upsert stores the overrides for an employee
	Upsert(ctx context.Context, req UpsertAdjustmentRequest) (AdjustmentResponse, error)

	// List returns all stored overrides
	List(ctx context.Context) ([]AdjustmentResponse, error)
}
