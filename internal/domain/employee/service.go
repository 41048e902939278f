package employee

import "context"

// EmployeeService defines business logic for roster operations
type EmployeeService interface {
	// GetByName retrieves a single rate card
	GetByName(ctx context.Context, name string) (EmployeeResponse, error)

	// List retrieves the full roster
	List(ctx context.Context) ([]EmployeeResponse, error)
}
