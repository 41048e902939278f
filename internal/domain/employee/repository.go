package employee

import "context"

// EmployeeRepository defines data access methods for the employee roster.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByName(ctx context.Context, name string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)

	// SeedDefaults inserts missing roster entries, leaving existing
	// rows untouched.
	SeedDefaults(ctx context.Context, roster Roster) error
}
