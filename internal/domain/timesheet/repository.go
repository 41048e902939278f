package timesheet

import (
	"context"
	"time"
)

// EntryRepository defines data access methods for time entries.
type EntryRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Entry, error)
	ListByEmployee(ctx context.Context, employeeName string, from, to time.Time) ([]Entry, error)
	Update(ctx context.Context, entry Entry) (Entry, error)
	Delete(ctx context.Context, id string) error
}
