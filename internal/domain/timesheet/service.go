package timesheet

import "context"

// EntryService defines business logic for time entry operations
type EntryService interface {
	// Register records a new shift, classifying it from the declared
	// overtime fields and the start time
	Register(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)

	// Update replaces a shift and reclassifies it using both endpoints
	// of the worked interval
	Update(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)

	// GetEntry retrieves a single entry by ID
	GetEntry(ctx context.Context, id string) (EntryResponse, error)

	// List retrieves entries matching the filter, newest date first
	List(ctx context.Context, filter EntryFilter) ([]EntryResponse, error)

	// Delete removes an entry
	Delete(ctx context.Context, id string) error
}
