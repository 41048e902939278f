package summary

import "context"

// SummaryService defines business logic for biweekly payroll summaries
type SummaryService interface {
	// BuildForPeriod computes summaries for every roster employee from
	// the recorded time entries, without persisting anything
	BuildForPeriod(ctx context.Context, req PeriodRequest) ([]SummaryResponse, error)

	// Save computes and persists the summary for one employee,
	// replacing any previously saved summary for the same period
	Save(ctx context.Context, req SaveSummaryRequest) (SummaryResponse, error)

	// ListSaved retrieves persisted summaries for a period
	ListSaved(ctx context.Context, req PeriodRequest) ([]SummaryResponse, error)

	// GetSaved retrieves a single persisted summary
	GetSaved(ctx context.Context, id string) (SummaryResponse, error)

	// Edit applies manual corrections to a saved summary and
	// recomputes its derived totals
	Edit(ctx context.Context, req EditSummaryRequest) (SummaryResponse, error)

	// Delete removes a saved summary
	Delete(ctx context.Context, id string) error

	// RenderPaySlip produces a printable PDF pay slip for a saved summary
	RenderPaySlip(ctx context.Context, id string) ([]byte, error)
}
