package summary

import "context"

// SummaryRepository defines data access methods for saved period
// summaries. One row exists per employee and period.
type SummaryRepository interface {
	Save(ctx context.Context, s PeriodSummary) (PeriodSummary, error)
	GetByID(ctx context.Context, id string) (PeriodSummary, error)
	ListByPeriod(ctx context.Context, p Period) ([]PeriodSummary, error)
	Update(ctx context.Context, s PeriodSummary) (PeriodSummary, error)
	Delete(ctx context.Context, id string) error
}
