package payroll

import "context"

type PayrollService interface {
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetStatement(ctx context.Context, periodID string) (StatementResponse, error)
	ListPeriods(ctx context.Context, filter PeriodFilter) (ListPeriodResponse, error)
	DeletePeriod(ctx context.Context, periodID string) error

	// Recalculate regenerates the period's line items and totals from a
	// clean slate. force overrides the emailed lock and clears the flag.
	Recalculate(ctx context.Context, periodID string, force bool, actor string) (Totals, error)
	// RecalculateMonth runs Recalculate over every open period of a month,
	// creating missing periods for active employees first. Each period is
	// its own transaction; one failure does not roll back the others.
	RecalculateMonth(ctx context.Context, req RecalculateMonthRequest, actor string) (BatchRecalculationResponse, error)

	Close(ctx context.Context, periodID string, actor string) error
	// SendReceipt renders the receipt PDF, emails it to the employee and
	// marks the period emailed. Called explicitly after Close; there is no
	// implicit post-save hook.
	SendReceipt(ctx context.Context, periodID string, actor string) error

	ListConcepts(ctx context.Context) ([]ConceptResponse, error)
}
