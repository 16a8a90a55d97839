package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TxManager runs fn inside a database transaction; repository calls made
// with the ctx it passes to fn join that transaction. The recalculation's
// delete-then-recreate sequence must run entirely inside one.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type PayrollRepository interface {
	// Concepts
	EnsureConcept(ctx context.Context, concept Concept) (Concept, error)
	ListConcepts(ctx context.Context) ([]Concept, error)

	// Periods
	CreatePeriod(ctx context.Context, period Period) (Period, error)
	GetPeriodByID(ctx context.Context, id string) (Period, error)
	// GetPeriodForUpdate locks the period row for the calling transaction,
	// serializing concurrent recalculations of the same period.
	GetPeriodForUpdate(ctx context.Context, id string) (Period, error)
	GetPeriodByEmployeeMonth(ctx context.Context, employeeID string, month, year int) (Period, error)
	ListPeriods(ctx context.Context, filter PeriodFilter) ([]Period, int64, error)
	ListOpenPeriodIDs(ctx context.Context, month, year int) ([]string, error)

	// UpdatePeriodTotals persists the recalculated aggregates and the
	// possibly adopted base salary. Refuses closed periods.
	UpdatePeriodTotals(ctx context.Context, id string, baseSalary, credits, debits, net decimal.Decimal) error
	ClosePeriod(ctx context.Context, id string) error
	MarkEmailed(ctx context.Context, id string, at time.Time) error
	ClearEmailed(ctx context.Context, id string) error
	DeletePeriod(ctx context.Context, id string) error

	// Line items
	DeleteLineItems(ctx context.Context, periodID string) error
	CreateLineItem(ctx context.Context, item LineItem) (LineItem, error)
	ListLineItems(ctx context.Context, periodID string) ([]LineItem, error)
}
