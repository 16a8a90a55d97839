package deduction

import "context"

type DeductionRepository interface {
	Create(ctx context.Context, ded Deduction) (Deduction, error)
	GetByID(ctx context.Context, id string) (Deduction, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Deduction, error)
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]Deduction, error)
	Update(ctx context.Context, req UpdateDeductionRequest) error
}
