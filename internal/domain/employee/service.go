package employee

import (
	"context"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/deduction"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error

	AddDependent(ctx context.Context, req CreateDependentRequest) (DependentResponse, error)
	ListDependents(ctx context.Context, employeeID string) ([]DependentResponse, error)
	UpdateDependent(ctx context.Context, req UpdateDependentRequest) (DependentResponse, error)

	AddDeduction(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error)
	ListDeductions(ctx context.Context, employeeID string) ([]deduction.DeductionResponse, error)
	UpdateDeduction(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error)
	DeactivateDeduction(ctx context.Context, id string) error
}
