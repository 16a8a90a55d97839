package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByNationalID(ctx context.Context, nationalID string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error

	CreateDependent(ctx context.Context, dep Dependent) (Dependent, error)
	GetDependentByID(ctx context.Context, id string) (Dependent, error)
	// ListDependents returns the employee's dependents ordered by birth date
	// then ID, so the family-bonus dependent cap is deterministic.
	ListDependents(ctx context.Context, employeeID string) ([]Dependent, error)
	UpdateDependent(ctx context.Context, req UpdateDependentRequest) error
}
