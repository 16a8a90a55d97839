package employee

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/deduction"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/employee"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employees  map[string]employee.Employee
	dependents map[string][]employee.Dependent
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees:  make(map[string]employee.Employee),
		dependents: make(map[string][]employee.Dependent),
	}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.NationalID == e.NationalID {
			return employee.Employee{}, employee.ErrNationalIDExists
		}
	}
	e.ID = uuid.NewString()
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByNationalID(_ context.Context, nationalID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.NationalID == nationalID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	e, ok := f.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.BaseSalary != nil {
		e.BaseSalary = *req.BaseSalary
	}
	if req.Active != nil {
		e.Active = *req.Active
	}
	f.employees[req.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) CreateDependent(_ context.Context, d employee.Dependent) (employee.Dependent, error) {
	d.ID = uuid.NewString()
	f.dependents[d.EmployeeID] = append(f.dependents[d.EmployeeID], d)
	return d, nil
}

func (f *fakeEmployeeRepo) GetDependentByID(_ context.Context, id string) (employee.Dependent, error) {
	for _, deps := range f.dependents {
		for _, d := range deps {
			if d.ID == id {
				return d, nil
			}
		}
	}
	return employee.Dependent{}, employee.ErrDependentNotFound
}

func (f *fakeEmployeeRepo) ListDependents(_ context.Context, employeeID string) ([]employee.Dependent, error) {
	return f.dependents[employeeID], nil
}

func (f *fakeEmployeeRepo) UpdateDependent(_ context.Context, _ employee.UpdateDependentRequest) error {
	return nil
}

type fakeDeductionRepo struct {
	deductions map[string]deduction.Deduction
}

func newFakeDeductionRepo() *fakeDeductionRepo {
	return &fakeDeductionRepo{deductions: make(map[string]deduction.Deduction)}
}

func (f *fakeDeductionRepo) Create(_ context.Context, d deduction.Deduction) (deduction.Deduction, error) {
	d.ID = uuid.NewString()
	f.deductions[d.ID] = d
	return d, nil
}

func (f *fakeDeductionRepo) GetByID(_ context.Context, id string) (deduction.Deduction, error) {
	d, ok := f.deductions[id]
	if !ok {
		return deduction.Deduction{}, deduction.ErrDeductionNotFound
	}
	return d, nil
}

func (f *fakeDeductionRepo) ListByEmployee(_ context.Context, employeeID string) ([]deduction.Deduction, error) {
	var out []deduction.Deduction
	for _, d := range f.deductions {
		if d.EmployeeID == employeeID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeductionRepo) ListActiveByEmployee(ctx context.Context, employeeID string) ([]deduction.Deduction, error) {
	all, _ := f.ListByEmployee(ctx, employeeID)
	var out []deduction.Deduction
	for _, d := range all {
		if d.Active {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeductionRepo) Update(_ context.Context, req deduction.UpdateDeductionRequest) error {
	d, ok := f.deductions[req.ID]
	if !ok {
		return deduction.ErrDeductionNotFound
	}
	if req.Active != nil {
		d.Active = *req.Active
	}
	f.deductions[req.ID] = d
	return nil
}

func newTestService() (employee.EmployeeService, *fakeEmployeeRepo, *fakeDeductionRepo) {
	employeeRepo := newFakeEmployeeRepo()
	deductionRepo := newFakeDeductionRepo()
	return NewEmployeeService(employeeRepo, deductionRepo), employeeRepo, deductionRepo
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:  "Maria",
		LastName:   "Gonzalez",
		NationalID: "4567890",
		HireDate:   "2020-01-15",
		BaseSalary: decimal.NewFromInt(4500000),
	}
}

func TestCreateEmployee(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Maria", resp.FirstName)
	assert.Equal(t, "2020-01-15", resp.HireDate)
	assert.True(t, resp.Active)
}

func TestCreateEmployeeDuplicateNationalID(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateRequest())
	assert.ErrorIs(t, err, employee.ErrNationalIDExists)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	req := validCreateRequest()
	req.FirstName = ""
	req.NationalID = "12ab"
	req.HireDate = "15/01/2020"

	_, err := svc.Create(ctx, req)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "first_name")
	assert.Contains(t, m, "national_id")
	assert.Contains(t, m, "hire_date")
}

func TestDeactivateEmployee(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, resp.ID))

	stored := repo.employees[resp.ID]
	assert.False(t, stored.Active)
}

func TestAddDependent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	emp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	birthDate := time.Now().AddDate(-10, 0, 0).Format("2006-01-02")
	dep, err := svc.AddDependent(ctx, employee.CreateDependentRequest{
		EmployeeID: emp.ID,
		FullName:   "Sofia Gonzalez",
		BirthDate:  birthDate,
		Resident:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, dep.Age)
	assert.True(t, dep.Minor)
	assert.True(t, dep.ValidResidency)
	assert.True(t, dep.Active)
}

func TestAddDependentFutureBirthDate(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	emp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	_, err = svc.AddDependent(ctx, employee.CreateDependentRequest{
		EmployeeID: emp.ID,
		FullName:   "Future Child",
		BirthDate:  future,
		Resident:   true,
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "birth_date")
}

func TestAddDeduction(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	emp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	ded, err := svc.AddDeduction(ctx, deduction.CreateDeductionRequest{
		EmployeeID: emp.ID,
		Type:       "loan",
		Amount:     decimal.NewFromInt(250000),
		StartDate:  "2025-01-01",
		Recurring:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "loan", ded.Type)
	assert.Equal(t, "Loan", ded.TypeLabel)
	assert.True(t, ded.Active)
}

func TestAddDeductionInvalidType(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	emp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.AddDeduction(ctx, deduction.CreateDeductionRequest{
		EmployeeID: emp.ID,
		Type:       "tax",
		Amount:     decimal.NewFromInt(1000),
		StartDate:  "2025-01-01",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "type")
}

func TestAddDeductionInactiveEmployee(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	emp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(ctx, emp.ID))

	_, err = svc.AddDeduction(ctx, deduction.CreateDeductionRequest{
		EmployeeID: emp.ID,
		Type:       "loan",
		Amount:     decimal.NewFromInt(1000),
		StartDate:  "2025-01-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestDeactivateDeduction(t *testing.T) {
	svc, _, repo := newTestService()
	ctx := context.Background()

	emp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	ded, err := svc.AddDeduction(ctx, deduction.CreateDeductionRequest{
		EmployeeID: emp.ID,
		Type:       "garnishment",
		Amount:     decimal.NewFromInt(100000),
		StartDate:  "2025-01-01",
		Recurring:  true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateDeduction(ctx, ded.ID))
	assert.False(t, repo.deductions[ded.ID].Active)
}

func TestUpdateDeductionMalformedEndDate(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	emp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	ded, err := svc.AddDeduction(ctx, deduction.CreateDeductionRequest{
		EmployeeID: emp.ID,
		Type:       "loan",
		Amount:     decimal.NewFromInt(500000),
		StartDate:  "2025-01-01",
		Recurring:  true,
	})
	require.NoError(t, err)

	badDate := "2025/06/30"
	_, err = svc.UpdateDeduction(ctx, deduction.UpdateDeductionRequest{
		ID:      ded.ID,
		EndDate: &badDate,
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
}

func TestUpdateDependentMalformedExpiry(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	emp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	dep, err := svc.AddDependent(ctx, employee.CreateDependentRequest{
		EmployeeID: emp.ID,
		FullName:   "Ana Benitez",
		BirthDate:  "2015-03-10",
		Resident:   true,
	})
	require.NoError(t, err)

	badDate := "soon"
	_, err = svc.UpdateDependent(ctx, employee.UpdateDependentRequest{
		ID:              dep.ID,
		ResidencyExpiry: &badDate,
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "residency_expiry")
}
