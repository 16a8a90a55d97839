package employee

import (
	"context"
	"errors"
	"time"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/deduction"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	deductionRepo deduction.DeductionRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	deductionRepo deduction.DeductionRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:  employeeRepo,
		deductionRepo: deductionRepo,
	}
}

// ========== EMPLOYEES ==========

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := s.employeeRepo.GetByNationalID(ctx, req.NationalID)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrNationalIDExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	emp, err := s.employeeRepo.Create(ctx, employee.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		HireDate:   hireDate,
		BaseSalary: req.BaseSalary,
		Active:     true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	employees, totalCount, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, toEmployeeResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	inactive := false
	return s.employeeRepo.Update(ctx, employee.UpdateEmployeeRequest{
		ID:     id,
		Active: &inactive,
	})
}

// ========== DEPENDENTS ==========

func (s *EmployeeServiceImpl) AddDependent(ctx context.Context, req employee.CreateDependentRequest) (employee.DependentResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.DependentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return employee.DependentResponse{}, err
	}

	birthDate, _ := time.Parse("2006-01-02", req.BirthDate)

	var expiry *time.Time
	if req.ResidencyExpiry != nil {
		parsed, err := time.Parse("2006-01-02", *req.ResidencyExpiry)
		if err == nil {
			expiry = &parsed
		}
	}

	dep, err := s.employeeRepo.CreateDependent(ctx, employee.Dependent{
		EmployeeID:      req.EmployeeID,
		FullName:        req.FullName,
		BirthDate:       birthDate,
		Resident:        req.Resident,
		ResidencyExpiry: expiry,
		Active:          true,
	})
	if err != nil {
		return employee.DependentResponse{}, err
	}

	return toDependentResponse(dep), nil
}

func (s *EmployeeServiceImpl) ListDependents(ctx context.Context, employeeID string) ([]employee.DependentResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	dependents, err := s.employeeRepo.ListDependents(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]employee.DependentResponse, 0, len(dependents))
	for _, dep := range dependents {
		resp = append(resp, toDependentResponse(dep))
	}
	return resp, nil
}

func (s *EmployeeServiceImpl) UpdateDependent(ctx context.Context, req employee.UpdateDependentRequest) (employee.DependentResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.DependentResponse{}, err
	}

	if err := s.employeeRepo.UpdateDependent(ctx, req); err != nil {
		return employee.DependentResponse{}, err
	}

	dep, err := s.employeeRepo.GetDependentByID(ctx, req.ID)
	if err != nil {
		return employee.DependentResponse{}, err
	}

	return toDependentResponse(dep), nil
}

// ========== DEDUCTIONS ==========

func (s *EmployeeServiceImpl) AddDeduction(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	if !emp.Active {
		return deduction.DeductionResponse{}, employee.ErrEmployeeInactive
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err == nil {
			endDate = &parsed
		}
	}

	ded, err := s.deductionRepo.Create(ctx, deduction.Deduction{
		EmployeeID:  req.EmployeeID,
		Type:        deduction.Type(req.Type),
		Description: req.Description,
		Amount:      req.Amount,
		StartDate:   startDate,
		EndDate:     endDate,
		Recurring:   req.Recurring,
		Active:      true,
	})
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	return toDeductionResponse(ded), nil
}

func (s *EmployeeServiceImpl) ListDeductions(ctx context.Context, employeeID string) ([]deduction.DeductionResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	deductions, err := s.deductionRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]deduction.DeductionResponse, 0, len(deductions))
	for _, ded := range deductions {
		resp = append(resp, toDeductionResponse(ded))
	}
	return resp, nil
}

func (s *EmployeeServiceImpl) UpdateDeduction(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}

	if err := s.deductionRepo.Update(ctx, req); err != nil {
		return deduction.DeductionResponse{}, err
	}

	ded, err := s.deductionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	return toDeductionResponse(ded), nil
}

func (s *EmployeeServiceImpl) DeactivateDeduction(ctx context.Context, id string) error {
	inactive := false
	return s.deductionRepo.Update(ctx, deduction.UpdateDeductionRequest{
		ID:     id,
		Active: &inactive,
	})
}

// ========== HELPERS ==========

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		NationalID: emp.NationalID,
		Email:      emp.Email,
		Phone:      emp.Phone,
		Position:   emp.Position,
		HireDate:   emp.HireDate.Format("2006-01-02"),
		BaseSalary: emp.BaseSalary,
		Active:     emp.Active,
	}
}

func toDependentResponse(dep employee.Dependent) employee.DependentResponse {
	now := time.Now()
	resp := employee.DependentResponse{
		ID:             dep.ID,
		EmployeeID:     dep.EmployeeID,
		FullName:       dep.FullName,
		BirthDate:      dep.BirthDate.Format("2006-01-02"),
		Age:            dep.Age(now),
		Minor:          dep.IsMinor(now),
		Resident:       dep.Resident,
		ValidResidency: dep.HasValidResidency(now),
		Active:         dep.Active,
	}
	if dep.ResidencyExpiry != nil {
		formatted := dep.ResidencyExpiry.Format("2006-01-02")
		resp.ResidencyExpiry = &formatted
	}
	return resp
}

func toDeductionResponse(ded deduction.Deduction) deduction.DeductionResponse {
	resp := deduction.DeductionResponse{
		ID:          ded.ID,
		EmployeeID:  ded.EmployeeID,
		Type:        string(ded.Type),
		TypeLabel:   ded.Type.Label(),
		Description: ded.Description,
		Amount:      ded.Amount,
		StartDate:   ded.StartDate.Format("2006-01-02"),
		Recurring:   ded.Recurring,
		Active:      ded.Active,
	}
	if ded.EndDate != nil {
		formatted := ded.EndDate.Format("2006-01-02")
		resp.EndDate = &formatted
	}
	return resp
}
