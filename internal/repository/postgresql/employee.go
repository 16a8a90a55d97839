package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/employee"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// ========== EMPLOYEES ==========

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (first_name, last_name, national_id, email, phone, position, hire_date, base_salary, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, first_name, last_name, national_id, email, phone, position, hire_date, base_salary, active, created_at, updated_at
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.NationalID, emp.Email, emp.Phone, emp.Position, emp.HireDate, emp.BaseSalary, emp.Active,
	).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.NationalID, &e.Email, &e.Phone, &e.Position, &e.HireDate, &e.BaseSalary, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_national_id") {
			return employee.Employee{}, employee.ErrNationalIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, national_id, email, phone, position, hire_date, base_salary, active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.NationalID, &e.Email, &e.Phone, &e.Position, &e.HireDate, &e.BaseSalary, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByNationalID(ctx context.Context, nationalID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, national_id, email, phone, position, hire_date, base_salary, active, created_at, updated_at
		FROM employees
		WHERE national_id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, nationalID).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.NationalID, &e.Email, &e.Phone, &e.Position, &e.HireDate, &e.BaseSalary, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by national ID: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM employees WHERE 1=1`
	var args []interface{}
	argIdx := 1

	if filter.ActiveOnly {
		baseQuery += " AND active = true"
	}
	if filter.Search != "" {
		baseQuery += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR national_id ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT id, first_name, last_name, national_id, email, phone, position, hire_date, base_salary, active, created_at, updated_at
		%s
		ORDER BY last_name, first_name
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.FirstName, &e.LastName, &e.NationalID, &e.Email, &e.Phone, &e.Position, &e.HireDate, &e.BaseSalary, &e.Active, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, totalCount, nil
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, national_id, email, phone, position, hire_date, base_salary, active, created_at, updated_at
		FROM employees
		WHERE active = true
		ORDER BY last_name, first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.FirstName, &e.LastName, &e.NationalID, &e.Email, &e.Phone, &e.Position, &e.HireDate, &e.BaseSalary, &e.Active, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.FirstName != nil {
		setParts = append(setParts, fmt.Sprintf("first_name = $%d", argIdx))
		args = append(args, *req.FirstName)
		argIdx++
	}
	if req.LastName != nil {
		setParts = append(setParts, fmt.Sprintf("last_name = $%d", argIdx))
		args = append(args, *req.LastName)
		argIdx++
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Phone != nil {
		setParts = append(setParts, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.Position != nil {
		setParts = append(setParts, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, *req.Position)
		argIdx++
	}
	if req.BaseSalary != nil {
		setParts = append(setParts, fmt.Sprintf("base_salary = $%d", argIdx))
		args = append(args, *req.BaseSalary)
		argIdx++
	}
	if req.Active != nil {
		setParts = append(setParts, fmt.Sprintf("active = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// ========== DEPENDENTS ==========

func (r *employeeRepository) CreateDependent(ctx context.Context, dep employee.Dependent) (employee.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	var empExists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, dep.EmployeeID).Scan(&empExists)
	if err != nil {
		return employee.Dependent{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !empExists {
		return employee.Dependent{}, employee.ErrEmployeeNotFound
	}

	query := `
		INSERT INTO dependents (employee_id, full_name, birth_date, resident, residency_expiry, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, full_name, birth_date, resident, residency_expiry, active, created_at, updated_at
	`

	var d employee.Dependent
	err = q.QueryRow(ctx, query,
		dep.EmployeeID, dep.FullName, dep.BirthDate, dep.Resident, dep.ResidencyExpiry, dep.Active,
	).Scan(
		&d.ID, &d.EmployeeID, &d.FullName, &d.BirthDate, &d.Resident, &d.ResidencyExpiry, &d.Active, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return employee.Dependent{}, fmt.Errorf("failed to create dependent: %w", err)
	}

	return d, nil
}

func (r *employeeRepository) GetDependentByID(ctx context.Context, id string) (employee.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, full_name, birth_date, resident, residency_expiry, active, created_at, updated_at
		FROM dependents
		WHERE id = $1
	`

	var d employee.Dependent
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.EmployeeID, &d.FullName, &d.BirthDate, &d.Resident, &d.ResidencyExpiry, &d.Active, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Dependent{}, employee.ErrDependentNotFound
		}
		return employee.Dependent{}, fmt.Errorf("failed to get dependent: %w", err)
	}

	return d, nil
}

func (r *employeeRepository) ListDependents(ctx context.Context, employeeID string) ([]employee.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	// Ordered so the family-bonus dependent cap is deterministic.
	query := `
		SELECT id, employee_id, full_name, birth_date, resident, residency_expiry, active, created_at, updated_at
		FROM dependents
		WHERE employee_id = $1
		ORDER BY birth_date, id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependents: %w", err)
	}
	defer rows.Close()

	var dependents []employee.Dependent
	for rows.Next() {
		var d employee.Dependent
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.FullName, &d.BirthDate, &d.Resident, &d.ResidencyExpiry, &d.Active, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan dependent: %w", err)
		}
		dependents = append(dependents, d)
	}

	return dependents, nil
}

func (r *employeeRepository) UpdateDependent(ctx context.Context, req employee.UpdateDependentRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Resident != nil {
		setParts = append(setParts, fmt.Sprintf("resident = $%d", argIdx))
		args = append(args, *req.Resident)
		argIdx++
	}
	if req.ResidencyExpiry != nil {
		expiry, err := time.Parse("2006-01-02", *req.ResidencyExpiry)
		if err != nil {
			return fmt.Errorf("failed to parse residency expiry: %w", err)
		}
		setParts = append(setParts, fmt.Sprintf("residency_expiry = $%d", argIdx))
		args = append(args, expiry)
		argIdx++
	}
	if req.Active != nil {
		setParts = append(setParts, fmt.Sprintf("active = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE dependents
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrDependentNotFound
		}
		return fmt.Errorf("failed to update dependent: %w", err)
	}

	return nil
}
