package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/deduction"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/database"
)

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepository{db: db}
}

func (r *deductionRepository) Create(ctx context.Context, ded deduction.Deduction) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deductions (employee_id, type, description, amount, start_date, end_date, recurring, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, type, description, amount, start_date, end_date, recurring, active, created_at, updated_at
	`

	var d deduction.Deduction
	err := q.QueryRow(ctx, query,
		ded.EmployeeID, ded.Type, ded.Description, ded.Amount, ded.StartDate, ded.EndDate, ded.Recurring, ded.Active,
	).Scan(
		&d.ID, &d.EmployeeID, &d.Type, &d.Description, &d.Amount, &d.StartDate, &d.EndDate, &d.Recurring, &d.Active, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return deduction.Deduction{}, fmt.Errorf("failed to create deduction: %w", err)
	}

	return d, nil
}

func (r *deductionRepository) GetByID(ctx context.Context, id string) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, description, amount, start_date, end_date, recurring, active, created_at, updated_at
		FROM deductions
		WHERE id = $1
	`

	var d deduction.Deduction
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.EmployeeID, &d.Type, &d.Description, &d.Amount, &d.StartDate, &d.EndDate, &d.Recurring, &d.Active, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.Deduction{}, deduction.ErrDeductionNotFound
		}
		return deduction.Deduction{}, fmt.Errorf("failed to get deduction: %w", err)
	}

	return d, nil
}

func (r *deductionRepository) ListByEmployee(ctx context.Context, employeeID string) ([]deduction.Deduction, error) {
	return r.list(ctx, employeeID, false)
}

func (r *deductionRepository) ListActiveByEmployee(ctx context.Context, employeeID string) ([]deduction.Deduction, error) {
	return r.list(ctx, employeeID, true)
}

func (r *deductionRepository) list(ctx context.Context, employeeID string, activeOnly bool) ([]deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, description, amount, start_date, end_date, recurring, active, created_at, updated_at
		FROM deductions
		WHERE employee_id = $1
	`
	if activeOnly {
		query += " AND active = true"
	}
	query += " ORDER BY start_date, id"

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var deductions []deduction.Deduction
	for rows.Next() {
		var d deduction.Deduction
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.Type, &d.Description, &d.Amount, &d.StartDate, &d.EndDate, &d.Recurring, &d.Active, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, nil
}

func (r *deductionRepository) Update(ctx context.Context, req deduction.UpdateDeductionRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("amount = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.EndDate != nil {
		end, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return fmt.Errorf("failed to parse end date: %w", err)
		}
		setParts = append(setParts, fmt.Sprintf("end_date = $%d", argIdx))
		args = append(args, end)
		argIdx++
	}
	if req.Active != nil {
		setParts = append(setParts, fmt.Sprintf("active = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE deductions
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.ErrDeductionNotFound
		}
		return fmt.Errorf("failed to update deduction: %w", err)
	}

	return nil
}
