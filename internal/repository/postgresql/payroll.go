package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/payroll"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== CONCEPTS ==========

func (r *payrollRepository) EnsureConcept(ctx context.Context, concept payroll.Concept) (payroll.Concept, error) {
	q := GetQuerier(ctx, r.db)

	// Upsert keyed on name so restarts converge on one catalog row.
	query := `
		INSERT INTO concepts (name, debit, recurring, in_withholding_base, in_year_end_bonus_base)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE
		SET debit = EXCLUDED.debit,
			recurring = EXCLUDED.recurring,
			in_withholding_base = EXCLUDED.in_withholding_base,
			in_year_end_bonus_base = EXCLUDED.in_year_end_bonus_base,
			updated_at = NOW()
		RETURNING id, name, debit, recurring, in_withholding_base, in_year_end_bonus_base, created_at, updated_at
	`

	var c payroll.Concept
	err := q.QueryRow(ctx, query,
		concept.Name, concept.Debit, concept.Recurring, concept.InWithholdingBase, concept.InYearEndBonusBase,
	).Scan(
		&c.ID, &c.Name, &c.Debit, &c.Recurring, &c.InWithholdingBase, &c.InYearEndBonusBase, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return payroll.Concept{}, fmt.Errorf("failed to ensure concept %q: %w", concept.Name, err)
	}

	return c, nil
}

func (r *payrollRepository) ListConcepts(ctx context.Context) ([]payroll.Concept, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, debit, recurring, in_withholding_base, in_year_end_bonus_base, created_at, updated_at
		FROM concepts
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list concepts: %w", err)
	}
	defer rows.Close()

	var concepts []payroll.Concept
	for rows.Next() {
		var c payroll.Concept
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Debit, &c.Recurring, &c.InWithholdingBase, &c.InYearEndBonusBase, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan concept: %w", err)
		}
		concepts = append(concepts, c)
	}

	return concepts, nil
}

// ========== PERIODS ==========

const periodColumns = `
	p.id, p.employee_id, p.month, p.year, p.base_salary,
	p.total_credits, p.total_debits, p.net_pay,
	p.closed, p.emailed, p.emailed_at, p.created_at, p.updated_at,
	e.first_name || ' ' || e.last_name, e.email
`

func scanPeriod(row pgx.Row) (payroll.Period, error) {
	var p payroll.Period
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.BaseSalary,
		&p.TotalCredits, &p.TotalDebits, &p.NetPay,
		&p.Closed, &p.Emailed, &p.EmailedAt, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeEmail,
	)
	return p, err
}

func (r *payrollRepository) CreatePeriod(ctx context.Context, period payroll.Period) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (employee_id, month, year, base_salary, total_credits, total_debits, net_pay)
		VALUES ($1, $2, $3, $4, 0, 0, 0)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		period.EmployeeID, period.Month, period.Year, period.BaseSalary,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_period_employee_month_year") {
			return payroll.Period{}, payroll.ErrPeriodAlreadyExists
		}
		return payroll.Period{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return r.GetPeriodByID(ctx, id)
}

func (r *payrollRepository) GetPeriodByID(ctx context.Context, id string) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		return payroll.Period{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetPeriodForUpdate(ctx context.Context, id string) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	// FOR UPDATE OF p serializes concurrent recalculations of this period;
	// the second transaction blocks here until the first commits.
	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
		FOR UPDATE OF p
	`

	p, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		return payroll.Period{}, fmt.Errorf("failed to lock payroll period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetPeriodByEmployeeMonth(ctx context.Context, employeeID string, month, year int) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3
	`

	p, err := scanPeriod(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		return payroll.Period{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) ([]payroll.Period, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_periods p
		JOIN employees e ON e.id = p.employee_id
		WHERE 1=1
	`
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		baseQuery += fmt.Sprintf(" AND p.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		baseQuery += fmt.Sprintf(" AND p.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Closed != nil {
		baseQuery += fmt.Sprintf(" AND p.closed = $%d", argIdx)
		args = append(args, *filter.Closed)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll periods: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		%s
		ORDER BY p.year DESC, p.month DESC, e.last_name, e.first_name
		LIMIT $%d OFFSET $%d
	`, periodColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.Period
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, totalCount, nil
}

func (r *payrollRepository) ListOpenPeriodIDs(ctx context.Context, month, year int) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id
		FROM payroll_periods
		WHERE month = $1 AND year = $2 AND closed = false
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list open payroll periods: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan period id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *payrollRepository) UpdatePeriodTotals(ctx context.Context, id string, baseSalary, credits, debits, net decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET base_salary = $2, total_credits = $3, total_debits = $4, net_pay = $5, updated_at = NOW()
		WHERE id = $1 AND closed = false
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, baseSalary, credits, debits, net).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return r.periodWriteRefused(ctx, id)
		}
		return fmt.Errorf("failed to update period totals: %w", err)
	}

	return nil
}

func (r *payrollRepository) ClosePeriod(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET closed = true, updated_at = NOW()
		WHERE id = $1 AND closed = false
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return r.periodWriteRefused(ctx, id)
		}
		return fmt.Errorf("failed to close period: %w", err)
	}

	return nil
}

func (r *payrollRepository) MarkEmailed(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET emailed = true, emailed_at = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, at).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to mark period emailed: %w", err)
	}

	return nil
}

func (r *payrollRepository) ClearEmailed(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET emailed = false, emailed_at = NULL, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to clear period emailed flag: %w", err)
	}

	return nil
}

func (r *payrollRepository) DeletePeriod(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payroll_periods
		WHERE id = $1 AND closed = false
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return r.periodWriteRefused(ctx, id)
		}
		return fmt.Errorf("failed to delete period: %w", err)
	}

	return nil
}

// periodWriteRefused disambiguates a guarded write that matched no rows:
// either the period does not exist or it is closed.
func (r *payrollRepository) periodWriteRefused(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var closed bool
	err := q.QueryRow(ctx, `SELECT closed FROM payroll_periods WHERE id = $1`, id).Scan(&closed)
	if err != nil {
		return payroll.ErrPeriodNotFound
	}
	if closed {
		return payroll.ErrPeriodClosed
	}
	return payroll.ErrPeriodNotFound
}

// ========== LINE ITEMS ==========

func (r *payrollRepository) DeleteLineItems(ctx context.Context, periodID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM line_items WHERE period_id = $1`, periodID)
	if err != nil {
		return fmt.Errorf("failed to delete line items: %w", err)
	}

	return nil
}

func (r *payrollRepository) CreateLineItem(ctx context.Context, item payroll.LineItem) (payroll.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO line_items (period_id, concept_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, period_id, concept_id, amount, created_at
	`

	var li payroll.LineItem
	err := q.QueryRow(ctx, query, item.PeriodID, item.ConceptID, item.Amount).Scan(
		&li.ID, &li.PeriodID, &li.ConceptID, &li.Amount, &li.CreatedAt,
	)
	if err != nil {
		return payroll.LineItem{}, fmt.Errorf("failed to create line item: %w", err)
	}

	return li, nil
}

func (r *payrollRepository) ListLineItems(ctx context.Context, periodID string) ([]payroll.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT li.id, li.period_id, li.concept_id, li.amount, li.created_at, c.name, c.debit
		FROM line_items li
		JOIN concepts c ON c.id = li.concept_id
		WHERE li.period_id = $1
		ORDER BY c.debit, li.created_at, li.id
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list line items: %w", err)
	}
	defer rows.Close()

	var items []payroll.LineItem
	for rows.Next() {
		var li payroll.LineItem
		if err := rows.Scan(
			&li.ID, &li.PeriodID, &li.ConceptID, &li.Amount, &li.CreatedAt, &li.ConceptName, &li.Debit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, li)
	}

	return items, nil
}
