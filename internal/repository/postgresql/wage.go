package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/wage"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/database"
)

type wageRepository struct {
	db *database.DB
}

func NewWageRepository(db *database.DB) wage.WageRepository {
	return &wageRepository{db: db}
}

func (r *wageRepository) GetEffective(ctx context.Context, ref time.Time) (wage.MinimumWage, error) {
	q := GetQuerier(ctx, r.db)

	// Latest effective_from on or before ref; a record flagged current wins
	// a tie on the date.
	query := `
		SELECT id, amount, effective_from, current, created_at
		FROM minimum_wages
		WHERE effective_from <= $1
		ORDER BY effective_from DESC, current DESC
		LIMIT 1
	`

	var w wage.MinimumWage
	err := q.QueryRow(ctx, query, ref).Scan(
		&w.ID, &w.Amount, &w.EffectiveFrom, &w.Current, &w.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return wage.MinimumWage{}, wage.ErrNoEffectiveWage
		}
		return wage.MinimumWage{}, fmt.Errorf("failed to get effective minimum wage: %w", err)
	}

	return w, nil
}

func (r *wageRepository) Create(ctx context.Context, record wage.MinimumWage) (wage.MinimumWage, error) {
	q := GetQuerier(ctx, r.db)

	if record.Current {
		if _, err := q.Exec(ctx, `UPDATE minimum_wages SET current = false WHERE current = true`); err != nil {
			return wage.MinimumWage{}, fmt.Errorf("failed to unflag current minimum wage: %w", err)
		}
	}

	query := `
		INSERT INTO minimum_wages (amount, effective_from, current)
		VALUES ($1, $2, $3)
		RETURNING id, amount, effective_from, current, created_at
	`

	var w wage.MinimumWage
	err := q.QueryRow(ctx, query, record.Amount, record.EffectiveFrom, record.Current).Scan(
		&w.ID, &w.Amount, &w.EffectiveFrom, &w.Current, &w.CreatedAt,
	)
	if err != nil {
		return wage.MinimumWage{}, fmt.Errorf("failed to create minimum wage record: %w", err)
	}

	return w, nil
}

func (r *wageRepository) List(ctx context.Context) ([]wage.MinimumWage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, amount, effective_from, current, created_at
		FROM minimum_wages
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list minimum wage records: %w", err)
	}
	defer rows.Close()

	var records []wage.MinimumWage
	for rows.Next() {
		var w wage.MinimumWage
		if err := rows.Scan(&w.ID, &w.Amount, &w.EffectiveFrom, &w.Current, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan minimum wage record: %w", err)
		}
		records = append(records, w)
	}

	return records, nil
}
