package postgresql

import (
	"context"
	"fmt"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/audit"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Record(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_entries (actor, action, entity, entity_id, detail)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, entry.Actor, entry.Action, entry.Entity, entry.EntityID, entry.Detail)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	return nil
}

func (r *auditRepository) List(ctx context.Context, filter audit.Filter) ([]audit.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM audit_entries WHERE 1=1`
	var args []interface{}
	argIdx := 1

	if filter.Actor != nil {
		baseQuery += fmt.Sprintf(" AND actor = $%d", argIdx)
		args = append(args, *filter.Actor)
		argIdx++
	}
	if filter.Action != nil {
		baseQuery += fmt.Sprintf(" AND action = $%d", argIdx)
		args = append(args, *filter.Action)
		argIdx++
	}
	if filter.EntityID != nil {
		baseQuery += fmt.Sprintf(" AND entity_id = $%d", argIdx)
		args = append(args, *filter.EntityID)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT id, actor, action, entity, entity_id, detail, created_at
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Entity, &e.EntityID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, totalCount, nil
}
