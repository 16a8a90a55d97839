package audit

import (
	"context"
	"time"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/audit"
)

type AuditServiceImpl struct {
	auditRepo audit.AuditRepository
}

func NewAuditService(auditRepo audit.AuditRepository) audit.AuditService {
	return &AuditServiceImpl{auditRepo: auditRepo}
}

func (s *AuditServiceImpl) List(ctx context.Context, filter audit.Filter) (audit.ListEntryResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	entries, totalCount, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return audit.ListEntryResponse{}, err
	}

	data := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, audit.EntryResponse{
			ID:        e.ID,
			Actor:     e.Actor,
			Action:    string(e.Action),
			Entity:    e.Entity,
			EntityID:  e.EntityID,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}

	return audit.ListEntryResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}
