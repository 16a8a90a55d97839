package audit

import "context"

type AuditService interface {
	List(ctx context.Context, filter Filter) (ListEntryResponse, error)
}
