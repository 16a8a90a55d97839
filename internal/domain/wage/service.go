package wage

import (
	"context"
	"time"
)

type WageService interface {
	Create(ctx context.Context, req CreateWageRequest) (WageResponse, error)
	List(ctx context.Context) ([]WageResponse, error)
	// GetEffective resolves the wage governing the reference date.
	GetEffective(ctx context.Context, ref time.Time) (WageResponse, error)
}
