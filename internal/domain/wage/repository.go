package wage

import (
	"context"
	"time"
)

type WageRepository interface {
	// GetEffective returns the wage record governing ref per EffectiveOn.
	// Returns ErrNoEffectiveWage when no record applies.
	GetEffective(ctx context.Context, ref time.Time) (MinimumWage, error)
	// Create appends a record; when record.Current is true the previous
	// current record is unflagged in the same statement batch.
	Create(ctx context.Context, record MinimumWage) (MinimumWage, error)
	List(ctx context.Context) ([]MinimumWage, error)
}
