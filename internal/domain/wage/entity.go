package wage

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinimumWage is one entry in the historical minimum-wage table. Records are
// append-only: a new statutory amount is inserted with its effective date and
// flagged current, and the superseded record is left untouched.
type MinimumWage struct {
	ID            string
	Amount        decimal.Decimal
	EffectiveFrom time.Time
	Current       bool
	CreatedAt     time.Time
}

// EffectiveOn picks the record that governs the reference date: the latest
// effective_from on or before ref, preferring a record flagged current when
// two share the date. Returns nil when no record applies — callers must treat
// that as "cannot compute", never as a zero wage.
func EffectiveOn(records []MinimumWage, ref time.Time) *MinimumWage {
	var best *MinimumWage
	for i := range records {
		r := &records[i]
		if r.EffectiveFrom.After(ref) {
			continue
		}
		if best == nil ||
			r.EffectiveFrom.After(best.EffectiveFrom) ||
			(r.EffectiveFrom.Equal(best.EffectiveFrom) && r.Current && !best.Current) {
			best = r
		}
	}
	return best
}
