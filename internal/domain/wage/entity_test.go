package wage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestEffectiveOn(t *testing.T) {
	records := []MinimumWage{
		{ID: "2021", Amount: decimal.NewFromInt(2289324), EffectiveFrom: date(2021, 7, 1)},
		{ID: "2023", Amount: decimal.NewFromInt(2550307), EffectiveFrom: date(2023, 7, 1)},
		{ID: "2024", Amount: decimal.NewFromInt(2680373), EffectiveFrom: date(2024, 7, 1), Current: true},
	}

	t.Run("picks the latest record on or before ref", func(t *testing.T) {
		got := EffectiveOn(records, date(2024, 1, 1))
		assert.NotNil(t, got)
		assert.Equal(t, "2023", got.ID)
	})

	t.Run("effective date itself counts", func(t *testing.T) {
		got := EffectiveOn(records, date(2024, 7, 1))
		assert.NotNil(t, got)
		assert.Equal(t, "2024", got.ID)
	})

	t.Run("nil before any record applies", func(t *testing.T) {
		got := EffectiveOn(records, date(2020, 1, 1))
		assert.Nil(t, got)
	})

	t.Run("same effective date prefers the current record", func(t *testing.T) {
		tied := []MinimumWage{
			{ID: "old", Amount: decimal.NewFromInt(100), EffectiveFrom: date(2024, 7, 1)},
			{ID: "new", Amount: decimal.NewFromInt(200), EffectiveFrom: date(2024, 7, 1), Current: true},
		}
		got := EffectiveOn(tied, date(2025, 1, 1))
		assert.NotNil(t, got)
		assert.Equal(t, "new", got.ID)
	})

	t.Run("no records yields nil", func(t *testing.T) {
		assert.Nil(t, EffectiveOn(nil, date(2025, 1, 1)))
	})
}
