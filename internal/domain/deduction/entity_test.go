package deduction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestAppliesToRecurring(t *testing.T) {
	openEnded := Deduction{
		Type:      TypeLoan,
		Amount:    decimal.NewFromInt(100000),
		StartDate: date(2025, 1, 1),
		Recurring: true,
		Active:    true,
	}

	assert.True(t, openEnded.AppliesTo(1, 2025), "applies in its start month")
	assert.True(t, openEnded.AppliesTo(6, 2025), "applies in later months")
	assert.True(t, openEnded.AppliesTo(1, 2026), "open-ended recurring never expires")
	assert.False(t, openEnded.AppliesTo(12, 2024), "never applies before its start")

	end := date(2025, 3, 15)
	bounded := openEnded
	bounded.EndDate = &end

	assert.True(t, bounded.AppliesTo(3, 2025), "applies in the end month")
	assert.False(t, bounded.AppliesTo(4, 2025), "stops after the end month")

	midMonthStart := Deduction{
		Type:      TypeUnion,
		Amount:    decimal.NewFromInt(50000),
		StartDate: date(2025, 2, 20),
		Recurring: true,
		Active:    true,
	}
	assert.True(t, midMonthStart.AppliesTo(2, 2025), "mid-month start counts for that month")
}

func TestAppliesToOneTime(t *testing.T) {
	oneTime := Deduction{
		Type:      TypeAbsence,
		Amount:    decimal.NewFromInt(75000),
		StartDate: date(2025, 3, 10),
		Recurring: false,
		Active:    true,
	}

	assert.True(t, oneTime.AppliesTo(3, 2025), "fires in its own month")
	assert.False(t, oneTime.AppliesTo(2, 2025), "never fires earlier")
	assert.False(t, oneTime.AppliesTo(4, 2025), "never fires later")

	// December start must not leak into January via month arithmetic.
	december := oneTime
	december.StartDate = date(2024, 12, 31)
	assert.True(t, december.AppliesTo(12, 2024))
	assert.False(t, december.AppliesTo(1, 2025))
}

func TestAppliesToInactive(t *testing.T) {
	inactive := Deduction{
		Type:      TypeLoan,
		Amount:    decimal.NewFromInt(100000),
		StartDate: date(2025, 1, 1),
		Recurring: true,
		Active:    false,
	}

	assert.False(t, inactive.AppliesTo(1, 2025))
	assert.False(t, inactive.AppliesTo(6, 2025))
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Loan", TypeLoan.Label())
	assert.Equal(t, "Union Withholding", TypeUnion.Label())
	assert.Equal(t, "Other", Type("bogus").Label())
	assert.False(t, Type("bogus").Valid())
	assert.Len(t, AllTypes(), 5)
}
