package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/employee"
)

func testRules() Rules {
	return DefaultRules(decimal.NewFromInt(3))
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func minorDependent(id string, birthDate time.Time) employee.Dependent {
	return employee.Dependent{
		ID:        id,
		FullName:  "Dependent " + id,
		BirthDate: birthDate,
		Resident:  true,
		Active:    true,
	}
}

func TestWithholding(t *testing.T) {
	tests := []struct {
		name       string
		baseSalary decimal.Decimal
		want       string
	}{
		{"statutory example", decimal.NewFromInt(5000000), "450000.00"},
		{"fractional result rounds half up", decimal.RequireFromString("2345678.55"), "211111.07"},
		{"small salary", decimal.NewFromInt(100), "9.00"},
		{"zero salary", decimal.Zero, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Withholding(tt.baseSalary, testRules())
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestFamilyBonus(t *testing.T) {
	wage := decimal.NewFromInt(2680000)

	t.Run("two qualifying dependents", func(t *testing.T) {
		bonus := FamilyBonus(decimal.NewFromInt(4500000), wage, 2, testRules())
		assert.Equal(t, "268000.00", bonus.StringFixed(2))
	})

	t.Run("salary at exactly the cap still qualifies", func(t *testing.T) {
		cap := wage.Mul(decimal.NewFromInt(3))
		bonus := FamilyBonus(cap, wage, 1, testRules())
		assert.Equal(t, "134000.00", bonus.StringFixed(2))
	})

	t.Run("salary one unit above the cap gets nothing", func(t *testing.T) {
		overCap := wage.Mul(decimal.NewFromInt(3)).Add(decimal.NewFromInt(1))
		bonus := FamilyBonus(overCap, wage, 1, testRules())
		assert.True(t, bonus.IsZero())
	})

	t.Run("zero dependents yields zero", func(t *testing.T) {
		bonus := FamilyBonus(decimal.NewFromInt(2500000), wage, 0, testRules())
		assert.True(t, bonus.IsZero())
	})

	t.Run("non-positive minimum wage yields zero", func(t *testing.T) {
		bonus := FamilyBonus(decimal.NewFromInt(2500000), decimal.Zero, 2, testRules())
		assert.True(t, bonus.IsZero())
	})

	t.Run("two times cap multiplier is stricter", func(t *testing.T) {
		rules := DefaultRules(decimal.NewFromInt(2))
		salary := wage.Mul(decimal.NewFromInt(2)).Add(decimal.NewFromInt(1))
		bonus := FamilyBonus(salary, wage, 1, rules)
		assert.True(t, bonus.IsZero())
	})
}

func TestQualifyingDependents(t *testing.T) {
	ref := date(2025, 6, 1)

	t.Run("filters non-qualifying dependents", func(t *testing.T) {
		adult := minorDependent("a", date(2000, 1, 1))
		inactive := minorDependent("b", date(2015, 1, 1))
		inactive.Active = false
		nonResident := minorDependent("c", date(2015, 1, 1))
		nonResident.Resident = false
		expired := minorDependent("d", date(2015, 1, 1))
		expiredAt := date(2025, 1, 1)
		expired.ResidencyExpiry = &expiredAt
		valid := minorDependent("e", date(2015, 1, 1))

		got := QualifyingDependents([]employee.Dependent{adult, inactive, nonResident, expired, valid}, ref, MaxBonusDependents)
		assert.Len(t, got, 1)
		assert.Equal(t, "e", got[0].ID)
	})

	t.Run("caps at max ordered by birth date", func(t *testing.T) {
		deps := []employee.Dependent{
			minorDependent("f", date(2019, 5, 1)),
			minorDependent("a", date(2010, 1, 1)),
			minorDependent("e", date(2018, 4, 1)),
			minorDependent("b", date(2012, 2, 1)),
			minorDependent("d", date(2016, 3, 1)),
			minorDependent("c", date(2014, 2, 1)),
		}

		got := QualifyingDependents(deps, ref, MaxBonusDependents)
		assert.Len(t, got, 4)
		ids := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
	})

	t.Run("ties on birth date break by ID", func(t *testing.T) {
		deps := []employee.Dependent{
			minorDependent("z", date(2015, 6, 1)),
			minorDependent("a", date(2015, 6, 1)),
		}

		got := QualifyingDependents(deps, ref, MaxBonusDependents)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "z", got[1].ID)
	})

	t.Run("dependent turns 18 on the reference date", func(t *testing.T) {
		justTurned := minorDependent("x", date(2007, 6, 1))
		got := QualifyingDependents([]employee.Dependent{justTurned}, ref, MaxBonusDependents)
		assert.Empty(t, got)
	})
}

func TestSettlementExample(t *testing.T) {
	// Full worked example: base 4,500,000, minimum wage 2,680,000, two
	// qualifying dependents.
	rules := testRules()
	baseSalary := decimal.NewFromInt(4500000)
	wage := decimal.NewFromInt(2680000)
	ref := date(2025, 3, 1)

	deps := []employee.Dependent{
		minorDependent("1", date(2014, 7, 10)),
		minorDependent("2", date(2017, 2, 3)),
	}

	qualifying := QualifyingDependents(deps, ref, rules.MaxBonusDependents)
	bonus := FamilyBonus(baseSalary, wage, len(qualifying), rules)
	withholding := Withholding(baseSalary, rules)

	credits := baseSalary.Add(bonus)
	debits := withholding
	net := credits.Sub(debits)

	assert.Equal(t, "268000.00", bonus.StringFixed(2))
	assert.Equal(t, "405000.00", withholding.StringFixed(2))
	assert.Equal(t, "4768000.00", credits.StringFixed(2))
	assert.Equal(t, "405000.00", debits.StringFixed(2))
	assert.Equal(t, "4363000.00", net.StringFixed(2))
}
