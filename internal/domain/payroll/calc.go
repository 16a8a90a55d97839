package payroll

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/employee"
)

// Statutory rates. The family-bonus income cap is configuration, not a
// constant: two ministry circulars put it at 2x and 3x the minimum wage, so
// deployments must pick one (see Rules.BonusCapMultiplier).
var (
	WithholdingRate   = decimal.NewFromFloat(0.09)
	BonusRatePerChild = decimal.NewFromFloat(0.05)
)

// MaxBonusDependents caps how many dependents count toward the family bonus.
const MaxBonusDependents = 4

// Rules bundles the statutory parameters the calculator applies.
type Rules struct {
	WithholdingRate    decimal.Decimal
	BonusRatePerChild  decimal.Decimal
	BonusCapMultiplier decimal.Decimal
	MaxBonusDependents int
}

// DefaultRules returns the statutory rates with the given income cap.
func DefaultRules(bonusCapMultiplier decimal.Decimal) Rules {
	return Rules{
		WithholdingRate:    WithholdingRate,
		BonusRatePerChild:  BonusRatePerChild,
		BonusCapMultiplier: bonusCapMultiplier,
		MaxBonusDependents: MaxBonusDependents,
	}
}

// QualifyingDependents filters to dependents eligible for the family bonus
// at the reference date: active minors, resident, with valid residency.
// Results are ordered by birth date then ID and capped at max, so the
// dependent cap is deterministic regardless of storage order.
func QualifyingDependents(deps []employee.Dependent, ref time.Time, max int) []employee.Dependent {
	var qualifying []employee.Dependent
	for _, d := range deps {
		if d.Active && d.IsMinor(ref) && d.HasValidResidency(ref) {
			qualifying = append(qualifying, d)
		}
	}

	sort.Slice(qualifying, func(i, j int) bool {
		if !qualifying[i].BirthDate.Equal(qualifying[j].BirthDate) {
			return qualifying[i].BirthDate.Before(qualifying[j].BirthDate)
		}
		return qualifying[i].ID < qualifying[j].ID
	})

	if max >= 0 && len(qualifying) > max {
		qualifying = qualifying[:max]
	}
	return qualifying
}

// FamilyBonus computes the statutory family bonus: BonusRatePerChild of the
// minimum wage per qualifying dependent, rounded half-up to 2 decimals.
// Employees earning above BonusCapMultiplier times the minimum wage get
// nothing; the cap boundary itself still qualifies. A non-positive minimum
// wage yields zero — the caller decides whether a missing wage is an error.
func FamilyBonus(baseSalary, minimumWage decimal.Decimal, qualifyingCount int, rules Rules) decimal.Decimal {
	if !minimumWage.IsPositive() || qualifyingCount <= 0 {
		return decimal.Zero
	}
	if baseSalary.GreaterThan(minimumWage.Mul(rules.BonusCapMultiplier)) {
		return decimal.Zero
	}
	bonus := minimumWage.Mul(rules.BonusRatePerChild).Mul(decimal.NewFromInt(int64(qualifyingCount)))
	return bonus.Round(2)
}

// Withholding computes the social-security contribution on the base salary,
// rounded half-up to 2 decimals.
func Withholding(baseSalary decimal.Decimal, rules Rules) decimal.Decimal {
	return baseSalary.Mul(rules.WithholdingRate).Round(2)
}
