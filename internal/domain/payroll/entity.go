package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Concept is a named settlement category. The catalog is fixed and seeded at
// startup; line items reference concepts by ID rather than creating them on
// the fly during a calculation.
type Concept struct {
	ID                 string
	Name               string
	Debit              bool
	Recurring          bool
	InWithholdingBase  bool
	InYearEndBonusBase bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Catalog concept names.
const (
	ConceptBaseSalary  = "Base Salary"
	ConceptFamilyBonus = "Family Bonus"
	ConceptWithholding = "Social-Security Withholding"

	deductionConceptPrefix = "Deduction: "
)

// DeductionConceptName returns the catalog name for a deduction-type line
// item, e.g. "Deduction: Loan".
func DeductionConceptName(typeLabel string) string {
	return deductionConceptPrefix + typeLabel
}

// ConceptSet holds the catalog resolved to IDs at startup.
type ConceptSet struct {
	BaseSalary  Concept
	FamilyBonus Concept
	Withholding Concept
	// Deductions maps the deduction type label to its concept.
	Deductions map[string]Concept
}

// Period is one employee's settlement for one calendar month. Once closed it
// is immutable; once emailed it can only be recalculated with force.
type Period struct {
	ID           string
	EmployeeID   string
	Month        int
	Year         int
	BaseSalary   decimal.Decimal
	TotalCredits decimal.Decimal
	TotalDebits  decimal.Decimal
	NetPay       decimal.Decimal
	Closed       bool
	Emailed      bool
	EmailedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
}

// ReferenceDate is the first day of the period's month, the date statutory
// lookups are anchored to.
func (p Period) ReferenceDate() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// LineItem is one credit or debit entry within a period. Line items are
// regenerated wholesale on every recalculation, never patched.
type LineItem struct {
	ID        string
	PeriodID  string
	ConceptID string
	Amount    decimal.Decimal
	CreatedAt time.Time

	// Joined fields
	ConceptName *string
	Debit       *bool
}
