package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type enum
type Type string

const (
	TypeLoan        Type = "loan"
	TypeGarnishment Type = "garnishment"
	TypeAbsence     Type = "absence"
	TypeUnion       Type = "union"
	TypeOther       Type = "other"
)

var typeLabels = map[Type]string{
	TypeLoan:        "Loan",
	TypeGarnishment: "Garnishment",
	TypeAbsence:     "Absence",
	TypeUnion:       "Union Withholding",
	TypeOther:       "Other",
}

func (t Type) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

// Label returns the human-readable name used for receipt line items.
func (t Type) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return typeLabels[TypeOther]
}

// AllTypes lists every deduction type, in catalog order.
func AllTypes() []Type {
	return []Type{TypeLoan, TypeGarnishment, TypeAbsence, TypeUnion, TypeOther}
}

// Deduction is an ad-hoc debit against an employee's settlement: a loan
// installment, a court garnishment, an unpaid absence, and so on. A
// recurring deduction fires every month of its validity window; a one-time
// deduction fires only in the month of its start date.
type Deduction struct {
	ID          string
	EmployeeID  string
	Type        Type
	Description *string
	Amount      decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
	Recurring   bool
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AppliesTo reports whether the deduction belongs on the settlement for the
// given month/year.
//
// The one-time rule requires the start date to fall inside the target month,
// so a one-time deduction dated in a past month never re-applies. That is
// asymmetric with the recurring rule's open-ended window and is kept on
// purpose: one-time charges fire in their own month only.
func (d Deduction) AppliesTo(month, year int) bool {
	if !d.Active {
		return false
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0) // exclusive; handles Dec->Jan

	if !d.Recurring {
		return !d.StartDate.Before(periodStart) &&
			(d.EndDate == nil || d.EndDate.Before(periodEnd)) &&
			d.StartDate.Before(periodEnd)
	}

	if d.StartDate.Before(periodEnd) {
		return d.EndDate == nil || !d.EndDate.Before(periodStart)
	}
	return false
}
