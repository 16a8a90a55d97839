package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	NationalID string
	Email      *string
	Phone      *string
	Position   *string
	HireDate   time.Time
	BaseSalary decimal.Decimal
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Dependent is a child registered under an employee for the statutory
// family bonus. Residency paperwork expires; an expired permit makes the
// dependent ineligible until renewed.
type Dependent struct {
	ID              string
	EmployeeID      string
	FullName        string
	BirthDate       time.Time
	Resident        bool
	ResidencyExpiry *time.Time
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Age returns the dependent's age in whole years at the reference date.
func (d Dependent) Age(ref time.Time) int {
	age := ref.Year() - d.BirthDate.Year()
	if ref.Month() < d.BirthDate.Month() ||
		(ref.Month() == d.BirthDate.Month() && ref.Day() < d.BirthDate.Day()) {
		age--
	}
	return age
}

// IsMinor reports whether the dependent is under 18 at the reference date.
func (d Dependent) IsMinor(ref time.Time) bool {
	return d.Age(ref) < 18
}

// HasValidResidency reports whether the dependent's residency stands at the
// reference date. Non-residents never qualify; a resident with no expiry on
// file is assumed valid.
func (d Dependent) HasValidResidency(ref time.Time) bool {
	if !d.Resident {
		return false
	}
	if d.ResidencyExpiry != nil {
		return !d.ResidencyExpiry.Before(ref)
	}
	return true
}
