package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	NationalID string          `json:"national_id"`
	Email      *string         `json:"email"`
	Phone      *string         `json:"phone"`
	Position   *string         `json:"position"`
	HireDate   string          `json:"hire_date"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "First name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "Last name is required"})
	}
	if !validator.IsValidNationalID(r.NationalID) {
		errs = append(errs, validator.ValidationError{Field: "national_id", Message: "National ID must be 6-20 digits"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email address"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "Hire date must be YYYY-MM-DD"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "Base salary cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string           `json:"-"`
	FirstName  *string          `json:"first_name"`
	LastName   *string          `json:"last_name"`
	Email      *string          `json:"email"`
	Phone      *string          `json:"phone"`
	Position   *string          `json:"position"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
	Active     *bool            `json:"active"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email address"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "Base salary cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	NationalID string          `json:"national_id"`
	Email      *string         `json:"email"`
	Phone      *string         `json:"phone"`
	Position   *string         `json:"position"`
	HireDate   string          `json:"hire_date"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Active     bool            `json:"active"`
}

type CreateDependentRequest struct {
	EmployeeID      string  `json:"-"`
	FullName        string  `json:"full_name"`
	BirthDate       string  `json:"birth_date"`
	Resident        bool    `json:"resident"`
	ResidencyExpiry *string `json:"residency_expiry"`
}

func (r CreateDependentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "Full name is required"})
	}
	birth, ok := validator.IsValidDate(r.BirthDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "birth_date", Message: "Birth date must be YYYY-MM-DD"})
	} else if birth.After(time.Now()) {
		errs = append(errs, validator.ValidationError{Field: "birth_date", Message: "Birth date cannot be in the future"})
	}
	if r.ResidencyExpiry != nil {
		if _, ok := validator.IsValidDate(*r.ResidencyExpiry); !ok {
			errs = append(errs, validator.ValidationError{Field: "residency_expiry", Message: "Residency expiry must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDependentRequest struct {
	ID              string  `json:"-"`
	FullName        *string `json:"full_name"`
	Resident        *bool   `json:"resident"`
	ResidencyExpiry *string `json:"residency_expiry"`
	Active          *bool   `json:"active"`
}

func (r UpdateDependentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "Full name cannot be empty"})
	}
	if r.ResidencyExpiry != nil {
		if _, ok := validator.IsValidDate(*r.ResidencyExpiry); !ok {
			errs = append(errs, validator.ValidationError{Field: "residency_expiry", Message: "Residency expiry must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DependentResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	FullName        string  `json:"full_name"`
	BirthDate       string  `json:"birth_date"`
	Age             int     `json:"age"`
	Minor           bool    `json:"minor"`
	Resident        bool    `json:"resident"`
	ResidencyExpiry *string `json:"residency_expiry"`
	ValidResidency  bool    `json:"valid_residency"`
	Active          bool    `json:"active"`
}

type EmployeeFilter struct {
	ActiveOnly bool
	Search     string
	Page       int
	Limit      int
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
