package response

import (
	"errors"
	"net/http"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/deduction"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/employee"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/payroll"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/wage"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDependentNotFound):
		NotFound(w, "Dependent not found")
	case errors.Is(err, employee.ErrNationalIDExists):
		Conflict(w, "National ID already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Deduction domain errors
	case errors.Is(err, deduction.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")

	// Minimum wage errors
	case errors.Is(err, wage.ErrNoEffectiveWage):
		BadRequest(w, "No minimum wage is configured for the period", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPeriodAlreadyExists):
		Conflict(w, "Payroll period already exists for this employee and month")
	case errors.Is(err, payroll.ErrPeriodClosed):
		Conflict(w, "Payroll period is closed")
	case errors.Is(err, payroll.ErrPeriodLocked):
		Conflict(w, "Receipt was already emailed; use force to recalculate")
	case errors.Is(err, payroll.ErrPeriodNotClosed):
		Conflict(w, "Payroll period must be closed before sending the receipt")
	case errors.Is(err, payroll.ErrNoBaseSalary):
		BadRequest(w, "Employee has no base salary configured", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrNoRecipientEmail):
		BadRequest(w, "Employee has no email address for receipt delivery", nil)
	case errors.Is(err, payroll.ErrConceptNotFound),
		errors.Is(err, payroll.ErrBonusCapNotConfigured):
		InternalServerError(w, "Payroll configuration is incomplete")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
