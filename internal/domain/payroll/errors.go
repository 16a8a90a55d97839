package payroll

import "errors"

var (
	ErrPeriodNotFound        = errors.New("payroll period not found")
	ErrPeriodAlreadyExists   = errors.New("payroll period already exists for this employee and month")
	ErrPeriodClosed          = errors.New("payroll period is closed")
	ErrPeriodNotClosed       = errors.New("payroll period must be closed first")
	ErrPeriodLocked          = errors.New("payroll period was already emailed; recalculation requires force")
	ErrNoBaseSalary          = errors.New("employee has no base salary configured")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
	ErrConceptNotFound       = errors.New("payroll concept not found")
	ErrBonusCapNotConfigured = errors.New("family bonus income cap is not configured")
	ErrNoRecipientEmail      = errors.New("employee has no email address for receipt delivery")
)
