package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "Year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecalculateMonthRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r RecalculateMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "Year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Totals is the calculator's result contract: credits minus debits is net.
type Totals struct {
	TotalCredits decimal.Decimal `json:"total_credits"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	NetPay       decimal.Decimal `json:"net_pay"`
}

type LineItemResponse struct {
	ID          string          `json:"id"`
	ConceptName string          `json:"concept_name"`
	Debit       bool            `json:"debit"`
	Amount      decimal.Decimal `json:"amount"`
}

type PeriodResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	NetPay       decimal.Decimal `json:"net_pay"`
	Closed       bool            `json:"closed"`
	Emailed      bool            `json:"emailed"`
	EmailedAt    *string         `json:"emailed_at"`
}

// StatementResponse is a period together with its itemized lines.
type StatementResponse struct {
	Period PeriodResponse     `json:"period"`
	Items  []LineItemResponse `json:"items"`
}

type PeriodFilter struct {
	EmployeeID *string
	Month      *int
	Year       *int
	Closed     *bool
	Page       int
	Limit      int
}

type ListPeriodResponse struct {
	Data       []PeriodResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

// BatchResult reports one period's outcome inside a month run.
type BatchResult struct {
	PeriodID   string  `json:"period_id"`
	EmployeeID string  `json:"employee_id"`
	Error      *string `json:"error,omitempty"`
	Totals     *Totals `json:"totals,omitempty"`
}

type BatchRecalculationResponse struct {
	Month        int           `json:"month"`
	Year         int           `json:"year"`
	Recalculated int           `json:"recalculated"`
	Failed       int           `json:"failed"`
	Results      []BatchResult `json:"results"`
}

type ConceptResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Debit              bool   `json:"debit"`
	Recurring          bool   `json:"recurring"`
	InWithholdingBase  bool   `json:"in_withholding_base"`
	InYearEndBonusBase bool   `json:"in_year_end_bonus_base"`
}
