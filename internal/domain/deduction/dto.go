package deduction

import (
	"github.com/shopspring/decimal"

	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/validator"
)

type CreateDeductionRequest struct {
	EmployeeID  string          `json:"-"`
	Type        string          `json:"type"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	Recurring   bool            `json:"recurring"`
}

func (r CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Type must be one of: loan, garnishment, absence, union, other"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount must be positive"})
	}
	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		end, endOK := validator.IsValidDate(*r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
		} else if ok && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date cannot precede start date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeductionRequest struct {
	ID          string           `json:"-"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	EndDate     *string          `json:"end_date"`
	Active      *bool            `json:"active"`
}

func (r UpdateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount must be positive"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Type        string          `json:"type"`
	TypeLabel   string          `json:"type_label"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	Recurring   bool            `json:"recurring"`
	Active      bool            `json:"active"`
}
