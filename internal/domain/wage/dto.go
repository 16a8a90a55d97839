package wage

import (
	"github.com/shopspring/decimal"

	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/validator"
)

type CreateWageRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	EffectiveFrom string          `json:"effective_from"`
	Current       bool            `json:"current"`
}

func (r CreateWageRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount must be positive"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "Effective date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WageResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveFrom string          `json:"effective_from"`
	Current       bool            `json:"current"`
}
