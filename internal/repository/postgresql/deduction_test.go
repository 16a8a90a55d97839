package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/deduction"
)

func TestUpdateDeductionMalformedEndDate(t *testing.T) {
	repo := NewDeductionRepository(nil)
	badDate := "not-a-date"

	err := repo.Update(txContext(stubTx{}), deduction.UpdateDeductionRequest{
		ID:      "ded-1",
		EndDate: &badDate,
	})

	assert.ErrorContains(t, err, "end date")
}
