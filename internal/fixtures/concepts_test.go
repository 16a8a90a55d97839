package fixtures

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/deduction"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/payroll"
)

// conceptStore stubs just the catalog methods; embedding the interface keeps
// the rest unimplemented.
type conceptStore struct {
	payroll.PayrollRepository
	byName map[string]payroll.Concept
	nextID int
}

func (s *conceptStore) EnsureConcept(_ context.Context, c payroll.Concept) (payroll.Concept, error) {
	if existing, ok := s.byName[c.Name]; ok {
		c.ID = existing.ID
	} else {
		s.nextID++
		c.ID = fmt.Sprintf("concept-%d", s.nextID)
	}
	s.byName[c.Name] = c
	return c, nil
}

func TestGetDefaultConcepts(t *testing.T) {
	concepts := GetDefaultConcepts()

	// 3 fixed concepts plus one per deduction type.
	assert.Len(t, concepts, 3+len(deduction.AllTypes()))

	byName := make(map[string]payroll.Concept)
	for _, c := range concepts {
		byName[c.Name] = c
	}

	assert.False(t, byName[payroll.ConceptBaseSalary].Debit)
	assert.True(t, byName[payroll.ConceptBaseSalary].InWithholdingBase)
	assert.False(t, byName[payroll.ConceptFamilyBonus].Debit)
	assert.False(t, byName[payroll.ConceptFamilyBonus].InWithholdingBase)
	assert.True(t, byName[payroll.ConceptWithholding].Debit)
	assert.True(t, byName["Deduction: Loan"].Debit)
	assert.True(t, byName["Deduction: Union Withholding"].Debit)
}

func TestSeedConcepts(t *testing.T) {
	store := &conceptStore{byName: make(map[string]payroll.Concept)}

	set, err := SeedConcepts(context.Background(), store)
	require.NoError(t, err)

	assert.NotEmpty(t, set.BaseSalary.ID)
	assert.NotEmpty(t, set.FamilyBonus.ID)
	assert.NotEmpty(t, set.Withholding.ID)
	for _, dt := range deduction.AllTypes() {
		assert.NotEmpty(t, set.Deductions[dt.Label()].ID, dt.Label())
	}

	// Seeding again converges on the same IDs.
	again, err := SeedConcepts(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, set.BaseSalary.ID, again.BaseSalary.ID)
	assert.Equal(t, set.Deductions["Loan"].ID, again.Deductions["Loan"].ID)
}
