package fixtures

import (
	"context"
	"fmt"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/deduction"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/payroll"
)

// ==========================================
// DEFAULT CONCEPT CATALOG
// ==========================================

// GetDefaultConcepts returns the fixed settlement concept catalog. The
// calculator only ever references these; it never invents concepts mid-run.
func GetDefaultConcepts() []payroll.Concept {
	concepts := []payroll.Concept{
		{
			Name:               payroll.ConceptBaseSalary,
			Debit:              false,
			Recurring:          true,
			InWithholdingBase:  true,
			InYearEndBonusBase: true,
		},
		{
			Name:               payroll.ConceptFamilyBonus,
			Debit:              false,
			Recurring:          true,
			InWithholdingBase:  false,
			InYearEndBonusBase: false,
		},
		{
			Name:               payroll.ConceptWithholding,
			Debit:              true,
			Recurring:          true,
			InWithholdingBase:  false,
			InYearEndBonusBase: false,
		},
	}

	// One debit concept per deduction type, e.g. "Deduction: Loan".
	for _, t := range deduction.AllTypes() {
		concepts = append(concepts, payroll.Concept{
			Name:               payroll.DeductionConceptName(t.Label()),
			Debit:              true,
			Recurring:          false,
			InWithholdingBase:  false,
			InYearEndBonusBase: false,
		})
	}

	return concepts
}

// SeedConcepts upserts the catalog and returns it resolved to IDs. Called
// once at startup before any calculation runs.
func SeedConcepts(ctx context.Context, repo payroll.PayrollRepository) (payroll.ConceptSet, error) {
	set := payroll.ConceptSet{
		Deductions: make(map[string]payroll.Concept),
	}

	byName := make(map[string]payroll.Concept)
	for _, c := range GetDefaultConcepts() {
		seeded, err := repo.EnsureConcept(ctx, c)
		if err != nil {
			return payroll.ConceptSet{}, fmt.Errorf("failed to seed concept %q: %w", c.Name, err)
		}
		byName[seeded.Name] = seeded
	}

	set.BaseSalary = byName[payroll.ConceptBaseSalary]
	set.FamilyBonus = byName[payroll.ConceptFamilyBonus]
	set.Withholding = byName[payroll.ConceptWithholding]
	for _, t := range deduction.AllTypes() {
		set.Deductions[t.Label()] = byName[payroll.DeductionConceptName(t.Label())]
	}

	return set, nil
}
