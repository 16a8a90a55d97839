package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/employee"
)

// stubTx satisfies pgx.Tx for exercising repository error paths without a
// live database. Only the methods a test routes through are implemented;
// anything else panics via the embedded nil interface.
type stubTx struct {
	pgx.Tx
	queryRow func(sql string, args ...interface{}) pgx.Row
}

func (s stubTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return s.queryRow(sql, args...)
}

type errRow struct{ err error }

func (r errRow) Scan(dest ...interface{}) error { return r.err }

type boolRow struct{ val bool }

func (r boolRow) Scan(dest ...interface{}) error {
	*dest[0].(*bool) = r.val
	return nil
}

func txContext(tx pgx.Tx) context.Context {
	return context.WithValue(context.Background(), "tx", tx)
}

func TestCreateDependentExistenceCheckFailure(t *testing.T) {
	repo := NewEmployeeRepository(nil)
	dbErr := errors.New("connection refused")
	ctx := txContext(stubTx{queryRow: func(string, ...interface{}) pgx.Row {
		return errRow{err: dbErr}
	}})

	_, err := repo.CreateDependent(ctx, employee.Dependent{EmployeeID: "emp-1"})

	// An infrastructure failure must surface as such, not masquerade as a
	// missing employee.
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateDependentUnknownEmployee(t *testing.T) {
	repo := NewEmployeeRepository(nil)
	ctx := txContext(stubTx{queryRow: func(string, ...interface{}) pgx.Row {
		return boolRow{val: false}
	}})

	_, err := repo.CreateDependent(ctx, employee.Dependent{EmployeeID: "missing"})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateDependentMalformedResidencyExpiry(t *testing.T) {
	repo := NewEmployeeRepository(nil)
	badDate := "31-12-2025"

	err := repo.UpdateDependent(txContext(stubTx{}), employee.UpdateDependentRequest{
		ID:              "dep-1",
		ResidencyExpiry: &badDate,
	})

	assert.ErrorContains(t, err, "residency expiry")
}
