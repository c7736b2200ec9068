//go:build unit
// +build unit

package wallets

import (
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWallet_Validate(t *testing.T) {
	w := &Wallet{
		ID:        uuid.NewString(),
		OwnerID:   uuid.NewString(),
		OwnerType: OwnerAgency,
		Balance:   123456,
		Currency:  "USD",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, w.Validate())
	assert.Equal(t, "USD 1,234.56", w.FormattedBalance())

	w.Balance = -1
	assert.ErrorIs(t, w.Validate(), apperr.ErrValidation)

	w.Balance = 0
	w.OwnerType = "bank"
	assert.ErrorIs(t, w.Validate(), apperr.ErrValidation)
}

func TestTransaction_Delta(t *testing.T) {
	credit := &Transaction{Type: TypeCredit, Amount: 500}
	debit := &Transaction{Type: TypeDebit, Amount: 500}

	assert.Equal(t, int64(500), credit.Delta())
	assert.Equal(t, int64(-500), debit.Delta())
}

func TestTransactionQuery_Validate(t *testing.T) {
	assert.NoError(t, NewTransactionQuery().Validate())

	q := NewTransactionQuery()
	q.Limit = 1000
	assert.ErrorIs(t, q.Validate(), apperr.ErrValidation)
}
