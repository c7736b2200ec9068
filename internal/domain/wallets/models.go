package wallets

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/money"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Owner types
const (
	OwnerUser   = "user"
	OwnerAgency = "agency"
)

// Transaction types
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// Wallet entity; Balance is in minor units and never negative.
type Wallet struct {
	ID        string    `validate:"required,uuid4"`
	OwnerID   string    `validate:"required,uuid4"`
	OwnerType string    `validate:"required,oneof=user agency"`
	Balance   int64     `validate:"min=0"`
	Currency  string    `validate:"required,currency"`
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating Wallet struct
func (w *Wallet) Validate() error {
	return validators.Struct(w)
}

// FormattedBalance renders the balance for display
func (w *Wallet) FormattedBalance() string {
	return money.Format(w.Balance, w.Currency)
}

// Transaction is one ledger line of a wallet.
type Transaction struct {
	ID           string    `validate:"required,uuid4"`
	WalletID     string    `validate:"required,uuid4"`
	Type         string    `validate:"required,oneof=credit debit"`
	Amount       int64     `validate:"required,gt=0"`
	BalanceAfter int64     `validate:"min=0"`
	Reference    string    `validate:"max=120"`
	Description  string    `validate:"max=255"`
	CreatedAt    time.Time `validate:"required"`
}

// Validate for validating Transaction struct
func (t *Transaction) Validate() error {
	return validators.Struct(t)
}

// Delta is the signed balance change of the transaction.
func (t *Transaction) Delta() int64 {
	if t.Type == TypeDebit {
		return -t.Amount
	}
	return t.Amount
}

// TransactionQuery pages through a wallet's ledger, newest first
type TransactionQuery struct {
	Type   string `validate:"omitempty,oneof=credit debit"`
	Limit  int    `validate:"omitempty,gt=0,max=200"`
	Offset int    `validate:"omitempty,gte=0"`
}

// NewTransactionQuery creates a TransactionQuery with default paging
func NewTransactionQuery() *TransactionQuery {
	return &TransactionQuery{Limit: 50}
}

// Validate for validating TransactionQuery struct
func (q *TransactionQuery) Validate() error {
	return validators.Struct(q)
}
