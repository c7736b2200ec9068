package wallets

import (
	"context"
)

// WalletService keeps user and agency balances.
type WalletService interface {
	// GetOrCreate returns the owner's wallet, opening an empty one on first use.
	GetOrCreate(ctx context.Context, ownerID, ownerType string) (*Wallet, error)
	GetByID(ctx context.Context, walletID string) (*Wallet, error)
	Credit(ctx context.Context, walletID string, amount int64, reference, description string) (*Transaction, error)
	// Debit fails with apperr.ErrInsufficientFunds when the balance does not cover amount.
	Debit(ctx context.Context, walletID string, amount int64, reference, description string) (*Transaction, error)
	Transactions(ctx context.Context, walletID string, query *TransactionQuery) ([]*Transaction, error)
}

// WalletRepository defines the interface for Wallet-related operations
type WalletRepository interface {
	Create(ctx context.Context, wallet *Wallet) error
	GetByID(ctx context.Context, walletID string) (*Wallet, error)
	GetByOwner(ctx context.Context, ownerID, ownerType string) (*Wallet, error)
	// AdjustBalance applies delta atomically and returns the new balance.
	// It fails with apperr.ErrInsufficientFunds instead of going negative.
	AdjustBalance(ctx context.Context, walletID string, delta int64) (int64, error)
	CreateTransaction(ctx context.Context, transaction *Transaction) error
	ListTransactions(ctx context.Context, walletID string, query *TransactionQuery) ([]*Transaction, error)
}
