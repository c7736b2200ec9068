package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/txn"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/money"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"

	"github.com/google/uuid"
)

// walletService implements the WalletService interface
type walletService struct {
	walletRepo      wallets.WalletRepository
	transactor      txn.Transactor
	defaultCurrency string
	logger          logger.Logger
	now             func() time.Time
}

// NewWalletService creates a new walletService instance. New wallets are opened in defaultCurrency.
func NewWalletService(walletRepo wallets.WalletRepository, transactor txn.Transactor, defaultCurrency string, logger logger.Logger) (wallets.WalletService, error) {
	if err := validators.Var("Currency", defaultCurrency, "required,currency"); err != nil {
		return nil, err
	}
	return &walletService{
		walletRepo:      walletRepo,
		transactor:      transactor,
		defaultCurrency: defaultCurrency,
		logger:          logger,
		now:             time.Now,
	}, nil
}

// GetOrCreate returns the owner's wallet, opening an empty one on first use
func (s *walletService) GetOrCreate(ctx context.Context, ownerID, ownerType string) (*wallets.Wallet, error) {
	wallet, err := s.walletRepo.GetByOwner(ctx, ownerID, ownerType)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("%w", err)
	}

	now := s.now().UTC()
	wallet = &wallets.Wallet{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		OwnerType: ownerType,
		Currency:  s.defaultCurrency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		// another request opened it first
		if errors.Is(err, apperr.ErrConflict) {
			return s.walletRepo.GetByOwner(ctx, ownerID, ownerType)
		}
		return nil, fmt.Errorf("%w", err)
	}
	return wallet, nil
}

// GetByID returns one wallet
func (s *walletService) GetByID(ctx context.Context, walletID string) (*wallets.Wallet, error) {
	return s.walletRepo.GetByID(ctx, walletID)
}

// Credit adds amount to the wallet and appends a ledger line
func (s *walletService) Credit(ctx context.Context, walletID string, amount int64, reference, description string) (*wallets.Transaction, error) {
	return s.post(ctx, walletID, wallets.TypeCredit, amount, reference, description)
}

// Debit takes amount from the wallet and appends a ledger line
func (s *walletService) Debit(ctx context.Context, walletID string, amount int64, reference, description string) (*wallets.Transaction, error) {
	return s.post(ctx, walletID, wallets.TypeDebit, amount, reference, description)
}

func (s *walletService) post(ctx context.Context, walletID, kind string, amount int64, reference, description string) (*wallets.Transaction, error) {
	if err := money.MustPositive(amount); err != nil {
		return nil, apperr.NewValidationError("Amount", "gt")
	}

	transaction := &wallets.Transaction{
		ID:          uuid.NewString(),
		WalletID:    walletID,
		Type:        kind,
		Amount:      amount,
		Reference:   reference,
		Description: description,
		CreatedAt:   s.now().UTC(),
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		balance, err := s.walletRepo.AdjustBalance(ctx, walletID, transaction.Delta())
		if err != nil {
			return err
		}
		transaction.BalanceAfter = balance
		return s.walletRepo.CreateTransaction(ctx, transaction)
	})
	if err != nil {
		return nil, fmt.Errorf("%s wallet %s: %w", kind, walletID, err)
	}

	s.logger.Info("Posted ", kind, " of ", amount, " to wallet ", walletID)
	return transaction, nil
}

// Transactions pages through the wallet's ledger, newest first
func (s *walletService) Transactions(ctx context.Context, walletID string, query *wallets.TransactionQuery) ([]*wallets.Transaction, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.walletRepo.GetByID(ctx, walletID); err != nil {
		return nil, err
	}
	return s.walletRepo.ListTransactions(ctx, walletID, query)
}
