package models

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"
)

// WalletModel is the GORM database model for wallets
type WalletModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	OwnerID   string `gorm:"not null;uniqueIndex:idx_wallet_owner;type:varchar(36)"`
	OwnerType string `gorm:"not null;uniqueIndex:idx_wallet_owner;type:varchar(20)"`
	Balance   int64  `gorm:"not null;default:0;check:balance >= 0"`
	Currency  string `gorm:"not null;type:varchar(3)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (WalletModel) TableName() string {
	return "wallets"
}

// ToDomain converts GORM model to domain entity
func (m *WalletModel) ToDomain() *wallets.Wallet {
	return &wallets.Wallet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		OwnerType: m.OwnerType,
		Balance:   m.Balance,
		Currency:  m.Currency,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WalletModel) FromDomain(w *wallets.Wallet) {
	m.ID = w.ID
	m.OwnerID = w.OwnerID
	m.OwnerType = w.OwnerType
	m.Balance = w.Balance
	m.Currency = w.Currency
	m.CreatedAt = w.CreatedAt
	m.UpdatedAt = w.UpdatedAt
}

// WalletTransactionModel is the GORM database model for wallet ledger lines
type WalletTransactionModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	WalletID     string    `gorm:"not null;index;type:varchar(36)"`
	Type         string    `gorm:"not null;type:varchar(10)"`
	Amount       int64     `gorm:"not null"`
	BalanceAfter int64     `gorm:"not null"`
	Reference    string    `gorm:"index;type:varchar(120)"`
	Description  string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}

// ToDomain converts GORM model to domain entity
func (m *WalletTransactionModel) ToDomain() *wallets.Transaction {
	return &wallets.Transaction{
		ID:           m.ID,
		WalletID:     m.WalletID,
		Type:         m.Type,
		Amount:       m.Amount,
		BalanceAfter: m.BalanceAfter,
		Reference:    m.Reference,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WalletTransactionModel) FromDomain(t *wallets.Transaction) {
	m.ID = t.ID
	m.WalletID = t.WalletID
	m.Type = t.Type
	m.Amount = t.Amount
	m.BalanceAfter = t.BalanceAfter
	m.Reference = t.Reference
	m.Description = t.Description
	m.CreatedAt = t.CreatedAt
}
