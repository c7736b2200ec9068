package persistence

import (
	"context"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/txn"
	"gorm.io/gorm"
)

type txKey struct{}

type gormTransactor struct {
	db *gorm.DB
}

// NewGormTransactor creates a txn.Transactor backed by GORM transactions
func NewGormTransactor(db *gorm.DB) txn.Transactor {
	return &gormTransactor{db: db}
}

// WithinTransaction runs fn in a transaction carried by the returned context.
// Calls nested in an open transaction join it instead of starting another.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or db when there is none
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
