package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormWalletRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormWalletRepository creates a new GORM-based WalletRepository implementation
func NewGormWalletRepository(db *gorm.DB, logger logger.Logger) (wallets.WalletRepository, error) {
	return &gormWalletRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormWalletRepository) Create(ctx context.Context, wallet *wallets.Wallet) error {
	if err := wallet.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.WalletModel{}
	model.FromDomain(wallet)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "wallet", wallet.OwnerType+" "+wallet.OwnerID)
	}

	r.logger.Info("Opened ", wallet.OwnerType, " wallet ", wallet.ID)
	return nil
}

func (r *gormWalletRepository) GetByID(ctx context.Context, walletID string) (*wallets.Wallet, error) {
	var model models.WalletModel
	if err := conn(ctx, r.db).Where("id = ?", walletID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "wallet", walletID)
	}
	return model.ToDomain(), nil
}

func (r *gormWalletRepository) GetByOwner(ctx context.Context, ownerID, ownerType string) (*wallets.Wallet, error) {
	var model models.WalletModel
	err := conn(ctx, r.db).
		Where("owner_id = ? AND owner_type = ?", ownerID, ownerType).
		First(&model).Error
	if err != nil {
		return nil, translate(err, "fetch", "wallet", ownerType+" "+ownerID)
	}
	return model.ToDomain(), nil
}

// AdjustBalance uses a conditional UPDATE so two concurrent debits can never
// overdraw the wallet, whatever the isolation level.
func (r *gormWalletRepository) AdjustBalance(ctx context.Context, walletID string, delta int64) (int64, error) {
	db := conn(ctx, r.db)

	res := db.Model(&models.WalletModel{}).
		Where("id = ? AND balance + ? >= 0", walletID, delta).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to adjust wallet balance: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, walletID); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: wallet %s cannot cover %d", apperr.ErrInsufficientFunds, walletID, -delta)
	}

	var model models.WalletModel
	if err := db.Select("balance").Where("id = ?", walletID).First(&model).Error; err != nil {
		return 0, fmt.Errorf("failed to read wallet balance: %w", err)
	}
	return model.Balance, nil
}

func (r *gormWalletRepository) CreateTransaction(ctx context.Context, transaction *wallets.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.WalletTransactionModel{}
	model.FromDomain(transaction)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "wallet transaction", transaction.ID)
	}

	r.logger.Info("Wallet ", transaction.WalletID, " ", transaction.Type, " ", transaction.Amount, " balance ", transaction.BalanceAfter)
	return nil
}

func (r *gormWalletRepository) ListTransactions(ctx context.Context, walletID string, query *wallets.TransactionQuery) ([]*wallets.Transaction, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Where("wallet_id = ?", walletID)
	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	dbQuery = paginate(dbQuery, "created_at", "desc", "created_at", query.Limit, query.Offset)

	var modelList []*models.WalletTransactionModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch wallet transactions: %w", err)
	}

	domainList := make([]*wallets.Transaction, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
