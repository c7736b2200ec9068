package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPaymentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPaymentRepository creates a new GORM-based PaymentRepository implementation
func NewGormPaymentRepository(db *gorm.DB, logger logger.Logger) (billing.PaymentRepository, error) {
	return &gormPaymentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPaymentRepository) Create(ctx context.Context, payment *billing.Payment) error {
	if err := payment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PaymentModel{}
	model.FromDomain(payment)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "payment", payment.ID)
	}

	r.logger.Info("Recorded ", payment.Method, " payment ", payment.ID, " on invoice ", payment.InvoiceID)
	return nil
}

func (r *gormPaymentRepository) GetByID(ctx context.Context, paymentID string) (*billing.Payment, error) {
	var model models.PaymentModel
	if err := conn(ctx, r.db).Where("id = ?", paymentID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "payment", paymentID)
	}
	return model.ToDomain(), nil
}

func (r *gormPaymentRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*billing.Payment, error) {
	var modelList []*models.PaymentModel
	err := conn(ctx, r.db).
		Where("invoice_id = ?", invoiceID).
		Order("paid_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	domainList := make([]*billing.Payment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPaymentRepository) UpdateByID(ctx context.Context, payment *billing.Payment) error {
	if err := payment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PaymentModel{}
	model.FromDomain(payment)

	if err := updateAll(conn(ctx, r.db), model, "payment", payment.ID); err != nil {
		return err
	}

	r.logger.Info("Updated payment ", payment.ID, " status ", payment.Status)
	return nil
}
