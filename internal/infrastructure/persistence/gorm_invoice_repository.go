package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormInvoiceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormInvoiceRepository creates a new GORM-based InvoiceRepository implementation
func NewGormInvoiceRepository(db *gorm.DB, logger logger.Logger) (billing.InvoiceRepository, error) {
	return &gormInvoiceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormInvoiceRepository) Create(ctx context.Context, invoice *billing.Invoice) error {
	if err := invoice.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.InvoiceModel{}
	model.FromDomain(invoice)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "invoice", invoice.Number)
	}

	r.logger.Info("Created invoice ", invoice.Number, " with id ", invoice.ID)
	return nil
}

func (r *gormInvoiceRepository) GetByID(ctx context.Context, invoiceID string) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := conn(ctx, r.db).Where("id = ?", invoiceID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "invoice", invoiceID)
	}
	return model.ToDomain(), nil
}

func (r *gormInvoiceRepository) GetByIDForUpdate(ctx context.Context, invoiceID string) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := forUpdate(conn(ctx, r.db)).Where("id = ?", invoiceID).First(&model).Error; err != nil {
		return nil, translate(err, "lock", "invoice", invoiceID)
	}
	return model.ToDomain(), nil
}

func (r *gormInvoiceRepository) List(ctx context.Context, query *billing.InvoiceQuery) ([]*billing.Invoice, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Model(&models.InvoiceModel{})
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.ServiceApplicationID != "" {
		dbQuery = dbQuery.Where("service_application_id = ?", query.ServiceApplicationID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	sortOrder := query.SortOrder
	if query.SortBy == "" && sortOrder == "" {
		sortOrder = "desc"
	}
	dbQuery = paginate(dbQuery, query.SortBy, sortOrder, "issue_date", query.Limit, query.Offset)

	var modelList []*models.InvoiceModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	return invoicesToDomain(modelList), nil
}

func (r *gormInvoiceRepository) UpdateByID(ctx context.Context, invoice *billing.Invoice) error {
	if err := invoice.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.InvoiceModel{}
	model.FromDomain(invoice)

	if err := updateAll(conn(ctx, r.db), model, "invoice", invoice.ID); err != nil {
		return err
	}

	r.logger.Info("Updated invoice ", invoice.Number, " status ", invoice.Status)
	return nil
}

// NextSequence bumps the per year counter. Callers run it inside a transaction
// so the row lock taken by the UPDATE serialises concurrent invoice creation.
func (r *gormInvoiceRepository) NextSequence(ctx context.Context, year int) (int64, error) {
	db := conn(ctx, r.db)

	seq := models.InvoiceSequenceModel{Year: year}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seq).Error; err != nil {
		return 0, fmt.Errorf("failed to initialise invoice sequence: %w", err)
	}

	err := db.Model(&models.InvoiceSequenceModel{}).
		Where("year = ?", year).
		UpdateColumn("value", gorm.Expr("value + ?", 1)).Error
	if err != nil {
		return 0, fmt.Errorf("failed to advance invoice sequence: %w", err)
	}

	if err := db.Where("year = ?", year).First(&seq).Error; err != nil {
		return 0, fmt.Errorf("failed to read invoice sequence: %w", err)
	}
	return seq.Value, nil
}

func (r *gormInvoiceRepository) ListDueRecurring(ctx context.Context, now time.Time) ([]*billing.Invoice, error) {
	var modelList []*models.InvoiceModel
	err := conn(ctx, r.db).
		Where("recurring_frequency <> ?", billing.FrequencyNone).
		Where("status <> ?", billing.StatusCancelled).
		Where("next_issue_date IS NOT NULL AND next_issue_date <= ?", now.UTC()).
		Where("recurrence_end_date IS NULL OR next_issue_date <= recurrence_end_date").
		Order("next_issue_date asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recurring invoices: %w", err)
	}
	return invoicesToDomain(modelList), nil
}

func (r *gormInvoiceRepository) ListOverdueCandidates(ctx context.Context, now time.Time) ([]*billing.Invoice, error) {
	var modelList []*models.InvoiceModel
	err := conn(ctx, r.db).
		Where("status IN ?", []string{billing.StatusUnpaid, billing.StatusPartiallyPaid}).
		Where("due_date < ?", now.UTC()).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overdue invoices: %w", err)
	}
	return invoicesToDomain(modelList), nil
}

func invoicesToDomain(modelList []*models.InvoiceModel) []*billing.Invoice {
	domainList := make([]*billing.Invoice, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
