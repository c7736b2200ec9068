package persistence

import (
	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/catalog"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/txn"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

// Repositories bundles every GORM repository sharing one connection
type Repositories struct {
	Transactor   txn.Transactor
	Users        users.UserRepository
	Agencies     agencies.AgencyRepository
	Modules      services.ServiceModuleRepository
	Applications services.ServiceApplicationRepository
	Quotes       services.ServiceQuoteRepository
	Invoices     billing.InvoiceRepository
	Payments     billing.PaymentRepository
	Wallets      wallets.WalletRepository
	Posts        content.BlogPostRepository
	Pages        content.PageRepository
	Menus        content.MenuRepository
	Ads          content.AdRepository
	Seo          content.SeoMetaRepository
	Airports     catalog.AirportRepository
}

// NewRepositories creates all repositories on db
func NewRepositories(db *gorm.DB, logger logger.Logger) (*Repositories, error) {
	r := &Repositories{Transactor: NewGormTransactor(db)}
	var err error

	if r.Users, err = NewGormUserRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Agencies, err = NewGormAgencyRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Modules, err = NewGormServiceModuleRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Applications, err = NewGormServiceApplicationRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Quotes, err = NewGormServiceQuoteRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Invoices, err = NewGormInvoiceRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Payments, err = NewGormPaymentRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Wallets, err = NewGormWalletRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Posts, err = NewGormBlogPostRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Pages, err = NewGormPageRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Menus, err = NewGormMenuRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Ads, err = NewGormAdRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Seo, err = NewGormSeoMetaRepository(db, logger); err != nil {
		return nil, err
	}
	if r.Airports, err = NewGormAirportRepository(db, logger); err != nil {
		return nil, err
	}
	return r, nil
}
