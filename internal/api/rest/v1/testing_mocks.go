//go:build unit
// +build unit

package v1

import (
	"context"
	"io"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/catalog"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password, phone string) (*users.User, error) {
	args := m.Called(ctx, name, email, password, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, time.Time, *users.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(2) == nil {
		return args.String(0), args.Get(1).(time.Time), nil, args.Error(3)
	}
	return args.String(0), args.Get(1).(time.Time), args.Get(2).(*users.User), args.Error(3)
}

func (m *MockAuthService) CreateAccount(ctx context.Context, name, email, password, role string, agencyID *string) (*users.User, error) {
	args := m.Called(ctx, name, email, password, role, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

// MockTokenManager is a mock implementation of TokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Issue(user *users.User) (string, time.Time, error) {
	args := m.Called(user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenManager) Parse(token string) (*users.Principal, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Principal), args.Error(1)
}

// MockServiceModuleService is a mock implementation of ServiceModuleService
type MockServiceModuleService struct {
	mock.Mock
}

func (m *MockServiceModuleService) Create(ctx context.Context, module *services.ServiceModule) (*services.ServiceModule, error) {
	args := m.Called(ctx, module)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ServiceModule), args.Error(1)
}

func (m *MockServiceModuleService) List(ctx context.Context, query *services.ModuleQuery) ([]*services.ServiceModule, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*services.ServiceModule), args.Error(1)
}

func (m *MockServiceModuleService) GetByID(ctx context.Context, moduleID string) (*services.ServiceModule, error) {
	args := m.Called(ctx, moduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ServiceModule), args.Error(1)
}

func (m *MockServiceModuleService) GetBySlug(ctx context.Context, slug string) (*services.ServiceModule, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ServiceModule), args.Error(1)
}

func (m *MockServiceModuleService) Update(ctx context.Context, module *services.ServiceModule) (*services.ServiceModule, error) {
	args := m.Called(ctx, module)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ServiceModule), args.Error(1)
}

func (m *MockServiceModuleService) DeleteByID(ctx context.Context, moduleID string) error {
	args := m.Called(ctx, moduleID)
	return args.Error(0)
}

// MockServiceApplicationService is a mock implementation of ServiceApplicationService
type MockServiceApplicationService struct {
	mock.Mock
}

func (m *MockServiceApplicationService) Submit(ctx context.Context, principal *users.Principal, moduleSlug string, formData map[string]interface{}) (*services.ServiceApplication, error) {
	args := m.Called(ctx, principal, moduleSlug, formData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ServiceApplication), args.Error(1)
}

func (m *MockServiceApplicationService) List(ctx context.Context, principal *users.Principal, query *services.ApplicationQuery) ([]*services.ServiceApplication, error) {
	args := m.Called(ctx, principal, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*services.ServiceApplication), args.Error(1)
}

func (m *MockServiceApplicationService) GetByID(ctx context.Context, principal *users.Principal, applicationID string) (*services.ServiceApplication, error) {
	args := m.Called(ctx, principal, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ServiceApplication), args.Error(1)
}

func (m *MockServiceApplicationService) UpdateStatus(ctx context.Context, applicationID, status, notes string) (*services.ServiceApplication, error) {
	args := m.Called(ctx, applicationID, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ServiceApplication), args.Error(1)
}

func (m *MockServiceApplicationService) Cancel(ctx context.Context, principal *users.Principal, applicationID string) (*services.ServiceApplication, error) {
	args := m.Called(ctx, principal, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ServiceApplication), args.Error(1)
}

func (m *MockServiceApplicationService) AssignAgency(ctx context.Context, applicationID, agencyID string) (*services.ServiceApplication, error) {
	args := m.Called(ctx, applicationID, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ServiceApplication), args.Error(1)
}

func (m *MockServiceApplicationService) AttachDocument(ctx context.Context, principal *users.Principal, applicationID, name, contentType string, size int64, r io.Reader) (*services.Document, error) {
	args := m.Called(ctx, principal, applicationID, name, contentType, size, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Document), args.Error(1)
}

func (m *MockServiceApplicationService) OpenDocument(ctx context.Context, principal *users.Principal, applicationID, documentID string) (*services.Document, io.ReadCloser, error) {
	args := m.Called(ctx, principal, applicationID, documentID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*services.Document), args.Get(1).(io.ReadCloser), args.Error(2)
}

// MockServiceQuoteService is a mock implementation of ServiceQuoteService
type MockServiceQuoteService struct {
	mock.Mock
}

func (m *MockServiceQuoteService) Submit(ctx context.Context, principal *users.Principal, applicationID string, price int64, processingDays int, notes string, validUntil *time.Time) (*services.ServiceQuote, error) {
	args := m.Called(ctx, principal, applicationID, price, processingDays, notes, validUntil)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ServiceQuote), args.Error(1)
}

func (m *MockServiceQuoteService) ListByApplication(ctx context.Context, principal *users.Principal, applicationID string) ([]*services.ServiceQuote, error) {
	args := m.Called(ctx, principal, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*services.ServiceQuote), args.Error(1)
}

func (m *MockServiceQuoteService) resolve(ctx context.Context, method string, principal *users.Principal, quoteID string) (*services.ServiceQuote, error) {
	args := m.MethodCalled(method, ctx, principal, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ServiceQuote), args.Error(1)
}

func (m *MockServiceQuoteService) Accept(ctx context.Context, principal *users.Principal, quoteID string) (*services.ServiceQuote, error) {
	return m.resolve(ctx, "Accept", principal, quoteID)
}

func (m *MockServiceQuoteService) Reject(ctx context.Context, principal *users.Principal, quoteID string) (*services.ServiceQuote, error) {
	return m.resolve(ctx, "Reject", principal, quoteID)
}

func (m *MockServiceQuoteService) Withdraw(ctx context.Context, principal *users.Principal, quoteID string) (*services.ServiceQuote, error) {
	return m.resolve(ctx, "Withdraw", principal, quoteID)
}

// MockAgencyService is a mock implementation of AgencyService
type MockAgencyService struct {
	mock.Mock
}

func (m *MockAgencyService) Create(ctx context.Context, agency *agencies.Agency) (*agencies.Agency, error) {
	args := m.Called(ctx, agency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agencies.Agency), args.Error(1)
}

func (m *MockAgencyService) List(ctx context.Context, query *agencies.AgencyQuery) ([]*agencies.Agency, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agencies.Agency), args.Error(1)
}

func (m *MockAgencyService) GetByID(ctx context.Context, agencyID string) (*agencies.Agency, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agencies.Agency), args.Error(1)
}

func (m *MockAgencyService) Update(ctx context.Context, agency *agencies.Agency) (*agencies.Agency, error) {
	args := m.Called(ctx, agency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agencies.Agency), args.Error(1)
}

func (m *MockAgencyService) SetStatus(ctx context.Context, agencyID, status string) (*agencies.Agency, error) {
	args := m.Called(ctx, agencyID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agencies.Agency), args.Error(1)
}

func (m *MockAgencyService) DeleteByID(ctx context.Context, agencyID string) error {
	args := m.Called(ctx, agencyID)
	return args.Error(0)
}

// MockInvoiceService is a mock implementation of InvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) invoice(args mock.Arguments) (*billing.Invoice, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceService) payment(args mock.Arguments) (*billing.Payment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Payment), args.Error(1)
}

func (m *MockInvoiceService) Create(ctx context.Context, invoice *billing.Invoice) (*billing.Invoice, error) {
	return m.invoice(m.Called(ctx, invoice))
}

func (m *MockInvoiceService) IssueForApplication(ctx context.Context, application *services.ServiceApplication, description string) (*billing.Invoice, error) {
	return m.invoice(m.Called(ctx, application, description))
}

func (m *MockInvoiceService) GetByID(ctx context.Context, principal *users.Principal, invoiceID string) (*billing.Invoice, error) {
	return m.invoice(m.Called(ctx, principal, invoiceID))
}

func (m *MockInvoiceService) List(ctx context.Context, principal *users.Principal, query *billing.InvoiceQuery) ([]*billing.Invoice, error) {
	args := m.Called(ctx, principal, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Issue(ctx context.Context, invoiceID string) (*billing.Invoice, error) {
	return m.invoice(m.Called(ctx, invoiceID))
}

func (m *MockInvoiceService) Cancel(ctx context.Context, invoiceID string) (*billing.Invoice, error) {
	return m.invoice(m.Called(ctx, invoiceID))
}

func (m *MockInvoiceService) RecordPayment(ctx context.Context, invoiceID string, amount int64, method, reference string) (*billing.Payment, error) {
	return m.payment(m.Called(ctx, invoiceID, amount, method, reference))
}

func (m *MockInvoiceService) PayWithWallet(ctx context.Context, principal *users.Principal, invoiceID string) (*billing.Payment, error) {
	return m.payment(m.Called(ctx, principal, invoiceID))
}

func (m *MockInvoiceService) Refund(ctx context.Context, paymentID string) (*billing.Payment, error) {
	return m.payment(m.Called(ctx, paymentID))
}

func (m *MockInvoiceService) ListPayments(ctx context.Context, principal *users.Principal, invoiceID string) ([]*billing.Payment, error) {
	args := m.Called(ctx, principal, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Payment), args.Error(1)
}

func (m *MockInvoiceService) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceService) GenerateRecurring(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

// MockWalletService is a mock implementation of WalletService
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) GetOrCreate(ctx context.Context, ownerID, ownerType string) (*wallets.Wallet, error) {
	args := m.Called(ctx, ownerID, ownerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallets.Wallet), args.Error(1)
}

func (m *MockWalletService) GetByID(ctx context.Context, walletID string) (*wallets.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallets.Wallet), args.Error(1)
}

func (m *MockWalletService) Credit(ctx context.Context, walletID string, amount int64, reference, description string) (*wallets.Transaction, error) {
	args := m.Called(ctx, walletID, amount, reference, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallets.Transaction), args.Error(1)
}

func (m *MockWalletService) Debit(ctx context.Context, walletID string, amount int64, reference, description string) (*wallets.Transaction, error) {
	args := m.Called(ctx, walletID, amount, reference, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallets.Transaction), args.Error(1)
}

func (m *MockWalletService) Transactions(ctx context.Context, walletID string, query *wallets.TransactionQuery) ([]*wallets.Transaction, error) {
	args := m.Called(ctx, walletID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*wallets.Transaction), args.Error(1)
}

// MockBlogService is a mock implementation of BlogService
type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) post(args mock.Arguments) (*content.BlogPost, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.BlogPost), args.Error(1)
}

func (m *MockBlogService) Create(ctx context.Context, post *content.BlogPost) (*content.BlogPost, error) {
	return m.post(m.Called(ctx, post))
}

func (m *MockBlogService) Update(ctx context.Context, post *content.BlogPost) (*content.BlogPost, error) {
	return m.post(m.Called(ctx, post))
}

func (m *MockBlogService) GetByID(ctx context.Context, postID string) (*content.BlogPost, error) {
	return m.post(m.Called(ctx, postID))
}

func (m *MockBlogService) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*content.BlogPost, error) {
	return m.post(m.Called(ctx, slug, publishedOnly))
}

func (m *MockBlogService) List(ctx context.Context, query *content.PostQuery) ([]*content.BlogPost, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.BlogPost), args.Error(1)
}

func (m *MockBlogService) DeleteByID(ctx context.Context, postID string) error {
	return m.Called(ctx, postID).Error(0)
}

// MockPageService is a mock implementation of PageService
type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) page(args mock.Arguments) (*content.Page, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Page), args.Error(1)
}

func (m *MockPageService) Create(ctx context.Context, page *content.Page) (*content.Page, error) {
	return m.page(m.Called(ctx, page))
}

func (m *MockPageService) Update(ctx context.Context, page *content.Page) (*content.Page, error) {
	return m.page(m.Called(ctx, page))
}

func (m *MockPageService) GetByID(ctx context.Context, pageID string) (*content.Page, error) {
	return m.page(m.Called(ctx, pageID))
}

func (m *MockPageService) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*content.Page, error) {
	return m.page(m.Called(ctx, slug, publishedOnly))
}

func (m *MockPageService) List(ctx context.Context) ([]*content.Page, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Page), args.Error(1)
}

func (m *MockPageService) DeleteByID(ctx context.Context, pageID string) error {
	return m.Called(ctx, pageID).Error(0)
}

// MockMenuService is a mock implementation of MenuService
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) menu(args mock.Arguments) (*content.Menu, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Menu), args.Error(1)
}

func (m *MockMenuService) Create(ctx context.Context, menu *content.Menu) (*content.Menu, error) {
	return m.menu(m.Called(ctx, menu))
}

func (m *MockMenuService) Update(ctx context.Context, menu *content.Menu) (*content.Menu, error) {
	return m.menu(m.Called(ctx, menu))
}

func (m *MockMenuService) GetByID(ctx context.Context, menuID string) (*content.Menu, error) {
	return m.menu(m.Called(ctx, menuID))
}

func (m *MockMenuService) GetByLocation(ctx context.Context, location string) (*content.Menu, error) {
	return m.menu(m.Called(ctx, location))
}

func (m *MockMenuService) List(ctx context.Context) ([]*content.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Menu), args.Error(1)
}

func (m *MockMenuService) DeleteByID(ctx context.Context, menuID string) error {
	return m.Called(ctx, menuID).Error(0)
}

// MockAdService is a mock implementation of AdService
type MockAdService struct {
	mock.Mock
}

func (m *MockAdService) ad(args mock.Arguments) (*content.Ad, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Ad), args.Error(1)
}

func (m *MockAdService) Create(ctx context.Context, ad *content.Ad) (*content.Ad, error) {
	return m.ad(m.Called(ctx, ad))
}

func (m *MockAdService) Update(ctx context.Context, ad *content.Ad) (*content.Ad, error) {
	return m.ad(m.Called(ctx, ad))
}

func (m *MockAdService) GetByID(ctx context.Context, adID string) (*content.Ad, error) {
	return m.ad(m.Called(ctx, adID))
}

func (m *MockAdService) List(ctx context.Context, query *content.AdQuery) ([]*content.Ad, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Ad), args.Error(1)
}

func (m *MockAdService) DeleteByID(ctx context.Context, adID string) error {
	return m.Called(ctx, adID).Error(0)
}

func (m *MockAdService) Fetch(ctx context.Context, placement string, now time.Time, limit int) ([]*content.Ad, error) {
	args := m.Called(ctx, placement, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Ad), args.Error(1)
}

func (m *MockAdService) Click(ctx context.Context, adID string) (string, error) {
	args := m.Called(ctx, adID)
	return args.String(0), args.Error(1)
}

// MockSeoService is a mock implementation of SeoService
type MockSeoService struct {
	mock.Mock
}

func (m *MockSeoService) Upsert(ctx context.Context, meta *content.SeoMeta) (*content.SeoMeta, error) {
	args := m.Called(ctx, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.SeoMeta), args.Error(1)
}

func (m *MockSeoService) GetByPath(ctx context.Context, path string) (*content.SeoMeta, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.SeoMeta), args.Error(1)
}

func (m *MockSeoService) List(ctx context.Context) ([]*content.SeoMeta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.SeoMeta), args.Error(1)
}

func (m *MockSeoService) DeleteByPath(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

// MockAirportService is a mock implementation of AirportService
type MockAirportService struct {
	mock.Mock
}

func (m *MockAirportService) Search(ctx context.Context, search *catalog.AirportSearch) ([]*catalog.Airport, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Airport), args.Error(1)
}

func (m *MockAirportService) GetByIATA(ctx context.Context, iata string) (*catalog.Airport, error) {
	args := m.Called(ctx, iata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Airport), args.Error(1)
}

func (m *MockAirportService) Import(ctx context.Context, r io.Reader) (*catalog.ImportResult, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ImportResult), args.Error(1)
}
