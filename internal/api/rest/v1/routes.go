package v1

import (
	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/catalog"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Services bundles the application services the API dispatches to
type Services struct {
	Auth         users.AuthService
	Users        users.UserService
	Modules      services.ServiceModuleService
	Applications services.ServiceApplicationService
	Quotes       services.ServiceQuoteService
	Agencies     agencies.AgencyService
	Invoices     billing.InvoiceService
	Wallets      wallets.WalletService
	Blog         content.BlogService
	Pages        content.PageService
	Menus        content.MenuService
	Ads          content.AdService
	Seo          content.SeoService
	Airports     catalog.AirportService
}

// RouterOptions carries the cross cutting dependencies of the API.
// RateLimiter, Metrics and Ping are optional.
type RouterOptions struct {
	Tokens            users.TokenManager
	RateLimiter       *RateLimiter
	Metrics           *metrics.Metrics
	Ping              PingFunc
	DefaultTaxPercent float64
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, svc *Services, opts RouterOptions) {
	r.GET("/healthz", Healthz(opts.Ping))
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	v1 := r.Group(BasePath) // lookup in version file
	if opts.RateLimiter != nil {
		v1.Use(opts.RateLimiter.Middleware())
	}

	authHandler := NewAuthHandler(svc.Auth, svc.Users)
	moduleHandler := NewModuleHandler(svc.Modules)
	applicationHandler := NewApplicationHandler(svc.Applications, svc.Modules, opts.Metrics)
	quoteHandler := NewQuoteHandler(svc.Quotes)
	agencyHandler := NewAgencyHandler(svc.Agencies, svc.Auth)
	invoiceHandler := NewInvoiceHandler(svc.Invoices, opts.Metrics, opts.DefaultTaxPercent)
	walletHandler := NewWalletHandler(svc.Wallets)
	blogHandler := NewBlogHandler(svc.Blog)
	pageHandler := NewPageHandler(svc.Pages)
	menuHandler := NewMenuHandler(svc.Menus)
	adHandler := NewAdHandler(svc.Ads)
	seoHandler := NewSeoHandler(svc.Seo)
	airportHandler := NewAirportHandler(svc.Airports)

	// Public routes
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/services", moduleHandler.ListActive)
	v1.GET("/services/:slug", moduleHandler.GetBySlug)
	v1.GET("/blog", blogHandler.ListPublished)
	v1.GET("/blog/:slug", blogHandler.GetPublished)
	v1.GET("/pages/:slug", pageHandler.GetPublished)
	v1.GET("/menus/:location", menuHandler.GetByLocation)
	v1.GET("/seo", seoHandler.GetByPath)
	v1.GET("/ads/fetch", adHandler.Fetch)
	v1.GET("/ads/:id/click", adHandler.Click)
	v1.GET("/airports", airportHandler.Search)
	v1.GET("/airports/:iata", airportHandler.GetByIATA)

	// Authenticated routes
	authed := v1.Group("", Authenticate(opts.Tokens))
	authed.GET("/auth/me", authHandler.Me)

	authed.POST("/services/:slug/applications", applicationHandler.Submit)
	authed.GET("/applications", applicationHandler.List)
	authed.GET("/applications/:id", applicationHandler.GetByID)
	authed.POST("/applications/:id/cancel", applicationHandler.Cancel)
	authed.POST("/applications/:id/documents", applicationHandler.UploadDocument)
	authed.GET("/applications/:id/documents/:documentId", applicationHandler.DownloadDocument)

	authed.POST("/tourist-visa-applications", applicationHandler.SubmitTouristVisa)
	authed.GET("/tourist-visa-applications", applicationHandler.ListTouristVisa)
	authed.GET("/tourist-visa-applications/:id", applicationHandler.GetTouristVisa)

	authed.GET("/applications/:id/quotes", quoteHandler.ListByApplication)
	authed.POST("/applications/:id/quotes", quoteHandler.Submit)
	authed.POST("/quotes/:id/accept", quoteHandler.Accept)
	authed.POST("/quotes/:id/reject", quoteHandler.Reject)
	authed.POST("/quotes/:id/withdraw", quoteHandler.Withdraw)

	authed.GET("/invoices", invoiceHandler.List)
	authed.GET("/invoices/:id", invoiceHandler.GetByID)
	authed.GET("/invoices/:id/payments", invoiceHandler.ListPayments)
	authed.POST("/invoices/:id/pay-wallet", invoiceHandler.PayWithWallet)

	authed.GET("/wallet", walletHandler.Get)
	authed.GET("/wallet/transactions", walletHandler.Transactions)

	// Admin routes
	admin := authed.Group("/admin", RequireRole(users.RoleAdmin))
	admin.GET("/users", authHandler.ListUsers)

	admin.GET("/services", moduleHandler.List)
	admin.POST("/services", moduleHandler.Create)
	admin.PUT("/services/:id", moduleHandler.Update)
	admin.DELETE("/services/:id", moduleHandler.DeleteByID)

	admin.PATCH("/applications/:id/status", applicationHandler.UpdateStatus)
	admin.POST("/applications/:id/assign", applicationHandler.AssignAgency)

	admin.GET("/agencies", agencyHandler.List)
	admin.POST("/agencies", agencyHandler.Create)
	admin.GET("/agencies/:id", agencyHandler.GetByID)
	admin.PUT("/agencies/:id", agencyHandler.Update)
	admin.DELETE("/agencies/:id", agencyHandler.DeleteByID)
	admin.POST("/agencies/:id/suspend", agencyHandler.Suspend)
	admin.POST("/agencies/:id/activate", agencyHandler.Activate)
	admin.POST("/agencies/:id/accounts", agencyHandler.CreateAccount)

	admin.POST("/invoices", invoiceHandler.Create)
	admin.POST("/invoices/:id/issue", invoiceHandler.Issue)
	admin.POST("/invoices/:id/cancel", invoiceHandler.Cancel)
	admin.POST("/invoices/:id/payments", invoiceHandler.RecordPayment)
	admin.POST("/payments/:paymentId/refund", invoiceHandler.Refund)

	admin.POST("/wallets/top-up", walletHandler.TopUp)

	admin.GET("/blog-posts", blogHandler.List)
	admin.POST("/blog-posts", blogHandler.Create)
	admin.GET("/blog-posts/:id", blogHandler.GetByID)
	admin.PUT("/blog-posts/:id", blogHandler.Update)
	admin.DELETE("/blog-posts/:id", blogHandler.DeleteByID)

	admin.GET("/pages", pageHandler.List)
	admin.POST("/pages", pageHandler.Create)
	admin.GET("/pages/:id", pageHandler.GetByID)
	admin.PUT("/pages/:id", pageHandler.Update)
	admin.DELETE("/pages/:id", pageHandler.DeleteByID)

	admin.GET("/menus", menuHandler.List)
	admin.POST("/menus", menuHandler.Create)
	admin.PUT("/menus/:id", menuHandler.Update)
	admin.DELETE("/menus/:id", menuHandler.DeleteByID)

	admin.GET("/ads", adHandler.List)
	admin.POST("/ads", adHandler.Create)
	admin.GET("/ads/:id", adHandler.GetByID)
	admin.PUT("/ads/:id", adHandler.Update)
	admin.DELETE("/ads/:id", adHandler.DeleteByID)

	admin.GET("/seo", seoHandler.List)
	admin.PUT("/seo", seoHandler.Upsert)
	admin.DELETE("/seo", seoHandler.DeleteByPath)

	admin.POST("/airports/import", airportHandler.Import)
}
