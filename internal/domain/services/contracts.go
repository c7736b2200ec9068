package services

import (
	"context"
	"io"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
)

// ServiceModuleService manages the catalogue of service offerings.
type ServiceModuleService interface {
	Create(ctx context.Context, module *ServiceModule) (*ServiceModule, error)
	List(ctx context.Context, query *ModuleQuery) ([]*ServiceModule, error)
	GetByID(ctx context.Context, moduleID string) (*ServiceModule, error)
	GetBySlug(ctx context.Context, slug string) (*ServiceModule, error)
	Update(ctx context.Context, module *ServiceModule) (*ServiceModule, error)
	DeleteByID(ctx context.Context, moduleID string) error
}

// ServiceApplicationService handles the lifecycle of user applications.
type ServiceApplicationService interface {
	// Submit validates formData against the module's form and stores a pending application.
	Submit(ctx context.Context, principal *users.Principal, moduleSlug string, formData map[string]interface{}) (*ServiceApplication, error)

	// List returns applications visible to principal that match query.
	List(ctx context.Context, principal *users.Principal, query *ApplicationQuery) ([]*ServiceApplication, error)

	// GetByID returns one application if principal may see it.
	GetByID(ctx context.Context, principal *users.Principal, applicationID string) (*ServiceApplication, error)

	// UpdateStatus applies a staff decision; completing an application pays out the agency commission.
	UpdateStatus(ctx context.Context, applicationID, status, notes string) (*ServiceApplication, error)

	// Cancel lets the applicant withdraw an application that has not been approved.
	Cancel(ctx context.Context, principal *users.Principal, applicationID string) (*ServiceApplication, error)

	// AssignAgency hands the application to an active agency for quoting.
	AssignAgency(ctx context.Context, applicationID, agencyID string) (*ServiceApplication, error)

	// AttachDocument stores a file and records it on the application.
	AttachDocument(ctx context.Context, principal *users.Principal, applicationID, name, contentType string, size int64, r io.Reader) (*Document, error)

	// OpenDocument streams an attached file.
	OpenDocument(ctx context.Context, principal *users.Principal, applicationID, documentID string) (*Document, io.ReadCloser, error)
}

// ServiceQuoteService handles agency offers on applications.
type ServiceQuoteService interface {
	Submit(ctx context.Context, principal *users.Principal, applicationID string, price int64, processingDays int, notes string, validUntil *time.Time) (*ServiceQuote, error)
	ListByApplication(ctx context.Context, principal *users.Principal, applicationID string) ([]*ServiceQuote, error)
	// Accept accepts a pending quote, rejects its competitors, approves the application and invoices the applicant.
	Accept(ctx context.Context, principal *users.Principal, quoteID string) (*ServiceQuote, error)
	Reject(ctx context.Context, principal *users.Principal, quoteID string) (*ServiceQuote, error)
	Withdraw(ctx context.Context, principal *users.Principal, quoteID string) (*ServiceQuote, error)
}

// ServiceModuleRepository defines the interface for ServiceModule-related operations
type ServiceModuleRepository interface {
	Create(ctx context.Context, module *ServiceModule) error
	List(ctx context.Context, query *ModuleQuery) ([]*ServiceModule, error)
	GetByID(ctx context.Context, moduleID string) (*ServiceModule, error)
	GetBySlug(ctx context.Context, slug string) (*ServiceModule, error)
	UpdateByID(ctx context.Context, module *ServiceModule) error
	DeleteByID(ctx context.Context, moduleID string) error
}

// ServiceApplicationRepository defines the interface for ServiceApplication-related operations
type ServiceApplicationRepository interface {
	Create(ctx context.Context, application *ServiceApplication) error
	List(ctx context.Context, query *ApplicationQuery) ([]*ServiceApplication, error)
	GetByID(ctx context.Context, applicationID string) (*ServiceApplication, error)
	// GetByIDForUpdate is GetByID holding a row lock until the transaction in ctx ends.
	GetByIDForUpdate(ctx context.Context, applicationID string) (*ServiceApplication, error)
	UpdateByID(ctx context.Context, application *ServiceApplication) error
}

// ServiceQuoteRepository defines the interface for ServiceQuote-related operations
type ServiceQuoteRepository interface {
	Create(ctx context.Context, quote *ServiceQuote) error
	GetByID(ctx context.Context, quoteID string) (*ServiceQuote, error)
	GetByIDForUpdate(ctx context.Context, quoteID string) (*ServiceQuote, error)
	ListByApplication(ctx context.Context, applicationID string) ([]*ServiceQuote, error)
	CountPending(ctx context.Context, applicationID, agencyID string) (int64, error)
	UpdateByID(ctx context.Context, quote *ServiceQuote) error
}
