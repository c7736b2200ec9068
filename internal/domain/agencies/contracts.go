package agencies

import (
	"context"
)

// AgencyService manages partner agencies.
type AgencyService interface {
	Create(ctx context.Context, agency *Agency) (*Agency, error)
	List(ctx context.Context, query *AgencyQuery) ([]*Agency, error)
	GetByID(ctx context.Context, agencyID string) (*Agency, error)
	Update(ctx context.Context, agency *Agency) (*Agency, error)
	// SetStatus suspends or re-activates an agency.
	SetStatus(ctx context.Context, agencyID, status string) (*Agency, error)
	DeleteByID(ctx context.Context, agencyID string) error
}

// AgencyRepository defines the interface for Agency-related operations
type AgencyRepository interface {
	Create(ctx context.Context, agency *Agency) error
	List(ctx context.Context, query *AgencyQuery) ([]*Agency, error)
	GetByID(ctx context.Context, agencyID string) (*Agency, error)
	UpdateByID(ctx context.Context, agency *Agency) error
	DeleteByID(ctx context.Context, agencyID string) error
}
