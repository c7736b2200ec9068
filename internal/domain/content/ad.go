package content

import (
	"sort"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/money"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Ad placements
const (
	PlacementHomeTop = "home_top"
	PlacementSidebar = "sidebar"
	PlacementFooter  = "footer"
	PlacementInline  = "inline"
)

// Ad entity
type Ad struct {
	ID          string `validate:"required,uuid4"`
	Title       string `validate:"required,max=150"`
	Placement   string `validate:"required,oneof=home_top sidebar footer inline"`
	ImageURL    string `validate:"omitempty,url,max=500"`
	TargetURL   string `validate:"required,url,max=500"`
	StartsAt    *time.Time
	EndsAt      *time.Time
	IsActive    bool
	Priority    int       `validate:"min=0,max=1000"`
	Impressions int64     `validate:"min=0"`
	Clicks      int64     `validate:"min=0"`
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating Ad struct
func (a *Ad) Validate() error {
	if err := validators.Struct(a); err != nil {
		return err
	}
	if a.StartsAt != nil && a.EndsAt != nil && a.EndsAt.Before(*a.StartsAt) {
		return apperr.NewValidationError("EndsAt", "gtefield")
	}
	return nil
}

// IsLive reports whether the ad is active and inside its date window at now.
func (a *Ad) IsLive(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.StartsAt != nil && now.Before(*a.StartsAt) {
		return false
	}
	return a.EndsAt == nil || !now.After(*a.EndsAt)
}

// CTR is the click-through rate in percent with two decimals; 0 without impressions.
func (a *Ad) CTR() float64 {
	return money.Ratio(a.Clicks, a.Impressions)
}

// SelectLive keeps the ads live at now, highest priority first, at most limit of them.
func SelectLive(ads []*Ad, now time.Time, limit int) []*Ad {
	live := make([]*Ad, 0, len(ads))
	for _, ad := range ads {
		if ad.IsLive(now) {
			live = append(live, ad)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].Priority > live[j].Priority
	})
	if limit > 0 && len(live) > limit {
		live = live[:limit]
	}
	return live
}

// AdQuery filters the admin ad listing
type AdQuery struct {
	Placement string `validate:"omitempty,oneof=home_top sidebar footer inline"`
	Active    *bool
	Limit     int `validate:"omitempty,gt=0,max=200"`
	Offset    int `validate:"omitempty,gte=0"`
}

// NewAdQuery creates an AdQuery with default paging
func NewAdQuery() *AdQuery {
	return &AdQuery{Limit: 50}
}

// Validate for validating AdQuery struct
func (q *AdQuery) Validate() error {
	return validators.Struct(q)
}
