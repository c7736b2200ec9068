package content

import (
	"fmt"
	"sort"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Menu locations
const (
	LocationHeader  = "header"
	LocationFooter  = "footer"
	LocationSidebar = "sidebar"
)

// MenuItem is one link of a menu. ParentIndex points at another item of the same menu.
type MenuItem struct {
	Label       string `json:"label" validate:"required,max=80"`
	URL         string `json:"url" validate:"required,max=500"`
	SortOrder   int    `json:"sort_order"`
	ParentIndex *int   `json:"parent_index,omitempty"`
}

// Menu entity
type Menu struct {
	ID        string     `validate:"required,uuid4"`
	Name      string     `validate:"required,max=80"`
	Location  string     `validate:"required,oneof=header footer sidebar"`
	Items     []MenuItem `validate:"dive"`
	CreatedAt time.Time  `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating Menu struct
func (m *Menu) Validate() error {
	if err := validators.Struct(m); err != nil {
		return err
	}
	for i, item := range m.Items {
		if item.ParentIndex == nil {
			continue
		}
		if p := *item.ParentIndex; p < 0 || p >= len(m.Items) || p == i {
			return apperr.NewValidationError(fmt.Sprintf("items[%d].parent_index", i), "parent")
		}
	}
	return nil
}

// SortedItems returns the items ordered by SortOrder, keeping insertion order for ties.
func (m *Menu) SortedItems() []MenuItem {
	items := make([]MenuItem, len(m.Items))
	copy(items, m.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortOrder < items[j].SortOrder
	})
	return items
}
