package content

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Page is a static CMS page such as "about-us".
type Page struct {
	ID          string `validate:"required,uuid4"`
	Title       string `validate:"required,min=2,max=200"`
	Slug        string `validate:"required,slug,max=200"`
	Body        string `validate:"required"`
	IsPublished bool
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating Page struct
func (p *Page) Validate() error {
	return validators.Struct(p)
}
