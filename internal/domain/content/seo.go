package content

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// SeoMeta carries the search engine metadata of one site path.
type SeoMeta struct {
	ID          string    `validate:"required,uuid4"`
	Path        string    `validate:"required,startswith=/,max=255"`
	Title       string    `validate:"required,max=70"`
	Description string    `validate:"max=320"`
	Keywords    []string  `validate:"omitempty,max=30,dive,required,max=50"`
	OGImage     string    `validate:"omitempty,url,max=500"`
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating SeoMeta struct
func (s *SeoMeta) Validate() error {
	return validators.Struct(s)
}
