//go:build unit
// +build unit

package agencies

import (
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newAgency() *Agency {
	return &Agency{
		ID:                uuid.NewString(),
		Name:              "Gulf Visa Partners",
		Slug:              "gulf-visa-partners",
		Email:             "ops@gulfvisa.example",
		Country:           "AE",
		CommissionPercent: 12.5,
		Status:            StatusActive,
		CreatedAt:         time.Now(),
	}
}

func TestAgency_Validate(t *testing.T) {
	assert.NoError(t, newAgency().Validate())

	agency := newAgency()
	agency.CommissionPercent = 120
	assert.ErrorIs(t, agency.Validate(), apperr.ErrValidation)

	agency = newAgency()
	agency.Country = "UAE"
	assert.ErrorIs(t, agency.Validate(), apperr.ErrValidation)

	agency = newAgency()
	agency.ServiceModuleIDs = []string{"not-a-uuid"}
	assert.ErrorIs(t, agency.Validate(), apperr.ErrValidation)
}

func TestAgency_Commission(t *testing.T) {
	agency := newAgency()

	assert.Equal(t, int64(6250), agency.Commission(50000))
	assert.Equal(t, int64(43750), agency.PlatformShare(50000))
	assert.Equal(t, int64(125), agency.Commission(999))
	assert.Equal(t, int64(999), agency.Commission(999)+agency.PlatformShare(999))
}

func TestAgency_Handles(t *testing.T) {
	agency := newAgency()
	moduleID := uuid.NewString()

	assert.True(t, agency.Handles(moduleID))

	agency.ServiceModuleIDs = []string{uuid.NewString()}
	assert.False(t, agency.Handles(moduleID))

	agency.ServiceModuleIDs = append(agency.ServiceModuleIDs, moduleID)
	assert.True(t, agency.Handles(moduleID))
}
