//go:build unit
// +build unit

package auth

import (
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthSettings() *config.AuthSettings {
	return &config.AuthSettings{
		JWTSecret: "0123456789abcdef0123456789abcdef",
		Issuer:    "travel-marketplace",
		TokenTTL:  time.Hour,
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, h.Compare(hash, "s3cret-pass"))
	assert.ErrorIs(t, h.Compare(hash, "wrong-pass"), apperr.ErrUnauthorized)
	assert.Error(t, h.Compare("not-a-hash", "s3cret-pass"))
}

func TestJWTTokenManager_RoundTrip(t *testing.T) {
	tm, err := NewJWTTokenManager(testAuthSettings())
	require.NoError(t, err)

	agencyID := uuid.NewString()
	user := &users.User{ID: uuid.NewString(), Role: users.RoleAgency, AgencyID: &agencyID}

	token, expiresAt, err := tm.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	principal, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, users.RoleAgency, principal.Role)
	assert.Equal(t, agencyID, principal.AgencyID)
	assert.True(t, principal.IsAgency())
}

func TestJWTTokenManager_Rejects(t *testing.T) {
	tm, err := NewJWTTokenManager(testAuthSettings())
	require.NoError(t, err)
	user := &users.User{ID: uuid.NewString(), Role: users.RoleUser}

	t.Run("expired", func(t *testing.T) {
		m := tm.(*jwtTokenManager)
		issuedAt := time.Now().Add(-2 * time.Hour)
		m.now = func() time.Time { return issuedAt }
		token, _, err := m.Issue(user)
		require.NoError(t, err)
		m.now = time.Now

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("other secret", func(t *testing.T) {
		settings := testAuthSettings()
		settings.JWTSecret = "ffffffffffffffffffffffffffffffff"
		other, err := NewJWTTokenManager(settings)
		require.NoError(t, err)
		token, _, err := other.Issue(user)
		require.NoError(t, err)

		_, err = tm.Parse(token)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("other issuer", func(t *testing.T) {
		settings := testAuthSettings()
		settings.Issuer = "someone-else"
		other, err := NewJWTTokenManager(settings)
		require.NoError(t, err)
		token, _, err := other.Issue(user)
		require.NoError(t, err)

		_, err = tm.Parse(token)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.Parse("not.a.jwt")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})
}

func TestNewJWTTokenManager_InvalidSettings(t *testing.T) {
	_, err := NewJWTTokenManager(&config.AuthSettings{JWTSecret: "short", Issuer: "x", TokenTTL: time.Hour})
	assert.Error(t, err)
}
