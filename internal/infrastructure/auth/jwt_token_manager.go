package auth

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by marketplace access tokens
type Claims struct {
	Role     string `json:"role"`
	AgencyID string `json:"agency_id,omitempty"`
	jwt.RegisteredClaims
}

type jwtTokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTTokenManager returns a TokenManager signing HS256 tokens with the configured secret
func NewJWTTokenManager(settings *config.AuthSettings) (users.TokenManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &jwtTokenManager{
		secret: []byte(settings.JWTSecret),
		issuer: settings.Issuer,
		ttl:    settings.TokenTTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token for user and returns it with its expiry
func (m *jwtTokenManager) Issue(user *users.User) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if user.AgencyID != nil {
		claims.AgencyID = *user.AgencyID
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies signature, issuer and expiry and returns the principal the token was issued for
func (m *jwtTokenManager) Parse(token string) (*users.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUnauthorized, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: invalid token", apperr.ErrUnauthorized)
	}

	return &users.Principal{
		UserID:   claims.Subject,
		Role:     claims.Role,
		AgencyID: claims.AgencyID,
	}, nil
}
