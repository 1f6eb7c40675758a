// Package token issues and verifies the signed bearer credentials handed out
// at login. Tokens are stateless: validity is purely signature + expiry, there
// is no registry and no revocation.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/salonhq/salon-system/internal/core/domain"
)

const defaultTTL = 60 * time.Minute

// Claims is the payload carried inside every issued token.
type Claims struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a single HS256 secret. It is
// constructed once at startup and safe for concurrent use: Issue and Verify
// are pure functions of (input, current time, secret).
type Manager struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
}

// NewManager builds a Manager. A non-positive ttl falls back to 60 minutes.
// Leeway tolerates small clock skew between issuer and verifier; zero is valid.
func NewManager(secret string, ttl, leeway time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, leeway: leeway}
}

// Issue mints a signed token for the given user and role, expiring after the
// configured TTL.
func (m *Manager) Issue(userID int64, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token and returns its claims. Every failure
// mode (malformed encoding, signature mismatch, wrong algorithm, expiry)
// collapses to domain.ErrInvalidToken so callers cannot leak which check
// failed.
func (m *Manager) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithLeeway(m.leeway))
	if err != nil || !t.Valid {
		return nil, domain.ErrInvalidToken
	}
	if _, err := domain.ParseRole(string(claims.Role)); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
