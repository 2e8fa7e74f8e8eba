// Package auth implements the credential primitives of the API: bcrypt
// password hashing and HS256 bearer token issuance/verification.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkpress/content-api/internal/core/domain"
)

const DefaultTokenTTL = time.Hour

// Claims is the payload carried by every issued token.
type Claims struct {
	UserID string `json:"sub_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies stateless bearer tokens. The signing secret
// is process-wide configuration: set once at startup, read-only afterwards.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding the user's id and email, expiring after the
// issuer's TTL.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded claims. Every
// failure mode (bad signature, expired, malformed, unexpected algorithm)
// collapses into domain.ErrInvalidToken so callers cannot distinguish them.
func (t *TokenIssuer) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
