package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fastlegal/case-service/internal/core/domain"
)

const defaultTokenTTL = 60 * 24 * time.Hour // 60 days

// tokenIdentity carries the asserted user identity inside the token payload.
type tokenIdentity struct {
	ID string `json:"id"`
}

type tokenClaims struct {
	User tokenIdentity `json:"user"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed session tokens. The signing
// secret is injected at construction and lives for the process lifetime; there
// is no rotation and no server-side revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting userID, valid for the configured TTL.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		User: tokenIdentity{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded user ID.
// Verification is all-or-nothing: any failure yields domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (string, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid || claims.User.ID == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.User.ID, nil
}
