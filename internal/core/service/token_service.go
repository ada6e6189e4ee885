package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

// Default lifetimes for the two token flavors.
const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

type tokenType string

const (
	tokenTypeAccess  tokenType = "access"
	tokenTypeRefresh tokenType = "refresh"
)

// tokenClaims is the only claims shape this service signs. The token_type tag
// keeps a refresh token from ever passing as an access token even though both
// carry the same identity fields.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	TokenType tokenType `json:"token_type"`
}

// TokenService mints and verifies HS256 JWTs. Access and refresh tokens are
// signed with separate secrets so neither can substitute for the other.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenService builds a TokenService. Non-positive TTLs fall back to the
// defaults. Secrets are validated by config at startup, not here.
func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *TokenService) IssueAccessToken(userID, role string) (string, error) {
	return s.issue(userID, role, tokenTypeAccess, s.accessSecret, s.accessTTL)
}

func (s *TokenService) IssueRefreshToken(userID, role string) (string, error) {
	return s.issue(userID, role, tokenTypeRefresh, s.refreshSecret, s.refreshTTL)
}

// VerifyAccess validates an access token and returns the embedded identity.
func (s *TokenService) VerifyAccess(token string) (domain.Identity, error) {
	return s.verify(token, s.accessSecret, tokenTypeAccess)
}

// VerifyRefresh validates a refresh token and returns the embedded identity.
func (s *TokenService) VerifyRefresh(token string) (domain.Identity, error) {
	return s.verify(token, s.refreshSecret, tokenTypeRefresh)
}

func (s *TokenService) issue(userID, role string, typ tokenType, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		Role:      role,
		TokenType: typ,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// verify deliberately collapses every failure mode — malformed, bad signature,
// wrong flavor, expired — into domain.ErrInvalidToken. Clients get no hint of
// which check failed.
func (s *TokenService) verify(token string, secret []byte, want tokenType) (domain.Identity, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid || claims.TokenType != want || claims.UserID == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	return domain.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}
