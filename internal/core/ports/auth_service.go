package ports

import (
	"context"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

// LoginResult carries both freshly minted tokens plus the public user.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.PublicUser
}

type AuthService interface {
	// Signup creates an account. Role defaults to USER when empty.
	Signup(ctx context.Context, email, password, role string) (*domain.PublicUser, error)
	// Login authenticates by email+password and issues an access/refresh pair.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Refresh exchanges a valid refresh token for a new access token.
	// The refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
