package ports

import (
	"context"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

// UserService covers admin account management plus self-service settings.
type UserService interface {
	List(ctx context.Context) ([]*domain.PublicUser, error)
	ChangeRole(ctx context.Context, id, role string) (*domain.PublicUser, error)
	Delete(ctx context.Context, id string) error
	// UpdateSettings lets an authenticated user change their own email and/or
	// password. Both empty is rejected with domain.ErrNothingToUpdate.
	UpdateSettings(ctx context.Context, userID, email, password string) (*domain.PublicUser, error)
}
