package ports

import (
	"context"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

// UserRepository defines persistence for accounts. Implementations must map
// a unique-constraint violation on email to domain.ErrEmailTaken and a missing
// row to domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
