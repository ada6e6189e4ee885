package ports

import (
	"context"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

// ProductRepository defines persistence for products. Listings are returned
// newest first. A missing row maps to domain.ErrProductNotFound.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
