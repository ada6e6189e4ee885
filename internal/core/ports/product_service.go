package ports

import (
	"context"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

// ProductInput is the writable part of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
}

// ProductService exposes two views over the same store: the admin view spans
// every product, the owned view is scoped to the calling user's records.
type ProductService interface {
	// Admin view.
	ListAll(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, ownerID string, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error

	// Owner-scoped view. Mutations on a product owned by someone else fail
	// with domain.ErrForbidden.
	ListOwned(ctx context.Context, ownerID string) ([]*domain.Product, error)
	UpdateOwned(ctx context.Context, ownerID, id string, in ProductInput) (*domain.Product, error)
	DeleteOwned(ctx context.Context, ownerID, id string) error
}
