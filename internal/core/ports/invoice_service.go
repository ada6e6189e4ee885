package ports

import (
	"context"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

// InvoiceInput is the writable part of an invoice. UserID is only honored on
// the admin paths; owner-scoped paths pin it to the caller.
type InvoiceInput struct {
	UserID      string
	Amount      float64
	Description string
}

// InvoiceService mirrors ProductService: an admin view over all invoices and
// an owner-scoped view over the caller's records.
type InvoiceService interface {
	// Admin view.
	ListAll(ctx context.Context) ([]*domain.Invoice, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Invoice, error)
	Create(ctx context.Context, in InvoiceInput) (*domain.Invoice, error)
	Update(ctx context.Context, id string, in InvoiceInput) (*domain.Invoice, error)
	Delete(ctx context.Context, id string) error

	// Owner-scoped view.
	ListOwned(ctx context.Context, ownerID string) ([]*domain.Invoice, error)
	CreateOwned(ctx context.Context, ownerID string, amount float64, description string) (*domain.Invoice, error)
	UpdateOwned(ctx context.Context, ownerID, id string, amount float64, description string) (*domain.Invoice, error)
	DeleteOwned(ctx context.Context, ownerID, id string) error
}
