package ports

import (
	"context"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

// InvoiceRepository defines persistence for invoices. Listings are returned
// newest first. A missing row maps to domain.ErrInvoiceNotFound.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context) ([]*domain.Invoice, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	Delete(ctx context.Context, id string) error
}
