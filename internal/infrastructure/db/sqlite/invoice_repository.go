package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

// InvoiceRepository persists invoices through gorm.
type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return invoice, nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*domain.Invoice, error) {
	var invoices []*domain.Invoice
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

func (r *InvoiceRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Invoice, error) {
	var invoices []*domain.Invoice
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("list invoices by user: %w", err)
	}
	return invoices, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	if err := r.db.WithContext(ctx).Save(invoice).Error; err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return invoice, nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Invoice{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
