package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/saasdash/dashboard-api/internal/core/domain"
	"github.com/saasdash/dashboard-api/internal/core/ports"
)

// InvoiceService implements both the admin and the owner-scoped invoice views.
type InvoiceService struct {
	repo   ports.InvoiceRepository
	logger zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, logger: logger}
}

func (s *InvoiceService) ListAll(ctx context.Context) ([]*domain.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *InvoiceService) ListByUser(ctx context.Context, userID string) ([]*domain.Invoice, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *InvoiceService) Create(ctx context.Context, in ports.InvoiceInput) (*domain.Invoice, error) {
	return s.create(ctx, in.UserID, in.Amount, in.Description)
}

func (s *InvoiceService) Update(ctx context.Context, id string, in ports.InvoiceInput) (*domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UserID != "" {
		invoice.UserID = in.UserID
	}
	return s.apply(ctx, invoice, in.Amount, in.Description)
}

func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *InvoiceService) ListOwned(ctx context.Context, ownerID string) ([]*domain.Invoice, error) {
	return s.repo.ListByUser(ctx, ownerID)
}

func (s *InvoiceService) CreateOwned(ctx context.Context, ownerID string, amount float64, description string) (*domain.Invoice, error) {
	return s.create(ctx, ownerID, amount, description)
}

func (s *InvoiceService) UpdateOwned(ctx context.Context, ownerID, id string, amount float64, description string) (*domain.Invoice, error) {
	invoice, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, invoice, amount, description)
}

func (s *InvoiceService) DeleteOwned(ctx context.Context, ownerID, id string) error {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *InvoiceService) create(ctx context.Context, userID string, amount float64, description string) (*domain.Invoice, error) {
	now := time.Now().UTC()
	invoice := &domain.Invoice{
		UserID:      userID,
		Amount:      amount,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.repo.Create(ctx, invoice)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("invoice_id", created.ID).Str("user_id", userID).Msg("invoice created")
	return created, nil
}

func (s *InvoiceService) owned(ctx context.Context, ownerID, id string) (*domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.UserID != ownerID {
		return nil, domain.ErrForbidden
	}
	return invoice, nil
}

func (s *InvoiceService) apply(ctx context.Context, invoice *domain.Invoice, amount float64, description string) (*domain.Invoice, error) {
	invoice.Amount = amount
	invoice.Description = description
	invoice.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, invoice)
}
