package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/saasdash/dashboard-api/internal/core/domain"
	"github.com/saasdash/dashboard-api/internal/core/ports"
)

// ProductService implements both the admin and the owner-scoped product views.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) ListAll(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, ownerID string, in ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("product_id", created.ID).Str("user_id", ownerID).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, product, in)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) ListOwned(ctx context.Context, ownerID string) ([]*domain.Product, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ProductService) UpdateOwned(ctx context.Context, ownerID, id string, in ports.ProductInput) (*domain.Product, error) {
	product, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, product, in)
}

func (s *ProductService) DeleteOwned(ctx context.Context, ownerID, id string) error {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// owned loads a product and enforces ownership: missing is not-found,
// someone else's record is forbidden.
func (s *ProductService) owned(ctx context.Context, ownerID, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.UserID != ownerID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func (s *ProductService) apply(ctx context.Context, product *domain.Product, in ports.ProductInput) (*domain.Product, error) {
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, product)
}
