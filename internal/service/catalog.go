package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/pkg/trm"
	"github.com/google/uuid"
)

type ProductRepo interface {
	GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error)
	GetProductForUpdate(ctx context.Context, id uuid.UUID) (entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) error
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, int, error)
}

type catalogService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ProductRepo
	now       func() time.Time
}

func NewCatalogService(logger *slog.Logger, txManager trm.Manager, repo ProductRepo) *catalogService {
	return &catalogService{
		logger:    logger.With(slog.String("service", "catalog")),
		txManager: txManager,
		repo:      repo,
		now:       time.Now,
	}
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *catalogService) ListProducts(ctx context.Context, f entities.ProductFilter) (entities.ProductPage, error) {
	f = f.Normalize()
	if f.Near != nil {
		if err := f.Near.Validate(); err != nil {
			return entities.ProductPage{}, err
		}
	}

	products, total, err := s.repo.ListProducts(ctx, f)
	if err != nil {
		return entities.ProductPage{}, err
	}
	return entities.ProductPage{Products: products, Pagination: entities.NewPagination(f.Page, f.Limit, total)}, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, caller entities.Caller, in entities.ProductInput) (entities.Product, error) {
	if !caller.Is(entities.RoleFarmer) {
		return entities.Product{}, fmt.Errorf("%w: only farmers can list products", entities.ErrForbidden)
	}
	if err := in.Validate(); err != nil {
		return entities.Product{}, err
	}

	now := s.now().UTC()
	product := entities.Product{
		ID:          uuid.New(),
		FarmerID:    caller.ID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Location:    in.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return entities.Product{}, err
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID.String()),
		slog.String("farmer_id", caller.ID.String()),
	)
	return product, nil
}

// UpdateProduct applies a partial edit under the same row lock checkouts take,
// so a manual stock edit never races a reservation.
func (s *catalogService) UpdateProduct(ctx context.Context, caller entities.Caller, id uuid.UUID, patch entities.ProductPatch) (entities.Product, error) {
	if !caller.Is(entities.RoleFarmer, entities.RoleAdmin) {
		return entities.Product{}, fmt.Errorf("%w: only farmers and admins can edit products", entities.ErrForbidden)
	}
	if err := patch.Validate(); err != nil {
		return entities.Product{}, err
	}

	var product entities.Product
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		product, err = s.repo.GetProductForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !ownsProduct(caller, product) {
			return fmt.Errorf("%w: product %s belongs to another farmer", entities.ErrForbidden, id)
		}

		patch.Apply(&product)
		product.UpdatedAt = s.now().UTC()
		return s.repo.UpdateProduct(ctx, product)
	})
	if err != nil {
		return entities.Product{}, asConflict(err)
	}

	s.logger.InfoContext(ctx, "product updated", slog.String("product_id", id.String()))
	return product, nil
}

// DeleteProduct removes the listing. Orders keep their line item snapshots.
func (s *catalogService) DeleteProduct(ctx context.Context, caller entities.Caller, id uuid.UUID) error {
	if !caller.Is(entities.RoleFarmer, entities.RoleAdmin) {
		return fmt.Errorf("%w: only farmers and admins can delete products", entities.ErrForbidden)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		product, err := s.repo.GetProductForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !ownsProduct(caller, product) {
			return fmt.Errorf("%w: product %s belongs to another farmer", entities.ErrForbidden, id)
		}
		return s.repo.DeleteProduct(ctx, id)
	})
	if err != nil {
		return asConflict(err)
	}

	s.logger.InfoContext(ctx, "product deleted", slog.String("product_id", id.String()))
	return nil
}

func ownsProduct(caller entities.Caller, p entities.Product) bool {
	return caller.Role == entities.RoleAdmin || p.FarmerID == caller.ID
}
