package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
	"github.com/hyeonwoo-dev/atelier-shop/pkg/trm"
	"github.com/hyeonwoo-dev/atelier-shop/pkg/utils"

	"github.com/google/uuid"
)

type ProductRepo interface {
	ProductByID(ctx context.Context, productID uuid.UUID) (entities.Product, error)
	ProductBySKU(ctx context.Context, sku string) (entities.Product, error)
	Products(ctx context.Context, f entities.ProductsFilter) ([]entities.Product, int, error)
	CreateProduct(ctx context.Context, p entities.Product) error
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
	ReplaceSizes(ctx context.Context, productID uuid.UUID, sizes []entities.SizeStock) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type productService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ProductRepo
	cache     Cache
}

func NewProductService(logger *slog.Logger, txManager trm.Manager, repo ProductRepo, cache Cache) *productService {
	return &productService{
		logger:    logger.With(slog.String("service", "product")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
	}
}

// ProductByID is the hot read of the storefront; it serves from the LRU
// cache and falls back to the repository with retries.
func (s *productService) ProductByID(ctx context.Context, productID uuid.UUID) (entities.Product, error) {
	key := productID.String()
	if data, ok := s.cache.Get(key); ok {
		var product entities.Product
		if err := product.Unmarshal(data); err != nil {
			s.logger.ErrorContext(ctx, "failed to unmarshal cached product",
				slog.String("product_id", key), slog.Any("error", err))
			return entities.Product{}, err
		}
		return product, nil
	}

	var product entities.Product
	fn := func() error {
		var err error
		product, err = s.repo.ProductByID(ctx, productID)
		return err
	}
	if err := utils.Retry(readRetryConfig, fn, entities.ErrProductNotFound); err != nil {
		return entities.Product{}, err
	}

	data, err := product.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal product",
			slog.String("product_id", key), slog.Any("error", err))
		return entities.Product{}, err
	}
	s.cache.Set(key, data)
	return product, nil
}

// Invalidate drops the cached snapshot for a product. The checkout ledger
// mutates per-size stock without going through this service, so reserve and
// restore paths call this to keep cached stock from outliving the change.
func (s *productService) Invalidate(productID uuid.UUID) {
	s.cache.Delete(productID.String())
}

func (s *productService) ProductBySKU(ctx context.Context, sku string) (entities.Product, error) {
	return s.repo.ProductBySKU(ctx, sku)
}

func (s *productService) Products(ctx context.Context, f entities.ProductsFilter) ([]entities.Product, int, error) {
	return s.repo.Products(ctx, f)
}

func (s *productService) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.CreateProduct(ctx, p)
	})
	if err != nil {
		return entities.Product{}, err
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", p.ID.String()), slog.String("sku", p.SKU))
	return p, nil
}

// Update replaces the product row and its whole size grid in one
// transaction, then drops the cached snapshot.
func (s *productService) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateProduct(ctx, p); err != nil {
			return err
		}
		return s.repo.ReplaceSizes(ctx, p.ID, p.Sizes)
	})
	if err != nil {
		return entities.Product{}, err
	}

	s.cache.Delete(p.ID.String())
	return s.repo.ProductByID(ctx, p.ID)
}

func (s *productService) Delete(ctx context.Context, productID uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	s.cache.Delete(productID.String())
	return nil
}

// UpdateStock is the admin stock edit: an absolute overwrite of the size
// grid, distinct from the checkout ledger's reserve/restore.
func (s *productService) UpdateStock(ctx context.Context, productID uuid.UUID, sizes []entities.SizeStock) (entities.Product, error) {
	for _, size := range sizes {
		if size.Size == "" || size.Stock < 0 {
			return entities.Product{}, fmt.Errorf("%w: malformed size entry", entities.ErrInvalidProduct)
		}
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.ReplaceSizes(ctx, productID, sizes)
	})
	if err != nil {
		return entities.Product{}, err
	}

	s.cache.Delete(productID.String())
	return s.repo.ProductByID(ctx, productID)
}

func validateProduct(p entities.Product) error {
	if p.SKU == "" || p.Name == "" {
		return fmt.Errorf("%w: missing sku or name", entities.ErrInvalidProduct)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: negative price", entities.ErrInvalidProduct)
	}
	if p.MainCategory == "" || p.SubCategory == "" {
		return fmt.Errorf("%w: missing category", entities.ErrInvalidProduct)
	}
	for _, size := range p.Sizes {
		if size.Size == "" || size.Stock < 0 {
			return fmt.Errorf("%w: malformed size entry", entities.ErrInvalidProduct)
		}
	}
	return nil
}
