package services

import (
	"context"
	"log"
	"time"

	"shopmart/internal/caching"
	"shopmart/internal/common"
	"shopmart/internal/models"
	"shopmart/internal/repositories"
)

const (
	// PopularProductLimit caps the popular-products listing.
	PopularProductLimit = 5

	catalogCacheTTL = 5 * time.Minute
)

// ProductService owns the catalog: product reads and stock adjustment.
type ProductService interface {
	FindAll(ctx context.Context) ([]*models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindPopular(ctx context.Context) ([]*models.Product, error)
	RefreshPopular(ctx context.Context) error
	UpdateStock(ctx context.Context, id int64, delta int) (*models.Product, error)
}

type productService struct {
	store    repositories.Store
	cacheSvc caching.CacheService
}

func NewProductService(store repositories.Store, cacheSvc caching.CacheService) ProductService {
	return &productService{store: store, cacheSvc: cacheSvc}
}

// FindAll returns every product annotated with its order-line-item count.
// Cache failures fall through to Postgres.
func (s *productService) FindAll(ctx context.Context) ([]*models.Product, error) {
	if cached, err := s.cacheSvc.GetProducts(ctx); err != nil {
		log.Printf("WARN: product list cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	products, err := s.store.Products().ListWithCount(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cacheSvc.SetProducts(ctx, products, catalogCacheTTL); err != nil {
		log.Printf("WARN: product list cache write failed: %v", err)
	}
	return products, nil
}

func (s *productService) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.store.Products().GetByID(ctx, id)
}

// FindPopular returns up to PopularProductLimit products by descending
// order-line-item count. Ordering among equal counts is not deterministic.
func (s *productService) FindPopular(ctx context.Context) ([]*models.Product, error) {
	if cached, err := s.cacheSvc.GetPopularProducts(ctx); err != nil {
		log.Printf("WARN: popular products cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	products, err := s.store.Products().ListPopular(ctx, PopularProductLimit)
	if err != nil {
		return nil, err
	}

	if err := s.cacheSvc.SetPopularProducts(ctx, products, catalogCacheTTL); err != nil {
		log.Printf("WARN: popular products cache write failed: %v", err)
	}
	return products, nil
}

// RefreshPopular re-reads the popular listing from Postgres and overwrites the
// cache entry. Used by the background warmer.
func (s *productService) RefreshPopular(ctx context.Context) error {
	products, err := s.store.Products().ListPopular(ctx, PopularProductLimit)
	if err != nil {
		return err
	}
	return s.cacheSvc.SetPopularProducts(ctx, products, catalogCacheTTL)
}

// UpdateStock applies delta to the product's stock: positive replenishes,
// negative consumes. The resulting stock must stay non-negative.
func (s *productService) UpdateStock(ctx context.Context, id int64, delta int) (*models.Product, error) {
	product, err := s.store.Products().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Stock+delta < 0 {
		return nil, &common.InvalidArgumentError{Field: "stock", Message: "resulting stock cannot be negative"}
	}

	updated, err := s.store.Products().AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	if err := s.cacheSvc.InvalidateCatalog(ctx); err != nil {
		log.Printf("WARN: catalog cache invalidation failed: %v", err)
	}
	return updated, nil
}
