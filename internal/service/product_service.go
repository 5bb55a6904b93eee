package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const (
	productListCacheKey    = "products:all"
	defaultProductCacheTTL = time.Minute
)

// Cache is the subset of cache.Client the services use. Implementations must
// treat failures as misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ProductService handles catalog operations.
type ProductService interface {
	Add(ctx context.Context, product model.Product) (*model.Product, error)
	List(ctx context.Context) ([]model.ProductSummary, error)
	Search(ctx context.Context, query string) ([]model.Product, error)
}

type productService struct {
	repo     repository.ProductRepository
	cache    Cache
	cacheTTL time.Duration
}

// NewProductService creates a product service. cache may be nil.
func NewProductService(repo repository.ProductRepository, cache Cache, cacheTTL time.Duration) ProductService {
	if cacheTTL <= 0 {
		cacheTTL = defaultProductCacheTTL
	}
	return &productService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// ValidateProduct checks the stored-product invariants.
func ValidateProduct(p model.Product) error {
	verr := &apperrors.ValidationError{Entity: "Product"}
	if p.Title == "" {
		verr.Violations = append(verr.Violations, apperrors.FieldViolation{Field: "title", Reason: "is required"})
	}
	if p.URL == "" {
		verr.Violations = append(verr.Violations, apperrors.FieldViolation{Field: "url", Reason: "is required"})
	}
	if p.Price < 0 {
		verr.Violations = append(verr.Violations, apperrors.FieldViolation{Field: "price", Reason: "must be at least 0"})
	}
	if p.Rate < model.MinRate {
		verr.Violations = append(verr.Violations, apperrors.FieldViolation{Field: "rate", Reason: fmt.Sprintf("must be at least %d", model.MinRate)})
	}
	if p.Rate > model.MaxRate {
		verr.Violations = append(verr.Violations, apperrors.FieldViolation{Field: "rate", Reason: fmt.Sprintf("must be at most %d", model.MaxRate)})
	}
	if len(verr.Violations) > 0 {
		return verr
	}
	return nil
}

func (s *productService) Add(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := ValidateProduct(product); err != nil {
		return nil, err
	}

	product.ID = ""
	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.invalidate(ctx)
	return &product, nil
}

func (s *productService) List(ctx context.Context) ([]model.ProductSummary, error) {
	if s.cache != nil {
		if data, _ := s.cache.Get(ctx, productListCacheKey); data != nil {
			var cached []model.ProductSummary
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(summaries); err == nil {
			_ = s.cache.Set(ctx, productListCacheKey, payload, s.cacheTTL)
		}
	}
	return summaries, nil
}

// Search matches query against titles as a case-insensitive regular
// expression; an empty query returns every product.
func (s *productService) Search(ctx context.Context, query string) ([]model.Product, error) {
	products, err := s.repo.SearchByTitle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

func (s *productService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, productListCacheKey)
	}
}
