package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/model"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) ListSummaries(ctx context.Context) ([]model.ProductSummary, error) {
	summaries := []model.ProductSummary{}
	if err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("title", "url", "price", "rate").
		Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// SearchByTitle uses REGEXP_LIKE with the "i" flag (MySQL 8).
// MySQL rejects an empty pattern, so an empty query skips the filter.
func (r *productRepository) SearchByTitle(ctx context.Context, pattern string) ([]model.Product, error) {
	products := []model.Product{}
	q := r.db.WithContext(ctx)
	if pattern != "" {
		q = q.Where("REGEXP_LIKE(title, ?, 'i')", pattern)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
