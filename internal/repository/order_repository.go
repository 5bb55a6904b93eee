package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront/internal/model"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.UserOrder, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}

	result := make([]model.UserOrder, 0, len(orders))
	if len(orders) == 0 {
		return result, nil
	}

	// Every order shares the same owner, so one lookup expands them all.
	var owner *model.User
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	switch {
	case err == nil:
		owner = &user
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	for _, o := range orders {
		result = append(result, model.UserOrder{Order: o, User: owner})
	}
	return result, nil
}
