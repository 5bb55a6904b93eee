package service

import (
	"context"
	"fmt"
	"time"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// OrderInput is the client-supplied part of an order. The owner is never part of it.
type OrderInput struct {
	Address        map[string]interface{}
	ContactDetails string
	OrderedItems   []interface{}
	TotalPrice     float64
}

// OrderService handles order placement and history.
type OrderService interface {
	Add(ctx context.Context, userID string, input OrderInput) (*model.Order, error)
	ListForUser(ctx context.Context, userID string) ([]model.UserOrder, error)
}

type orderService struct {
	repo repository.OrderRepository
	now  func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo, now: time.Now}
}

// Add stores an order owned by userID. Address and ordered items must be
// present (an empty list is allowed); contact details must be non-empty.
func (s *orderService) Add(ctx context.Context, userID string, input OrderInput) (*model.Order, error) {
	if input.Address == nil || input.ContactDetails == "" || input.OrderedItems == nil {
		return nil, apperrors.ErrMissingFields
	}

	order := &model.Order{
		UserID:         userID,
		Address:        input.Address,
		ContactDetails: input.ContactDetails,
		OrderedItems:   input.OrderedItems,
		TotalPrice:     input.TotalPrice,
		OrderDate:      s.now().UTC(),
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// ListForUser returns the user's orders with the owner expanded. Ordered
// items are returned exactly as stored.
func (s *orderService) ListForUser(ctx context.Context, userID string) ([]model.UserOrder, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
