package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"storefront/internal/model"
)

// ErrNotFound is returned when a lookup matches no record, whatever the backend.
var ErrNotFound = errors.New("record not found")

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	ListSummaries(ctx context.Context) ([]model.ProductSummary, error)
	// SearchByTitle returns products whose title matches pattern case-insensitively.
	// An empty pattern matches every product.
	SearchByTitle(ctx context.Context, pattern string) ([]model.Product, error)
}

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	// ListByUser returns the user's orders with the owner expanded.
	ListByUser(ctx context.Context, userID string) ([]model.UserOrder, error)
}

// Repositories bundles the repositories of one backend.
type Repositories struct {
	Users    UserRepository
	Products ProductRepository
	Orders   OrderRepository
}

// NewGormRepositories builds GORM-backed repositories.
func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:    NewUserRepository(db),
		Products: NewProductRepository(db),
		Orders:   NewOrderRepository(db),
	}
}

// NewMongoRepositories builds MongoDB-backed repositories.
func NewMongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Users:    NewMongoUserRepository(db),
		Products: NewMongoProductRepository(db),
		Orders:   NewMongoOrderRepository(db),
	}
}
