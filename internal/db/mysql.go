package db

import (
	"context"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"storefront/internal/model"
)

// MySQL is a GORM-backed store handle.
type MySQL struct {
	DB *gorm.DB
}

// NewMySQL returns a connected GORM DB instance with the schema migrated.
func NewMySQL(dsn string) (*MySQL, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Product{}, &model.Order{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &MySQL{DB: db}, nil
}

// Ping checks the connection pool.
func (m *MySQL) Ping(ctx context.Context) error {
	sqlDB, err := m.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (m *MySQL) Close(context.Context) error {
	sqlDB, err := m.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}
