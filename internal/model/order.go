package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order represents a placed order. UserID is always the authenticated caller.
type Order struct {
	ID             string                 `json:"_id" gorm:"type:char(36);primaryKey"`
	UserID         string                 `json:"user" gorm:"type:char(36);not null;index"`
	Address        map[string]interface{} `json:"address" gorm:"serializer:json;type:json;not null"`
	ContactDetails string                 `json:"contactDetails" gorm:"type:text;not null"`
	OrderedItems   []interface{}          `json:"orderedItems" gorm:"serializer:json;type:json;not null"`
	TotalPrice     float64                `json:"totalPrice"`
	OrderDate      time.Time              `json:"orderDate"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// UserOrder is an order with its owner expanded. The outer "user" key
// shadows Order.UserID when encoded. User is nil if the owner no longer exists.
type UserOrder struct {
	Order
	User *User `json:"user"`
}
