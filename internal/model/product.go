package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rate bounds, inclusive.
const (
	MinRate = 0
	MaxRate = 5
)

// Product represents a catalog entry.
type Product struct {
	ID        string    `json:"_id" gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null;index"`
	URL       string    `json:"url" gorm:"size:2048;not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Rate      float64   `json:"rate" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProductSummary is the listing projection of a product.
type ProductSummary struct {
	Title string  `json:"title" bson:"title"`
	URL   string  `json:"url" bson:"url"`
	Price float64 `json:"price" bson:"price"`
	Rate  float64 `json:"rate" bson:"rate"`
}

// Summary projects the product for listings.
func (p Product) Summary() ProductSummary {
	return ProductSummary{
		Title: p.Title,
		URL:   p.URL,
		Price: p.Price,
		Rate:  p.Rate,
	}
}
