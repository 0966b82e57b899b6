package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog item. Price is kept as a decimal string to avoid
// binary rounding; arithmetic goes through shopspring/decimal.
type Product struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description;not null" json:"description"`
	Price       string    `gorm:"column:price;not null" json:"price"`
	ImageURL    *string   `gorm:"column:image_url" json:"imageUrl,omitempty"`
	Category    string    `gorm:"column:category;not null" json:"category"`
	Stock       int       `gorm:"column:stock;not null;default:0" json:"stock"`
	Featured    bool      `gorm:"column:featured;not null;default:false" json:"featured"`
	Published   bool      `gorm:"column:published;not null;default:false" json:"published"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
