package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a customer quote shown on the marketing site.
type Testimonial struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Company   string    `gorm:"column:company;not null" json:"company"`
	Position  *string   `gorm:"column:position" json:"position,omitempty"`
	Content   string    `gorm:"column:content;not null" json:"content"`
	Rating    int       `gorm:"column:rating;not null;default:5" json:"rating"`
	ImageURL  *string   `gorm:"column:image_url" json:"imageUrl,omitempty"`
	Featured  bool      `gorm:"column:featured;not null;default:false" json:"featured"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (t *Testimonial) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
