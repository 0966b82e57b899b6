package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost is admin-authored content; only published posts are public.
type BlogPost struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Excerpt     string    `gorm:"column:excerpt;not null" json:"excerpt"`
	Content     string    `gorm:"column:content;not null" json:"content"`
	ImageURL    *string   `gorm:"column:image_url" json:"imageUrl,omitempty"`
	Slug        string    `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Published   bool      `gorm:"column:published;not null;default:false" json:"published"`
	PublishedAt time.Time `gorm:"column:published_at;autoCreateTime" json:"publishedAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (p *BlogPost) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
