package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/enums"
)

// Job represents a posting on the public job board. Publicly submitted jobs
// stay in pending status until an admin approves or denies them.
type Job struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title        string          `gorm:"column:title;not null" json:"title"`
	Description  string          `gorm:"column:description;not null" json:"description"`
	Location     string          `gorm:"column:location;not null" json:"location"`
	Company      string          `gorm:"column:company;not null" json:"company"`
	Type         enums.JobType   `gorm:"column:type;not null" json:"type"`
	Category     string          `gorm:"column:category;not null" json:"category"`
	Requirements *string         `gorm:"column:requirements" json:"requirements,omitempty"`
	Salary       *string         `gorm:"column:salary" json:"salary,omitempty"`
	Featured     bool            `gorm:"column:featured;not null;default:false" json:"featured"`
	Status       enums.JobStatus `gorm:"column:status;not null;default:pending" json:"status"`
	ContactEmail *string         `gorm:"column:contact_email" json:"contactEmail,omitempty"`
	ContactPhone *string         `gorm:"column:contact_phone" json:"contactPhone,omitempty"`
	PostedAt     time.Time       `gorm:"column:posted_at;autoCreateTime" json:"postedAt"`
	ExpiresAt    *time.Time      `gorm:"column:expires_at" json:"expiresAt,omitempty"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (j *Job) BeforeCreate(*gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
