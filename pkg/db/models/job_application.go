package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/enums"
)

// JobApplication links a candidate to an approved job posting.
type JobApplication struct {
	ID          uuid.UUID               `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	JobID       uuid.UUID               `gorm:"column:job_id;type:uuid;not null;index" json:"jobId"`
	UserID      string                  `gorm:"column:user_id;not null" json:"userId"`
	CoverLetter *string                 `gorm:"column:cover_letter" json:"coverLetter,omitempty"`
	Resume      *string                 `gorm:"column:resume" json:"resume,omitempty"`
	Status      enums.ApplicationStatus `gorm:"column:status;not null;default:pending" json:"status"`
	AppliedAt   time.Time               `gorm:"column:applied_at;autoCreateTime" json:"appliedAt"`
	UpdatedAt   time.Time               `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (a *JobApplication) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
