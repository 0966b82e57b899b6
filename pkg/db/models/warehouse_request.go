package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/enums"
)

// WarehouseRequest is a public inquiry for warehouse space.
type WarehouseRequest struct {
	ID           uuid.UUID               `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Company      string                  `gorm:"column:company;not null" json:"company"`
	ContactName  string                  `gorm:"column:contact_name;not null" json:"contactName"`
	ContactEmail string                  `gorm:"column:contact_email;not null" json:"contactEmail"`
	ContactPhone string                  `gorm:"column:contact_phone;not null" json:"contactPhone"`
	Location     string                  `gorm:"column:location;not null" json:"location"`
	StorageType  enums.StorageType       `gorm:"column:storage_type;not null" json:"storageType"`
	StorageSize  enums.StorageSize       `gorm:"column:storage_size;not null" json:"storageSize"`
	Duration     enums.StorageDuration   `gorm:"column:duration;not null" json:"duration"`
	Requirements *string                 `gorm:"column:requirements" json:"requirements,omitempty"`
	Status       enums.WarehouseStatus   `gorm:"column:status;not null;default:new" json:"status"`
	CreatedAt    time.Time               `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time               `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (r *WarehouseRequest) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
