package warehouse

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/db/models"
	"github.com/northhaul/northhaul-backend/pkg/enums"
)

// Repository wires warehouse request persistence to GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, request *models.WarehouseRequest) (*models.WarehouseRequest, error) {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.WarehouseRequest, error) {
	var request models.WarehouseRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns requests newest first, optionally filtered by status.
func (r *Repository) List(ctx context.Context, status *enums.WarehouseStatus) ([]models.WarehouseRequest, error) {
	query := r.db.WithContext(ctx).Model(&models.WarehouseRequest{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var requests []models.WarehouseRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *Repository) Update(ctx context.Context, request *models.WarehouseRequest) (*models.WarehouseRequest, error) {
	if err := r.db.WithContext(ctx).Save(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// CountByStatus returns the number of requests in the given status.
func (r *Repository) CountByStatus(ctx context.Context, status enums.WarehouseStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WarehouseRequest{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
