package testimonials

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/db/models"
)

// Repository wires testimonial persistence to GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, testimonial *models.Testimonial) (*models.Testimonial, error) {
	if err := r.db.WithContext(ctx).Create(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := r.db.WithContext(ctx).First(&testimonial, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// List returns testimonials newest first, optionally featured only.
func (r *Repository) List(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error) {
	query := r.db.WithContext(ctx).Model(&models.Testimonial{})
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}

	var testimonials []models.Testimonial
	if err := query.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *Repository) Update(ctx context.Context, testimonial *models.Testimonial) (*models.Testimonial, error) {
	if err := r.db.WithContext(ctx).Save(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Testimonial{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
