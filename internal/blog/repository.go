package blog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/db/models"
)

// Repository wires blog post persistence to GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// SlugTaken reports whether another post already owns the slug. The exclude
// ID lets updates keep their own slug.
func (r *Repository) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("slug = ? AND id <> ?", slug, exclude).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns posts newest first, optionally only published ones.
func (r *Repository) List(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	query := r.db.WithContext(ctx).Model(&models.BlogPost{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var posts []models.BlogPost
	if err := query.Order("published_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *Repository) Update(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BlogPost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
