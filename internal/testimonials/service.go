package testimonials

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/db/models"
	pkgerrors "github.com/northhaul/northhaul-backend/pkg/errors"
)

// CreateTestimonialInput is the admin payload for a customer quote.
type CreateTestimonialInput struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Company  string  `json:"company" validate:"required,max=200"`
	Position *string `json:"position" validate:"omitempty,max=200"`
	Content  string  `json:"content" validate:"required"`
	Rating   *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
	Featured bool    `json:"featured"`
}

// UpdateTestimonialInput merges partial edits into a testimonial.
type UpdateTestimonialInput struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Company  *string `json:"company" validate:"omitempty,max=200"`
	Position *string `json:"position" validate:"omitempty,max=200"`
	Content  *string `json:"content" validate:"omitempty"`
	Rating   *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
	Featured *bool   `json:"featured"`
}

// Service exposes testimonial operations.
type Service interface {
	List(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error)
	Create(ctx context.Context, input CreateTestimonialInput) (*models.Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTestimonialInput) (*models.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService constructs a testimonial service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("testimonials repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error) {
	testimonials, err := s.repo.List(ctx, featuredOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list testimonials")
	}
	return testimonials, nil
}

func (s *service) Create(ctx context.Context, input CreateTestimonialInput) (*models.Testimonial, error) {
	rating := 5
	if input.Rating != nil {
		rating = *input.Rating
	}

	testimonial := &models.Testimonial{
		Name:     input.Name,
		Company:  input.Company,
		Position: input.Position,
		Content:  input.Content,
		Rating:   rating,
		ImageURL: input.ImageURL,
		Featured: input.Featured,
	}
	created, err := s.repo.Create(ctx, testimonial)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert testimonial")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateTestimonialInput) (*models.Testimonial, error) {
	testimonial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "testimonial not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load testimonial")
	}

	if input.Name != nil {
		testimonial.Name = *input.Name
	}
	if input.Company != nil {
		testimonial.Company = *input.Company
	}
	if input.Position != nil {
		testimonial.Position = input.Position
	}
	if input.Content != nil {
		testimonial.Content = *input.Content
	}
	if input.Rating != nil {
		testimonial.Rating = *input.Rating
	}
	if input.ImageURL != nil {
		testimonial.ImageURL = input.ImageURL
	}
	if input.Featured != nil {
		testimonial.Featured = *input.Featured
	}

	updated, err := s.repo.Update(ctx, testimonial)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update testimonial")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "testimonial not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete testimonial")
	}
	return nil
}
