package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/db/models"
	pkgerrors "github.com/northhaul/northhaul-backend/pkg/errors"
)

// CreateProductInput is the admin payload for a catalog item.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Price       string  `json:"price" validate:"required,price"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	Category    string  `json:"category" validate:"required,max=100"`
	Stock       int     `json:"stock" validate:"min=0"`
	Featured    bool    `json:"featured"`
	Published   bool    `json:"published"`
}

// UpdateProductInput merges partial edits into a catalog item.
type UpdateProductInput struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty"`
	Price       *string `json:"price" validate:"omitempty,price"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Stock       *int    `json:"stock" validate:"omitempty,min=0"`
	Featured    *bool   `json:"featured"`
	Published   *bool   `json:"published"`
}

// PublicFilter carries the optional public catalog filters.
type PublicFilter struct {
	Category string
	Featured *bool
}

// Service exposes catalog operations.
type Service interface {
	ListPublic(ctx context.Context, filter PublicFilter) ([]models.Product, error)
	GetPublic(ctx context.Context, id uuid.UUID) (*models.Product, error)

	ListAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService constructs a product service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListPublic(ctx context.Context, filter PublicFilter) ([]models.Product, error) {
	items, err := s.repo.List(ctx, ListFilter{
		PublishedOnly: true,
		Category:      filter.Category,
		Featured:      filter.Featured,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}
	return items, nil
}

// GetPublic resolves a published catalog item. Unpublished items read as not
// found.
func (s *service) GetPublic(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	if !product.Published {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Product, error) {
	items, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}
	return items, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Stock:       input.Stock,
		Featured:    input.Featured,
		Published:   input.Published,
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	if input.Published != nil {
		product.Published = *input.Published
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product")
	}
	return nil
}
