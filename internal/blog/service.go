package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/db/models"
	pkgerrors "github.com/northhaul/northhaul-backend/pkg/errors"
)

// CreatePostInput is the admin payload to author a post. Slug is optional
// and derived from the title when absent.
type CreatePostInput struct {
	Title     string  `json:"title" validate:"required,min=2,max=200"`
	Excerpt   string  `json:"excerpt" validate:"required,max=500"`
	Content   string  `json:"content" validate:"required"`
	ImageURL  *string `json:"imageUrl" validate:"omitempty,url"`
	Slug      *string `json:"slug" validate:"omitempty,max=200"`
	Published bool    `json:"published"`
}

// UpdatePostInput merges partial edits into a post.
type UpdatePostInput struct {
	Title     *string `json:"title" validate:"omitempty,min=2,max=200"`
	Excerpt   *string `json:"excerpt" validate:"omitempty,max=500"`
	Content   *string `json:"content" validate:"omitempty"`
	ImageURL  *string `json:"imageUrl" validate:"omitempty,url"`
	Slug      *string `json:"slug" validate:"omitempty,max=200"`
	Published *bool   `json:"published"`
}

// Service exposes blog content operations.
type Service interface {
	ListPublished(ctx context.Context) ([]models.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slugValue string) (*models.BlogPost, error)

	ListAll(ctx context.Context) ([]models.BlogPost, error)
	Get(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	Create(ctx context.Context, input CreatePostInput) (*models.BlogPost, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*models.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService constructs a blog service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("blog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list posts")
	}
	return posts, nil
}

// GetPublishedBySlug resolves a public post. Drafts read as not found.
func (s *service) GetPublishedBySlug(ctx context.Context, slugValue string) (*models.BlogPost, error) {
	post, err := s.repo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load post")
	}
	if !post.Published {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
	}
	return post, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list posts")
	}
	return posts, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load post")
	}
	return post, nil
}

func (s *service) Create(ctx context.Context, input CreatePostInput) (*models.BlogPost, error) {
	slugValue, err := s.resolveSlug(ctx, input.Slug, input.Title, uuid.Nil)
	if err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		Title:     input.Title,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		ImageURL:  input.ImageURL,
		Slug:      slugValue,
		Published: input.Published,
	}
	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert post")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*models.BlogPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil || input.Title != nil {
		title := post.Title
		if input.Title != nil {
			title = *input.Title
		}
		slugValue, err := s.resolveSlug(ctx, input.Slug, title, post.ID)
		if err != nil {
			return nil, err
		}
		if input.Slug != nil {
			post.Slug = slugValue
		}
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.ImageURL != nil {
		post.ImageURL = input.ImageURL
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update post")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete post")
	}
	return nil
}

// resolveSlug normalizes the explicit slug or derives one from the title, and
// rejects values another post already owns.
func (s *service) resolveSlug(ctx context.Context, explicit *string, title string, exclude uuid.UUID) (string, error) {
	source := title
	if explicit != nil && strings.TrimSpace(*explicit) != "" {
		source = *explicit
	}
	slugValue := slug.Make(source)
	if slugValue == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "slug cannot be derived from an empty title")
	}

	taken, err := s.repo.SlugTaken(ctx, slugValue, exclude)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check slug")
	}
	if taken {
		return "", pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("slug %q is already in use", slugValue))
	}
	return slugValue, nil
}
