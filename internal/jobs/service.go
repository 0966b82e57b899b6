package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/db/models"
	"github.com/northhaul/northhaul-backend/pkg/enums"
	pkgerrors "github.com/northhaul/northhaul-backend/pkg/errors"
)

// PublicFilter carries the optional public listing filters.
type PublicFilter struct {
	Type     string
	Category string
	Location string
	Query    string
}

// Service exposes job board operations for public and admin callers.
type Service interface {
	ListPublic(ctx context.Context, filter PublicFilter) ([]models.Job, error)
	ListFeatured(ctx context.Context) ([]models.Job, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Job, error)
	Submit(ctx context.Context, input SubmitJobInput) (*models.Job, error)

	ListPending(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, input CreateJobInput) (*models.Job, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateJobInput) (*models.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Apply(ctx context.Context, jobID uuid.UUID, input ApplyInput) (*models.JobApplication, error)
	ListApplications(ctx context.Context, jobID *uuid.UUID) ([]models.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, input UpdateApplicationStatusInput) (*models.JobApplication, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a job service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("jobs repository required")
	}
	return &service{repo: repo}, nil
}

// ListPublic returns approved jobs matching the filters.
func (s *service) ListPublic(ctx context.Context, filter PublicFilter) ([]models.Job, error) {
	jobs, err := s.repo.List(ctx, ListFilter{
		Status:   enums.JobStatusApproved,
		Type:     filter.Type,
		Category: filter.Category,
		Location: filter.Location,
		Query:    filter.Query,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list jobs")
	}
	return jobs, nil
}

func (s *service) ListFeatured(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list featured jobs")
	}
	return jobs, nil
}

func (s *service) CountByCategory(ctx context.Context) (map[string]int, error) {
	counts, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count jobs by category")
	}
	return counts, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "job not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load job")
	}
	return job, nil
}

// Submit creates a public posting. The status is always pending regardless of
// the payload; only an admin decision moves it.
func (s *service) Submit(ctx context.Context, input SubmitJobInput) (*models.Job, error) {
	jobType, err := enums.ParseJobType(input.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	job := &models.Job{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Company:      input.Company,
		Type:         jobType,
		Category:     input.Category,
		Requirements: input.Requirements,
		Salary:       input.Salary,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Status:       enums.JobStatusPending,
	}
	created, err := s.repo.Create(ctx, job)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert job")
	}
	return created, nil
}

func (s *service) ListPending(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.repo.List(ctx, ListFilter{Status: enums.JobStatusPending})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list pending jobs")
	}
	return jobs, nil
}

// Create inserts an admin-authored posting, optionally already approved.
func (s *service) Create(ctx context.Context, input CreateJobInput) (*models.Job, error) {
	jobType, err := enums.ParseJobType(input.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	status := enums.JobStatusPending
	if input.Status != nil {
		status, err = enums.ParseJobStatus(*input.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
	}

	job := &models.Job{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Company:      input.Company,
		Type:         jobType,
		Category:     input.Category,
		Requirements: input.Requirements,
		Salary:       input.Salary,
		Featured:     input.Featured,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Status:       status,
	}
	created, err := s.repo.Create(ctx, job)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert job")
	}
	return created, nil
}

// Update merges the partial payload into the posting. ID and PostedAt are
// never taken from the client.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateJobInput) (*models.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		jobType, err := enums.ParseJobType(*input.Type)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		job.Type = jobType
	}
	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.Company != nil {
		job.Company = *input.Company
	}
	if input.Category != nil {
		job.Category = *input.Category
	}
	if input.Requirements != nil {
		job.Requirements = input.Requirements
	}
	if input.Salary != nil {
		job.Salary = input.Salary
	}
	if input.Featured != nil {
		job.Featured = *input.Featured
	}
	if input.ContactEmail != nil {
		job.ContactEmail = input.ContactEmail
	}
	if input.ContactPhone != nil {
		job.ContactPhone = input.ContactPhone
	}

	updated, err := s.repo.Update(ctx, job)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update job")
	}
	return updated, nil
}

// UpdateStatus applies a moderation decision, enforcing the allowed
// transitions.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*models.Job, error) {
	target, err := enums.ParseJobStatus(input.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !job.Status.CanTransition(target) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move job from %s to %s", job.Status, target))
	}

	job.Status = target
	updated, err := s.repo.Update(ctx, job)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update job status")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "job not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete job")
	}
	return nil
}

// Apply records an application against an approved posting. Postings that do
// not exist or are still in moderation both read as not found so pending jobs
// stay invisible to the public.
func (s *service) Apply(ctx context.Context, jobID uuid.UUID, input ApplyInput) (*models.JobApplication, error) {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "job not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load job")
	}
	if job.Status != enums.JobStatusApproved {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "job not found")
	}

	app := &models.JobApplication{
		JobID:       job.ID,
		UserID:      input.UserID,
		CoverLetter: input.CoverLetter,
		Resume:      input.Resume,
		Status:      enums.ApplicationStatusPending,
	}
	created, err := s.repo.CreateApplication(ctx, app)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert application")
	}
	return created, nil
}

func (s *service) ListApplications(ctx context.Context, jobID *uuid.UUID) ([]models.JobApplication, error) {
	if jobID != nil {
		if _, err := s.Get(ctx, *jobID); err != nil {
			return nil, err
		}
	}
	apps, err := s.repo.ListApplications(ctx, jobID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list applications")
	}
	return apps, nil
}

// UpdateApplicationStatus advances an application, enforcing the review
// pipeline's allowed transitions.
func (s *service) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, input UpdateApplicationStatusInput) (*models.JobApplication, error) {
	target, err := enums.ParseApplicationStatus(input.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	app, err := s.repo.FindApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "application not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load application")
	}

	if !app.Status.CanTransition(target) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move application from %s to %s", app.Status, target))
	}

	app.Status = target
	updated, err := s.repo.UpdateApplication(ctx, app)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update application")
	}
	return updated, nil
}
