package warehouse

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

// CreateRequestInput is the public warehouse inquiry payload.
type CreateRequestInput struct {
	Company      string  `json:"company" validate:"required,max=200"`
	ContactName  string  `json:"contactName" validate:"required,max=200"`
	ContactEmail string  `json:"contactEmail" validate:"required,email"`
	ContactPhone string  `json:"contactPhone" validate:"required,phone"`
	Location     string  `json:"location" validate:"required,max=200"`
	StorageType  string  `json:"storageType" validate:"required"`
	StorageSize  string  `json:"storageSize" validate:"required"`
	Duration     string  `json:"duration" validate:"required"`
	Requirements *string `json:"requirements" validate:"omitempty"`
}

// UpdateStatusInput moves an inquiry through the follow-up pipeline.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// Service exposes warehouse inquiry operations.
type Service interface {
	Create(ctx context.Context, input CreateRequestInput) (*models.WarehouseRequest, error)
	List(ctx context.Context, status string) ([]models.WarehouseRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*models.WarehouseRequest, error)
	CountNew(ctx context.Context) (int64, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a warehouse service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("warehouse repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateRequestInput) (*models.WarehouseRequest, error) {
	storageType, err := enums.ParseStorageType(input.StorageType)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	storageSize, err := enums.ParseStorageSize(input.StorageSize)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	duration, err := enums.ParseStorageDuration(input.Duration)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	request := &models.WarehouseRequest{
		Company:      input.Company,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Location:     input.Location,
		StorageType:  storageType,
		StorageSize:  storageSize,
		Duration:     duration,
		Requirements: input.Requirements,
		Status:       enums.WarehouseStatusNew,
	}
	created, err := s.repo.Create(ctx, request)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert warehouse request")
	}
	return created, nil
}

func (s *service) List(ctx context.Context, status string) ([]models.WarehouseRequest, error) {
	var filter *enums.WarehouseStatus
	if status != "" {
		parsed, err := enums.ParseWarehouseStatus(status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		filter = &parsed
	}

	requests, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list warehouse requests")
	}
	return requests, nil
}

// UpdateStatus advances an inquiry, enforcing the allowed transitions.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*models.WarehouseRequest, error) {
	target, err := enums.ParseWarehouseStatus(input.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "warehouse request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load warehouse request")
	}

	if !request.Status.CanTransition(target) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move request from %s to %s", request.Status, target))
	}

	request.Status = target
	updated, err := s.repo.Update(ctx, request)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update warehouse request")
	}
	return updated, nil
}

// CountNew reports inquiries nobody has followed up on yet.
func (s *service) CountNew(ctx context.Context) (int64, error) {
	count, err := s.repo.CountByStatus(ctx, enums.WarehouseStatusNew)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count warehouse requests")
	}
	return count, nil
}
