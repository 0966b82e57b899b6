package jobs

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/db/models"
	"github.com/northhaul/northhaul-backend/pkg/enums"
)

// ListFilter narrows the public job listing. Type and Category match exactly
// (case-insensitive); Location and Query match as substrings.
type ListFilter struct {
	Status   enums.JobStatus
	Type     string
	Category string
	Location string
	Query    string
}

// Repository wires job and application persistence to GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func (r *Repository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns jobs matching the filter, newest first.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.Job, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("LOWER(type) = ?", strings.ToLower(filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(filter.Category))
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Query != "" {
		needle := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(company) LIKE ?",
			needle, needle, needle,
		)
	}

	var jobs []models.Job
	if err := query.Order("posted_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListFeatured returns approved jobs flagged as featured, newest first.
func (r *Repository) ListFeatured(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Where("status = ? AND featured = ?", enums.JobStatusApproved, true).
		Order("posted_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// CountByCategory returns the number of approved jobs per category.
func (r *Repository) CountByCategory(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Category string
		Count    int
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Select("category, COUNT(*) AS count").
		Where("status = ?", enums.JobStatusApproved).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

func (r *Repository) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus returns the number of jobs in the given status.
func (r *Repository) CountByStatus(ctx context.Context, status enums.JobStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountDistinctCompanies counts distinct companies across approved jobs.
func (r *Repository) CountDistinctCompanies(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ?", enums.JobStatusApproved).
		Distinct("company").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) CreateApplication(ctx context.Context, app *models.JobApplication) (*models.JobApplication, error) {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (r *Repository) FindApplicationByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// ListApplications returns applications, optionally scoped to one job.
func (r *Repository) ListApplications(ctx context.Context, jobID *uuid.UUID) ([]models.JobApplication, error) {
	query := r.db.WithContext(ctx).Model(&models.JobApplication{})
	if jobID != nil {
		query = query.Where("job_id = ?", *jobID)
	}

	var apps []models.JobApplication
	if err := query.Order("applied_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *Repository) UpdateApplication(ctx context.Context, app *models.JobApplication) (*models.JobApplication, error) {
	if err := r.db.WithContext(ctx).Save(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// CountApplications returns the total number of applications.
func (r *Repository) CountApplications(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountApplicationsByStatus counts applications in the given status.
func (r *Repository) CountApplicationsByStatus(ctx context.Context, status enums.ApplicationStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
