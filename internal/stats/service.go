package stats

import (
	"context"
	"fmt"

	"github.com/northhaul/northhaul-backend/internal/jobs"
	"github.com/northhaul/northhaul-backend/internal/orders"
	"github.com/northhaul/northhaul-backend/internal/warehouse"
	"github.com/northhaul/northhaul-backend/pkg/config"
	"github.com/northhaul/northhaul-backend/pkg/enums"
	pkgerrors "github.com/northhaul/northhaul-backend/pkg/errors"
)

// PublicStats is the marketing counter block. Each figure is the live count
// plus the configured baseline offset.
type PublicStats struct {
	Jobs      int64 `json:"jobs"`
	Employers int64 `json:"employers"`
	Hired     int64 `json:"hired"`
}

// DashboardStats is the admin overview.
type DashboardStats struct {
	PendingJobs       int64          `json:"pendingJobs"`
	TotalApplications int64          `json:"totalApplications"`
	NewWarehouse      int64          `json:"newWarehouseRequests"`
	OrdersByStatus    map[string]int `json:"ordersByStatus"`
}

// Service aggregates counters across the other domains.
type Service interface {
	Public(ctx context.Context) (*PublicStats, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	jobRepo      *jobs.Repository
	orderSvc     orders.Service
	warehouseSvc warehouse.Service
	baselines    config.StatsConfig
}

// NewService constructs a stats service instance.
func NewService(jobRepo *jobs.Repository, orderSvc orders.Service, warehouseSvc warehouse.Service, baselines config.StatsConfig) (Service, error) {
	if jobRepo == nil {
		return nil, fmt.Errorf("jobs repository required")
	}
	if orderSvc == nil {
		return nil, fmt.Errorf("orders service required")
	}
	if warehouseSvc == nil {
		return nil, fmt.Errorf("warehouse service required")
	}
	return &service{
		jobRepo:      jobRepo,
		orderSvc:     orderSvc,
		warehouseSvc: warehouseSvc,
		baselines:    baselines,
	}, nil
}

func (s *service) Public(ctx context.Context) (*PublicStats, error) {
	approved, err := s.jobRepo.CountByStatus(ctx, enums.JobStatusApproved)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count jobs")
	}
	employers, err := s.jobRepo.CountDistinctCompanies(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count employers")
	}
	hired, err := s.jobRepo.CountApplicationsByStatus(ctx, enums.ApplicationStatusHired)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count hires")
	}

	return &PublicStats{
		Jobs:      approved + int64(s.baselines.JobsBaseline),
		Employers: employers + int64(s.baselines.EmployersBaseline),
		Hired:     hired + int64(s.baselines.HiredBaseline),
	}, nil
}

func (s *service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	pending, err := s.jobRepo.CountByStatus(ctx, enums.JobStatusPending)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count pending jobs")
	}
	applications, err := s.jobRepo.CountApplications(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count applications")
	}
	newRequests, err := s.warehouseSvc.CountNew(ctx)
	if err != nil {
		return nil, err
	}
	ordersByStatus, err := s.orderSvc.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		PendingJobs:       pending,
		TotalApplications: applications,
		NewWarehouse:      newRequests,
		OrdersByStatus:    ordersByStatus,
	}, nil
}
