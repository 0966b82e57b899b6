package stats

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/northhaul/northhaul-backend/internal/jobs"
	"github.com/northhaul/northhaul-backend/internal/orders"
	"github.com/northhaul/northhaul-backend/internal/products"
	"github.com/northhaul/northhaul-backend/internal/warehouse"
	"github.com/northhaul/northhaul-backend/pkg/config"
	"github.com/northhaul/northhaul-backend/pkg/db"
	"github.com/northhaul/northhaul-backend/pkg/db/models"
)

type fixture struct {
	stats     Service
	jobSvc    jobs.Service
	orderSvc  orders.Service
	whSvc     warehouse.Service
	products  *products.Repository
	baselines config.StatsConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := db.New(context.Background(), config.DBConfig{DSN: dsn, Driver: "sqlite"}, nil)
	require.NoError(t, err)
	require.NoError(t, client.DB().AutoMigrate(
		&models.Job{}, &models.JobApplication{},
		&models.Product{}, &models.Order{}, &models.OrderItem{},
		&models.WarehouseRequest{},
	))

	jobRepo := jobs.NewRepository(client.DB())
	jobSvc, err := jobs.NewService(jobRepo)
	require.NoError(t, err)

	productRepo := products.NewRepository(client.DB())
	orderSvc, err := orders.NewService(orders.NewRepository(client.DB()), productRepo, client)
	require.NoError(t, err)

	whSvc, err := warehouse.NewService(warehouse.NewRepository(client.DB()))
	require.NoError(t, err)

	baselines := config.StatsConfig{JobsBaseline: 734, EmployersBaseline: 370, HiredBaseline: 1485}
	statsSvc, err := NewService(jobRepo, orderSvc, whSvc, baselines)
	require.NoError(t, err)

	return &fixture{
		stats:     statsSvc,
		jobSvc:    jobSvc,
		orderSvc:  orderSvc,
		whSvc:     whSvc,
		products:  productRepo,
		baselines: baselines,
	}
}

func TestPublicStatsAreBaselinesWhenEmpty(t *testing.T) {
	f := newFixture(t)

	stats, err := f.stats.Public(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 734, stats.Jobs)
	require.EqualValues(t, 370, stats.Employers)
	require.EqualValues(t, 1485, stats.Hired)
}

func TestPublicStatsTrackLiveCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	job, err := f.jobSvc.Submit(ctx, jobs.SubmitJobInput{
		Title:       "Freight Coordinator",
		Description: "Coordinate inbound and outbound freight schedules.",
		Location:    "Toronto, ON",
		Company:     "Northern Lines",
		Type:        "Full-Time",
		Category:    "Logistics",
	})
	require.NoError(t, err)

	// pending jobs are not counted
	stats, err := f.stats.Public(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 734, stats.Jobs)

	_, err = f.jobSvc.UpdateStatus(ctx, job.ID, jobs.UpdateStatusInput{Status: "approved"})
	require.NoError(t, err)

	app, err := f.jobSvc.Apply(ctx, job.ID, jobs.ApplyInput{UserID: "candidate-1"})
	require.NoError(t, err)
	for _, status := range []string{"reviewed", "interviewed", "hired"} {
		_, err = f.jobSvc.UpdateApplicationStatus(ctx, app.ID, jobs.UpdateApplicationStatusInput{Status: status})
		require.NoError(t, err)
	}

	stats, err = f.stats.Public(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 735, stats.Jobs)
	require.EqualValues(t, 371, stats.Employers)
	require.EqualValues(t, 1486, stats.Hired)
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.jobSvc.Submit(ctx, jobs.SubmitJobInput{
		Title:       "Yard Marshal",
		Description: "Direct trailer traffic in the yard.",
		Location:    "Hamilton, ON",
		Company:     "Bay Freight",
		Type:        "Full-Time",
		Category:    "Warehouse",
	})
	require.NoError(t, err)

	_, err = f.whSvc.Create(ctx, warehouse.CreateRequestInput{
		Company:      "Prairie Foods",
		ContactName:  "Dana Whitfield",
		ContactEmail: "dana@prairiefoods.example",
		ContactPhone: "(249) 444-0004",
		Location:     "Winnipeg, MB",
		StorageType:  "cold",
		StorageSize:  "medium",
		Duration:     "short-term",
	})
	require.NoError(t, err)

	product, err := f.products.Create(ctx, &models.Product{
		Name: "Pallet Wrap", Description: "Film.", Price: "10.00",
		Category: "Packaging", Stock: 5, Published: true,
	})
	require.NoError(t, err)
	_, err = f.orderSvc.Create(ctx, orders.CreateOrderInput{
		CustomerName:    "Dana Whitfield",
		CustomerEmail:   "dana@prairiefoods.example",
		ShippingAddress: "400 Industrial Rd, Winnipeg, MB",
		Items:           []orders.OrderItemInput{{ProductID: product.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)

	dashboard, err := f.stats.Dashboard(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, dashboard.PendingJobs)
	require.EqualValues(t, 0, dashboard.TotalApplications)
	require.EqualValues(t, 1, dashboard.NewWarehouse)
	require.Equal(t, map[string]int{"pending": 1}, dashboard.OrdersByStatus)
}
