package orders

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/northhaul/northhaul-backend/internal/products"
	"github.com/northhaul/northhaul-backend/pkg/config"
	"github.com/northhaul/northhaul-backend/pkg/db"
	"github.com/northhaul/northhaul-backend/pkg/db/models"
	pkgerrors "github.com/northhaul/northhaul-backend/pkg/errors"
)

func openTestClient(t *testing.T) *db.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := db.New(context.Background(), config.DBConfig{DSN: dsn, Driver: "sqlite"}, nil)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := client.DB().AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return client
}

func newTestService(t *testing.T) (Service, *products.Repository) {
	t.Helper()

	client := openTestClient(t)
	productRepo := products.NewRepository(client.DB())
	svc, err := NewService(NewRepository(client.DB()), productRepo, client)
	require.NoError(t, err)
	return svc, productRepo
}

func seedProduct(t *testing.T, repo *products.Repository, price string, stock int, published bool) *models.Product {
	t.Helper()
	product, err := repo.Create(context.Background(), &models.Product{
		Name:        "Pallet Wrap",
		Description: "Industrial stretch film.",
		Price:       price,
		Category:    "Packaging",
		Stock:       stock,
		Published:   published,
	})
	require.NoError(t, err)
	return product
}

func checkoutInput(items ...OrderItemInput) CreateOrderInput {
	return CreateOrderInput{
		CustomerName:    "Dana Whitfield",
		CustomerEmail:   "dana@prairiefoods.example",
		ShippingAddress: "400 Industrial Rd, Winnipeg, MB",
		Items:           items,
	}
}

func TestCreateComputesServerSideTotal(t *testing.T) {
	svc, productRepo := newTestService(t)
	ctx := context.Background()

	product := seedProduct(t, productRepo, "24.99", 10, true)

	order, err := svc.Create(ctx, checkoutInput(OrderItemInput{
		ProductID: product.ID.String(),
		Quantity:  3,
	}))
	require.NoError(t, err)
	require.Equal(t, "74.97", order.Total)
	require.Len(t, order.Items, 1)
	require.Equal(t, "24.99", order.Items[0].UnitPrice)
	require.Equal(t, product.Name, order.Items[0].Name)

	reloaded, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 7, reloaded.Stock)
}

func TestCreateRejectsShortageWithoutMutation(t *testing.T) {
	svc, productRepo := newTestService(t)
	ctx := context.Background()

	product := seedProduct(t, productRepo, "10.00", 5, true)

	_, err := svc.Create(ctx, checkoutInput(OrderItemInput{
		ProductID: product.ID.String(),
		Quantity:  10,
	}))
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeInsufficientStock, appErr.Code())

	shortage, ok := appErr.Details().(StockShortage)
	require.True(t, ok)
	require.Equal(t, product.ID.String(), shortage.ProductID)
	require.Equal(t, 5, shortage.Available)
	require.Equal(t, 10, shortage.Requested)

	reloaded, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 5, reloaded.Stock)

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestSequentialOrdersNeverOversell(t *testing.T) {
	svc, productRepo := newTestService(t)
	ctx := context.Background()

	product := seedProduct(t, productRepo, "10.00", 5, true)

	_, err := svc.Create(ctx, checkoutInput(OrderItemInput{ProductID: product.ID.String(), Quantity: 3}))
	require.NoError(t, err)

	_, err = svc.Create(ctx, checkoutInput(OrderItemInput{ProductID: product.ID.String(), Quantity: 3}))
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeInsufficientStock, appErr.Code())

	reloaded, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Stock)
}

func TestOneBadLineRejectsWholeOrder(t *testing.T) {
	svc, productRepo := newTestService(t)
	ctx := context.Background()

	good := seedProduct(t, productRepo, "10.00", 5, true)

	_, err := svc.Create(ctx, checkoutInput(
		OrderItemInput{ProductID: good.ID.String(), Quantity: 1},
		OrderItemInput{ProductID: uuid.NewString(), Quantity: 1},
	))
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeInsufficientStock, appErr.Code())

	reloaded, err := productRepo.FindByID(ctx, good.ID)
	require.NoError(t, err)
	require.Equal(t, 5, reloaded.Stock)
}

func TestUnpublishedProductNotOrderable(t *testing.T) {
	svc, productRepo := newTestService(t)

	hidden := seedProduct(t, productRepo, "10.00", 5, false)

	_, err := svc.Create(context.Background(), checkoutInput(OrderItemInput{
		ProductID: hidden.ID.String(),
		Quantity:  1,
	}))
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeInsufficientStock, appErr.Code())
}

func TestDuplicateLinesMergeBeforeStockCheck(t *testing.T) {
	svc, productRepo := newTestService(t)
	ctx := context.Background()

	product := seedProduct(t, productRepo, "10.00", 5, true)

	_, err := svc.Create(ctx, checkoutInput(
		OrderItemInput{ProductID: product.ID.String(), Quantity: 3},
		OrderItemInput{ProductID: product.ID.String(), Quantity: 3},
	))
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeInsufficientStock, appErr.Code())

	reloaded, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 5, reloaded.Stock)
}

func TestStatusLifecycle(t *testing.T) {
	svc, productRepo := newTestService(t)
	ctx := context.Background()

	product := seedProduct(t, productRepo, "10.00", 5, true)
	order, err := svc.Create(ctx, checkoutInput(OrderItemInput{ProductID: product.ID.String(), Quantity: 1}))
	require.NoError(t, err)

	paid, err := svc.UpdateStatus(ctx, order.ID, UpdateStatusInput{Status: "paid"})
	require.NoError(t, err)
	require.Equal(t, "paid", paid.Status.String())

	// fulfilled orders cannot be cancelled
	_, err = svc.UpdateStatus(ctx, order.ID, UpdateStatusInput{Status: "fulfilled"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, order.ID, UpdateStatusInput{Status: "cancelled"})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeStateConflict, appErr.Code())
}

func TestCountByStatus(t *testing.T) {
	svc, productRepo := newTestService(t)
	ctx := context.Background()

	product := seedProduct(t, productRepo, "10.00", 10, true)
	first, err := svc.Create(ctx, checkoutInput(OrderItemInput{ProductID: product.ID.String(), Quantity: 1}))
	require.NoError(t, err)
	_, err = svc.Create(ctx, checkoutInput(OrderItemInput{ProductID: product.ID.String(), Quantity: 1}))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.ID, UpdateStatusInput{Status: "paid"})
	require.NoError(t, err)

	counts, err := svc.CountByStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"pending": 1, "paid": 1}, counts)
}
