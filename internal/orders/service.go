package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/internal/products"
	"github.com/northhaul/northhaul-backend/pkg/db"
	"github.com/northhaul/northhaul-backend/pkg/db/models"
	"github.com/northhaul/northhaul-backend/pkg/enums"
	pkgerrors "github.com/northhaul/northhaul-backend/pkg/errors"
)

// OrderItemInput names the product and quantity a customer wants. Price and
// name come from the catalog, never from the client.
type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderInput is the public checkout payload.
type CreateOrderInput struct {
	CustomerName    string           `json:"customerName" validate:"required,max=200"`
	CustomerEmail   string           `json:"customerEmail" validate:"required,email"`
	CustomerPhone   *string          `json:"customerPhone" validate:"omitempty,phone"`
	ShippingAddress string           `json:"shippingAddress" validate:"required,max=500"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateStatusInput advances an order through its lifecycle.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// StockShortage names the line that sank an order.
type StockShortage struct {
	ProductID string `json:"productId"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

// Service exposes checkout and order management operations.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*models.Order, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type service struct {
	repo        *Repository
	productRepo *products.Repository
	dbClient    *db.Client
}

// NewService constructs an order service instance.
func NewService(repo *Repository, productRepo *products.Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, productRepo: productRepo, dbClient: dbClient}, nil
}

// Create runs checkout in a single transaction. Every line must resolve to a
// published product with sufficient stock before anything is written; a
// single shortage rejects the whole order and leaves no stock mutated.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	lines, err := parseLines(input.Items)
	if err != nil {
		return nil, err
	}

	var created *models.Order
	txErr := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txProducts := s.productRepo.WithTx(tx)
		txOrders := s.repo.WithTx(tx)

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			product, err := txProducts.FindByID(ctx, line.productID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeInsufficientStock,
						fmt.Sprintf("product %s is not available", line.productID)).
						WithDetails(StockShortage{ProductID: line.productID.String(), Requested: line.quantity})
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
			}
			if !product.Published {
				return pkgerrors.New(pkgerrors.CodeInsufficientStock,
					fmt.Sprintf("product %s is not available", line.productID)).
					WithDetails(StockShortage{ProductID: line.productID.String(), Requested: line.quantity})
			}
			if product.Stock < line.quantity {
				return pkgerrors.New(pkgerrors.CodeInsufficientStock,
					fmt.Sprintf("insufficient stock for product %s", line.productID)).
					WithDetails(StockShortage{
						ProductID: line.productID.String(),
						Available: product.Stock,
						Requested: line.quantity,
					})
			}

			unitPrice, err := decimal.NewFromString(product.Price)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "parse product price")
			}
			total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(line.quantity))))

			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				UnitPrice: product.Price,
				Quantity:  line.quantity,
			})
		}

		for _, line := range lines {
			ok, err := txProducts.DecrementStock(ctx, line.productID, line.quantity)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: decrement stock")
			}
			if !ok {
				// raced with another checkout between the read and the write
				return pkgerrors.New(pkgerrors.CodeInsufficientStock,
					fmt.Sprintf("insufficient stock for product %s", line.productID)).
					WithDetails(StockShortage{ProductID: line.productID.String(), Requested: line.quantity})
			}
		}

		order := &models.Order{
			CustomerName:    input.CustomerName,
			CustomerEmail:   input.CustomerEmail,
			CustomerPhone:   input.CustomerPhone,
			ShippingAddress: input.ShippingAddress,
			Total:           total.StringFixed(2),
			Status:          enums.OrderStatusPending,
			Items:           items,
		}
		saved, err := txOrders.Create(ctx, order)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order")
		}
		created = saved
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return created, nil
}

func (s *service) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list orders")
	}
	return orders, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load order")
	}
	return order, nil
}

// UpdateStatus applies a lifecycle change, enforcing the allowed transitions.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*models.Order, error) {
	target, err := enums.ParseOrderStatus(input.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransition(target) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move order from %s to %s", order.Status, target))
	}

	order.Status = target
	updated, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update order")
	}
	return updated, nil
}

func (s *service) CountByStatus(ctx context.Context) (map[string]int, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count orders")
	}
	return counts, nil
}

type orderLine struct {
	productID uuid.UUID
	quantity  int
}

// parseLines validates item IDs and merges duplicate product lines so the
// stock check sees the combined quantity.
func parseLines(items []OrderItemInput) ([]orderLine, error) {
	merged := make(map[uuid.UUID]int, len(items))
	order := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		id, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("invalid product id %q", item.ProductID))
		}
		if _, seen := merged[id]; !seen {
			order = append(order, id)
		}
		merged[id] += item.Quantity
	}

	lines := make([]orderLine, 0, len(order))
	for _, id := range order {
		lines = append(lines, orderLine{productID: id, quantity: merged[id]})
	}
	return lines, nil
}
