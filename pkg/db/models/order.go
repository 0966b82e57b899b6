package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/pkg/enums"
)

// Order is a checkout result. Line item names and prices are snapshots of
// the authoritative product data at creation time; Total is the server-side
// sum of unit price times quantity as a decimal string.
type Order struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CustomerName    string            `gorm:"column:customer_name;not null" json:"customerName"`
	CustomerEmail   string            `gorm:"column:customer_email;not null" json:"customerEmail"`
	CustomerPhone   *string           `gorm:"column:customer_phone" json:"customerPhone,omitempty"`
	ShippingAddress string            `gorm:"column:shipping_address;not null" json:"shippingAddress"`
	Total           string            `gorm:"column:total;not null" json:"total"`
	Status          enums.OrderStatus `gorm:"column:status;not null;default:pending" json:"status"`
	Items           []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"column:order_id;type:uuid;not null;index" json:"orderId"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null" json:"productId"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	UnitPrice string    `gorm:"column:unit_price;not null" json:"price"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
}

func (i *OrderItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
