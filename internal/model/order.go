package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// Order is the aggregate created by the checkout workflow.
// TotalPrice always equals the sum of Price*Quantity over Items at the time it was written.
type Order struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null;index"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2);not null;default:0"`
	Status     OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt  time.Time       `json:"created_at" gorm:"index"`

	// Relations
	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is one priced line of an order. Price is the unit price captured at checkout.
type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"-" gorm:"not null;index"`
	ProductID uint            `json:"product_id" gorm:"not null;index"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}

// LineTotal returns Price multiplied by Quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderLine is a requested product and quantity prior to pricing.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

// Activity summarizes a user's order history.
type Activity struct {
	TotalOrders    int        `json:"total_orders"`
	LastOrderDate  *time.Time `json:"last_order_date"`
	AccountCreated time.Time  `json:"account_created"`
}
