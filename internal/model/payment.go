package model

import (
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment records the settlement of an order. At most one payment exists per order.
// The gateway integration is not wired yet, so rows are never written by the API.
type Payment struct {
	ID       uint            `json:"id" gorm:"primaryKey"`
	OrderID  uint            `json:"order_id" gorm:"not null;uniqueIndex"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Status   PaymentStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Provider string          `json:"provider" gorm:"size:50;not null;default:'manual'"`

	// Relations
	Order Order `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// All returns every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Product{},
		&Order{},
		&OrderItem{},
		&Payment{},
	}
}
