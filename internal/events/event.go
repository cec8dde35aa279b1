package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"techshop/internal/model"
)

// OrderCreatedType is the routing key and type of order creation events.
const OrderCreatedType = "orders.created"

// Event is the envelope for every message published to the events exchange.
type Event[T any] struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Time    time.Time `json:"time"`
	Payload T         `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID    uint               `json:"order_id"`
	UserID     uint               `json:"user_id"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	Status     string             `json:"status"`
	Items      []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// NewOrderCreatedEvent builds the event for a persisted order.
func NewOrderCreatedEvent(order *model.Order) Event[OrderCreatedPayload] {
	items := make([]OrderItemPayload, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, OrderItemPayload{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return Event[OrderCreatedPayload]{
		ID:      uuid.NewString(),
		Type:    OrderCreatedType,
		Version: 1,
		Time:    time.Now().UTC(),
		Payload: OrderCreatedPayload{
			OrderID:    order.ID,
			UserID:     order.UserID,
			TotalPrice: order.TotalPrice,
			Status:     string(order.Status),
			Items:      items,
		},
	}
}
