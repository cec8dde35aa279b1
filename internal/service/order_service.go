package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "techshop/internal/errors"
	"techshop/internal/events"
	"techshop/internal/metrics"
	"techshop/internal/model"
	"techshop/internal/repository"
)

// OrderService places and lists orders.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID uint, lines []model.OrderLine) (*model.Order, error)
	ListForUser(ctx context.Context, userID uint) ([]model.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	publisher   events.Publisher
	log         zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, publisher events.Publisher, log zerolog.Logger) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		log:         log,
	}
}

// PlaceOrder creates a pending order for the user. Each line's price is snapshotted from
// the current catalog; lines naming an unknown product are dropped. The writes are not
// wrapped in a transaction, so a failure part way leaves the order partially written.
func (s *orderService) PlaceOrder(ctx context.Context, userID uint, lines []model.OrderLine) (*model.Order, error) {
	if userID == 0 {
		return nil, apperrors.ErrUnauthenticated
	}
	for i, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: items[%d].quantity must be a positive integer", apperrors.ErrValidation, i)
		}
	}

	order := &model.Order{
		UserID:     userID,
		TotalPrice: decimal.Zero,
		Status:     model.OrderStatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	total := decimal.Zero
	for _, line := range lines {
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.log.Warn().Uint("order_id", order.ID).Uint("product_id", line.ProductID).Msg("skipping unknown product")
				metrics.OrderLinesSkippedTotal.Inc()
				continue
			}
			return nil, fmt.Errorf("find product %d: %w", line.ProductID, err)
		}

		item := &model.OrderItem{
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		}
		if err := s.orderRepo.CreateItem(ctx, item); err != nil {
			return nil, fmt.Errorf("create order item: %w", err)
		}
		total = total.Add(item.LineTotal())
	}

	if err := s.orderRepo.UpdateTotal(ctx, order.ID, total); err != nil {
		return nil, fmt.Errorf("update order total: %w", err)
	}

	persisted, err := s.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}

	metrics.OrdersPlacedTotal.Inc()
	s.log.Info().Uint("order_id", persisted.ID).Uint("user_id", userID).
		Str("total_price", persisted.TotalPrice.StringFixed(2)).Int("items", len(persisted.Items)).
		Msg("order placed")

	if err := s.publisher.PublishOrderCreated(ctx, persisted); err != nil {
		s.log.Error().Err(err).Uint("order_id", persisted.ID).Msg("failed to publish order created event")
	}

	return persisted, nil
}

// ListForUser returns the user's orders newest first.
func (s *orderService) ListForUser(ctx context.Context, userID uint) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}
