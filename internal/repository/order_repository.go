package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"techshop/internal/model"
)

// OrderRepository defines order persistence operations. Each method is a single write or
// read; callers compose them without an enclosing transaction.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	CreateItem(ctx context.Context, item *model.OrderItem) error
	UpdateTotal(ctx context.Context, orderID uint, total decimal.Decimal) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	LatestByUser(ctx context.Context, userID uint) (*model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row only. Items are written separately with CreateItem.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Create(order).Error
}

// CreateItem inserts a single order line.
func (r *orderRepository) CreateItem(ctx context.Context, item *model.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// UpdateTotal sets the total price of an order.
func (r *orderRepository) UpdateTotal(ctx context.Context, orderID uint, total decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("total_price", total).Error
}

// FindByID finds an order by ID with its items.
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Preload("Items", orderItemsByID).
		Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser returns the user's orders newest first, with items.
func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Preload("Items", orderItemsByID).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CountByUser returns how many orders the user has placed.
func (r *orderRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// LatestByUser returns the user's most recent order without items.
func (r *orderRepository) LatestByUser(ctx context.Context, userID uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Take(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
