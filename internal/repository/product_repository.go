package repository

import (
	"context"

	"gorm.io/gorm"

	"techshop/internal/model"
)

// ProductRepository defines catalog persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	CreateBatch(ctx context.Context, products []model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create creates a new product record.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// CreateBatch inserts products in batches of 100.
func (r *productRepository) CreateBatch(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(products, 100).Error
}

// FindByID finds a product by ID.
func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns products ordered by id. Category matching is exact and case-sensitive.
func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})
	if filter.Category != "" {
		// MySQL's default collation compares case-insensitively.
		if r.db.Dialector.Name() == "mysql" {
			query = query.Where("BINARY category = ?", filter.Category)
		} else {
			query = query.Where("category = ?", filter.Category)
		}
	}

	var products []model.Product
	if err := query.Order("id ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the number of products in the catalog.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteAll removes every product.
func (r *productRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Product{}).Error
}
