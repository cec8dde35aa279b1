package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"techshop/internal/cache"
	apperrors "techshop/internal/errors"
	"techshop/internal/model"
	"techshop/internal/repository"
)

const (
	// DefaultListLimit is the page size used when the caller does not give one.
	DefaultListLimit = 100
	// MaxListLimit caps a single page.
	MaxListLimit = 1000

	seedLockKey = "seed:products"
	seedLockTTL = time.Minute
)

// maxPrice is the first value that no longer fits the decimal(10,2) price column.
var maxPrice = decimal.New(1, 8)

// SeedPolicy controls what seeding does with an existing catalog.
type SeedPolicy string

const (
	// SeedPolicyReset deletes every product before inserting the demo catalog.
	SeedPolicyReset SeedPolicy = "reset"
	// SeedPolicySkip leaves a non-empty catalog untouched.
	SeedPolicySkip SeedPolicy = "skip"
)

// CatalogService manages the product catalog.
type CatalogService interface {
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Seed(ctx context.Context, policy SeedPolicy) (int, error)
}

type catalogService struct {
	repo  repository.ProductRepository
	cache *cache.Client
	log   zerolog.Logger
}

// NewCatalogService builds a CatalogService. The cache only guards concurrent seeding.
func NewCatalogService(repo repository.ProductRepository, cache *cache.Client, log zerolog.Logger) CatalogService {
	return &catalogService{repo: repo, cache: cache, log: log}
}

// List returns a page of products, optionally restricted to one category.
func (s *catalogService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if filter.Skip < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", apperrors.ErrValidation)
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", apperrors.ErrValidation)
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.Limit == 0 {
		return []model.Product{}, nil
	}

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// Create adds a product. The id is always assigned by the store.
func (s *catalogService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if strings.TrimSpace(product.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if product.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	if !product.Price.Equal(product.Price.Round(2)) {
		return nil, fmt.Errorf("%w: price must have at most two decimal places", apperrors.ErrValidation)
	}
	if product.Price.GreaterThanOrEqual(maxPrice) {
		return nil, fmt.Errorf("%w: price must be less than %s", apperrors.ErrValidation, maxPrice)
	}

	product.ID = 0
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Seed loads the demo catalog and returns how many products were inserted.
// Concurrent runs are rejected with ErrSeedInProgress.
func (s *catalogService) Seed(ctx context.Context, policy SeedPolicy) (int, error) {
	token := uuid.NewString()
	acquired, _ := s.cache.Acquire(ctx, seedLockKey, token, seedLockTTL)
	if !acquired {
		return 0, apperrors.ErrSeedInProgress
	}
	defer func() { _ = s.cache.Release(context.WithoutCancel(ctx), seedLockKey, token) }()

	switch policy {
	case SeedPolicySkip:
		n, err := s.repo.Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("count products: %w", err)
		}
		if n > 0 {
			s.log.Info().Int64("existing", n).Msg("catalog not empty, seeding skipped")
			return 0, nil
		}
	case SeedPolicyReset, "":
		if err := s.repo.DeleteAll(ctx); err != nil {
			return 0, fmt.Errorf("clear products: %w", err)
		}
	default:
		return 0, fmt.Errorf("%w: unknown seed policy %q", apperrors.ErrValidation, policy)
	}

	products := seedCatalog()
	if err := s.repo.CreateBatch(ctx, products); err != nil {
		return 0, fmt.Errorf("insert products: %w", err)
	}

	s.log.Info().Int("count", len(products)).Str("policy", string(policy)).Msg("catalog seeded")
	return len(products), nil
}
