package service

import (
	"context"
	"log/slog"

	"github.com/vbonduro/storefront/internal/domain"
	"github.com/vbonduro/storefront/internal/imagehost"
	"github.com/vbonduro/storefront/internal/payment"
	"github.com/vbonduro/storefront/internal/store"
)

// storeRepository is the subset of store.StoreStore that Service requires.
type storeRepository interface {
	Create(ctx context.Context, userID, name string) (*domain.Store, error)
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Store, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Store, error)
	Update(ctx context.Context, id, userID, name string) (*domain.Store, error)
	Delete(ctx context.Context, id, userID string) (*domain.Store, error)
}

type billboardRepository interface {
	Create(ctx context.Context, storeID, label, imageURL string) (*domain.Billboard, error)
	GetByID(ctx context.Context, id string) (*domain.Billboard, error)
	List(ctx context.Context, storeID string) ([]*domain.Billboard, error)
	Update(ctx context.Context, id, storeID, label, imageURL string) (*domain.Billboard, error)
	Delete(ctx context.Context, id, storeID string) (*domain.Billboard, error)
}

type categoryRepository interface {
	Create(ctx context.Context, storeID, billboardID, name string) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, storeID string) ([]*domain.Category, error)
	Update(ctx context.Context, id, storeID, billboardID, name string) (*domain.Category, error)
	Delete(ctx context.Context, id, storeID string) (*domain.Category, error)
	CountByStore(ctx context.Context, storeID string) (int64, error)
}

type sizeRepository interface {
	Create(ctx context.Context, storeID, name, value string) (*domain.Size, error)
	GetByID(ctx context.Context, id string) (*domain.Size, error)
	List(ctx context.Context, storeID string) ([]*domain.Size, error)
	Update(ctx context.Context, id, storeID, name, value string) (*domain.Size, error)
	Delete(ctx context.Context, id, storeID string) (*domain.Size, error)
}

type colorRepository interface {
	Create(ctx context.Context, storeID, name, value string) (*domain.Color, error)
	GetByID(ctx context.Context, id string) (*domain.Color, error)
	List(ctx context.Context, storeID string) ([]*domain.Color, error)
	Update(ctx context.Context, id, storeID, name, value string) (*domain.Color, error)
	Delete(ctx context.Context, id, storeID string) (*domain.Color, error)
}

type productRepository interface {
	Create(ctx context.Context, p store.ProductParams) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, storeID string, f store.ProductFilter) ([]*domain.Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	Update(ctx context.Context, id string, p store.ProductParams) (*domain.Product, error)
	Delete(ctx context.Context, id, storeID string) (*domain.Product, error)
	DecrementQuantity(ctx context.Context, id string) error
	CountByStore(ctx context.Context, storeID string) (int64, error)
}

type orderRepository interface {
	Create(ctx context.Context, storeID, phone, address string, isPaid bool) (*domain.Order, error)
	CreateWithItems(ctx context.Context, storeID string, productIDs []string) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, storeID string) ([]*domain.Order, error)
	Update(ctx context.Context, id, storeID, phone, address string, isPaid bool) (*domain.Order, error)
	Delete(ctx context.Context, id, storeID string) (*domain.Order, error)
}

// Config carries the checkout knobs: the currency for payment line items and
// the storefront base URL the payment provider redirects back to.
type Config struct {
	Currency         string
	FrontendStoreURL string
}

type Service struct {
	stores     storeRepository
	billboards billboardRepository
	categories categoryRepository
	sizes      sizeRepository
	colors     colorRepository
	products   productRepository
	orders     orderRepository
	payments   payment.Provider
	images     imagehost.Destroyer
	cfg        Config
	logger     *slog.Logger
}

func New(
	stores storeRepository,
	billboards billboardRepository,
	categories categoryRepository,
	sizes sizeRepository,
	colors colorRepository,
	products productRepository,
	orders orderRepository,
	payments payment.Provider,
	images imagehost.Destroyer,
	cfg Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		stores:     stores,
		billboards: billboards,
		categories: categories,
		sizes:      sizes,
		colors:     colors,
		products:   products,
		orders:     orders,
		payments:   payments,
		images:     images,
		cfg:        cfg,
		logger:     logger,
	}
}

// destroyImage best-effort deletes a replaced or orphaned image at the host.
// Failures are logged only; losing an orphan image never fails the request
// that orphaned it.
func (s *Service) destroyImage(ctx context.Context, imageURL string) {
	publicID := imagehost.PublicIDFromURL(imageURL)
	if publicID == "" {
		return
	}
	if err := s.images.Destroy(ctx, publicID); err != nil {
		s.logger.Warn("failed to destroy hosted image", "public_id", publicID, "error", err)
	}
}
