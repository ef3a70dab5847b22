package service

import (
	"context"
	"fmt"

	"github.com/vbonduro/storefront/internal/domain"
)

func (s *Service) CreateStore(ctx context.Context, userID string, in StoreInput) (*domain.Store, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.stores.Create(ctx, userID, in.Name)
}

func (s *Service) GetStore(ctx context.Context, storeID string) (*domain.Store, error) {
	return s.stores.GetByID(ctx, storeID)
}

func (s *Service) ListStores(ctx context.Context, userID string) ([]*domain.Store, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.stores.ListByUser(ctx, userID)
}

func (s *Service) UpdateStore(ctx context.Context, userID, storeID string, in StoreInput) (*domain.Store, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.stores.Update(ctx, storeID, userID, in.Name)
}

// DeleteStore refuses to remove a store that still owns products or
// categories; the dashboard tells the owner to clean those up first instead
// of cascading away a catalog.
func (s *Service) DeleteStore(ctx context.Context, userID, storeID string) (*domain.Store, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	productCount, err := s.products.CountByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count store products: %w", err)
	}
	categoryCount, err := s.categories.CountByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count store categories: %w", err)
	}
	if productCount > 0 || categoryCount > 0 {
		return nil, &domain.ConflictError{Reason: "Make sure you removed all products and categories first"}
	}

	return s.stores.Delete(ctx, storeID, userID)
}
