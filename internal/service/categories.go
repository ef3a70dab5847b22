package service

import (
	"context"

	"github.com/vbonduro/storefront/internal/domain"
	"github.com/vbonduro/storefront/internal/store"
)

// requireBillboard verifies the referenced billboard exists inside the target
// store. A billboard from another store is indistinguishable from a missing
// one; tenants must not learn about each other's resources.
func (s *Service) requireBillboard(ctx context.Context, storeID, billboardID string) error {
	b, err := s.billboards.GetByID(ctx, billboardID)
	if err != nil {
		return err
	}
	if b == nil || b.StoreID != storeID {
		return &domain.NotFoundError{Resource: "Billboard"}
	}
	return nil
}

func (s *Service) CreateCategory(ctx context.Context, userID, storeID string, in CategoryInput) (*domain.Category, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.requireBillboard(ctx, storeID, in.BillboardID); err != nil {
		return nil, err
	}
	return s.categories.Create(ctx, storeID, in.BillboardID, in.Name)
}

func (s *Service) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context, storeID string) ([]*domain.Category, error) {
	return s.categories.List(ctx, storeID)
}

func (s *Service) UpdateCategory(ctx context.Context, userID, storeID, id string, in CategoryInput) (*domain.Category, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.requireBillboard(ctx, storeID, in.BillboardID); err != nil {
		return nil, err
	}
	return s.categories.Update(ctx, id, storeID, in.BillboardID, in.Name)
}

func (s *Service) DeleteCategory(ctx context.Context, userID, storeID, id string) (*domain.Category, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	deleted, err := s.categories.Delete(ctx, id, storeID)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return nil, &domain.ConflictError{Reason: "Make sure you removed all products using this category first"}
		}
		return nil, err
	}
	return deleted, nil
}
