package service

import (
	"context"

	"github.com/vbonduro/storefront/internal/domain"
	"github.com/vbonduro/storefront/internal/store"
)

func (s *Service) CreateBillboard(ctx context.Context, userID, storeID string, in BillboardInput) (*domain.Billboard, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.billboards.Create(ctx, storeID, in.Label, in.ImageURL)
}

func (s *Service) GetBillboard(ctx context.Context, id string) (*domain.Billboard, error) {
	return s.billboards.GetByID(ctx, id)
}

func (s *Service) ListBillboards(ctx context.Context, storeID string) ([]*domain.Billboard, error) {
	return s.billboards.List(ctx, storeID)
}

// UpdateBillboard replaces the billboard and, when the image URL changed,
// deletes the previous image at the host so it does not leak.
func (s *Service) UpdateBillboard(ctx context.Context, userID, storeID, id string, in BillboardInput) (*domain.Billboard, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	existing, err := s.billboards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.StoreID != storeID {
		return nil, &domain.NotFoundError{Resource: "Billboard"}
	}

	updated, err := s.billboards.Update(ctx, id, storeID, in.Label, in.ImageURL)
	if err != nil {
		return nil, err
	}

	if existing.ImageURL != "" && existing.ImageURL != in.ImageURL {
		s.destroyImage(ctx, existing.ImageURL)
	}
	return updated, nil
}

func (s *Service) DeleteBillboard(ctx context.Context, userID, storeID, id string) (*domain.Billboard, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	deleted, err := s.billboards.Delete(ctx, id, storeID)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return nil, &domain.ConflictError{Reason: "Make sure you removed all categories using this billboard first"}
		}
		return nil, err
	}

	if deleted.ImageURL != "" {
		s.destroyImage(ctx, deleted.ImageURL)
	}
	return deleted, nil
}
