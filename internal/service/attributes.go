package service

import (
	"context"

	"github.com/vbonduro/storefront/internal/domain"
	"github.com/vbonduro/storefront/internal/store"
)

func (s *Service) CreateSize(ctx context.Context, userID, storeID string, in AttributeInput) (*domain.Size, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.sizes.Create(ctx, storeID, in.Name, in.Value)
}

func (s *Service) GetSize(ctx context.Context, id string) (*domain.Size, error) {
	return s.sizes.GetByID(ctx, id)
}

func (s *Service) ListSizes(ctx context.Context, storeID string) ([]*domain.Size, error) {
	return s.sizes.List(ctx, storeID)
}

func (s *Service) UpdateSize(ctx context.Context, userID, storeID, id string, in AttributeInput) (*domain.Size, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.sizes.Update(ctx, id, storeID, in.Name, in.Value)
}

func (s *Service) DeleteSize(ctx context.Context, userID, storeID, id string) (*domain.Size, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	deleted, err := s.sizes.Delete(ctx, id, storeID)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return nil, &domain.ConflictError{Reason: "Make sure you removed all products using this size first"}
		}
		return nil, err
	}
	return deleted, nil
}

func (s *Service) CreateColor(ctx context.Context, userID, storeID string, in AttributeInput) (*domain.Color, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.colors.Create(ctx, storeID, in.Name, in.Value)
}

func (s *Service) GetColor(ctx context.Context, id string) (*domain.Color, error) {
	return s.colors.GetByID(ctx, id)
}

func (s *Service) ListColors(ctx context.Context, storeID string) ([]*domain.Color, error) {
	return s.colors.List(ctx, storeID)
}

func (s *Service) UpdateColor(ctx context.Context, userID, storeID, id string, in AttributeInput) (*domain.Color, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.colors.Update(ctx, id, storeID, in.Name, in.Value)
}

func (s *Service) DeleteColor(ctx context.Context, userID, storeID, id string) (*domain.Color, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	deleted, err := s.colors.Delete(ctx, id, storeID)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return nil, &domain.ConflictError{Reason: "Make sure you removed all products using this color first"}
		}
		return nil, err
	}
	return deleted, nil
}
