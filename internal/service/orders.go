package service

import (
	"context"

	"github.com/vbonduro/storefront/internal/domain"
)

func (s *Service) CreateOrder(ctx context.Context, userID, storeID string, in OrderInput) (*domain.Order, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.orders.Create(ctx, storeID, in.Phone, in.Address, in.IsPaid)
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context, storeID string) ([]*domain.Order, error) {
	return s.orders.List(ctx, storeID)
}

func (s *Service) UpdateOrder(ctx context.Context, userID, storeID, id string, in OrderInput) (*domain.Order, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.orders.Update(ctx, id, storeID, in.Phone, in.Address, in.IsPaid)
}

func (s *Service) DeleteOrder(ctx context.Context, userID, storeID, id string) (*domain.Order, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.orders.Delete(ctx, id, storeID)
}
