package service

import (
	"context"

	"github.com/vbonduro/storefront/internal/domain"
	"github.com/vbonduro/storefront/internal/payment"
	"github.com/vbonduro/storefront/internal/store"
)

// Checkout creates an unpaid order for the given products and opens a hosted
// payment session for it. The order exists before the shopper ever reaches
// the provider; reconciliation marks it paid later.
func (s *Service) Checkout(ctx context.Context, storeID string, productIDs []string) (string, error) {
	products, err := s.products.ListByIDs(ctx, productIDs)
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return "", &domain.NotFoundError{Resource: "Products"}
	}

	order, err := s.orders.CreateWithItems(ctx, storeID, productIDs)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return "", &domain.ConflictError{Reason: "Invalid product ids"}
		}
		return "", err
	}

	items := make([]payment.LineItem, 0, len(products))
	for _, p := range products {
		items = append(items, payment.LineItem{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: 1,
		})
	}

	url, err := s.payments.CreateSession(ctx, payment.SessionRequest{
		OrderID:    order.ID,
		Currency:   s.cfg.Currency,
		Items:      items,
		SuccessURL: s.cfg.FrontendStoreURL + "/cart?success=1",
		CancelURL:  s.cfg.FrontendStoreURL + "/cart?canceled=1",
	})
	if err != nil {
		return "", err
	}
	return url, nil
}
