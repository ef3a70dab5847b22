package service

import (
	"context"

	"github.com/vbonduro/storefront/internal/domain"
	"github.com/vbonduro/storefront/internal/store"
)

// requireProductRefs verifies the category, size, and color a product points
// at all exist inside the target store.
func (s *Service) requireProductRefs(ctx context.Context, storeID string, in ProductInput) error {
	category, err := s.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if category == nil || category.StoreID != storeID {
		return &domain.NotFoundError{Resource: "Category"}
	}

	size, err := s.sizes.GetByID(ctx, in.SizeID)
	if err != nil {
		return err
	}
	if size == nil || size.StoreID != storeID {
		return &domain.NotFoundError{Resource: "Size"}
	}

	color, err := s.colors.GetByID(ctx, in.ColorID)
	if err != nil {
		return err
	}
	if color == nil || color.StoreID != storeID {
		return &domain.NotFoundError{Resource: "Color"}
	}
	return nil
}

func productParams(storeID string, in ProductInput) store.ProductParams {
	urls := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		urls = append(urls, img.URL)
	}
	return store.ProductParams{
		StoreID:    storeID,
		CategoryID: in.CategoryID,
		SizeID:     in.SizeID,
		ColorID:    in.ColorID,
		Name:       in.Name,
		Supplier:   in.Supplier,
		Price:      in.Price,
		Quantity:   in.Quantity,
		IsFeatured: in.IsFeatured,
		IsArchived: in.IsArchived,
		ImageURLs:  urls,
	}
}

func (s *Service) CreateProduct(ctx context.Context, userID, storeID string, in ProductInput) (*domain.Product, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.requireProductRefs(ctx, storeID, in); err != nil {
		return nil, err
	}
	return s.products.Create(ctx, productParams(storeID, in))
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, storeID string, f store.ProductFilter) ([]*domain.Product, error) {
	return s.products.List(ctx, storeID, f)
}

func (s *Service) UpdateProduct(ctx context.Context, userID, storeID, id string, in ProductInput) (*domain.Product, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.requireProductRefs(ctx, storeID, in); err != nil {
		return nil, err
	}
	return s.products.Update(ctx, id, productParams(storeID, in))
}

func (s *Service) DeleteProduct(ctx context.Context, userID, storeID, id string) (*domain.Product, error) {
	if err := s.authorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	deleted, err := s.products.Delete(ctx, id, storeID)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return nil, &domain.ConflictError{Reason: "Make sure you removed all orders using this product first"}
		}
		return nil, err
	}
	return deleted, nil
}

// PurchaseProduct is the storefront's anonymous buy-one action: it returns
// the product and decrements on-hand quantity by one. No authorization, like
// every other storefront read.
func (s *Service) PurchaseProduct(ctx context.Context, storeID, id string) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.StoreID != storeID {
		return nil, &domain.NotFoundError{Resource: "Product"}
	}

	if err := s.products.DecrementQuantity(ctx, id); err != nil {
		return nil, err
	}
	return p, nil
}
